package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/client-admin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name       string
		data       any
		status     int
		wantStatus int
		wantBody   string
		wantErr    bool
	}{
		{
			name:       "struct",
			data:       models.Client{ID: 1, NationalID: "1-9", Name: "Ana", BirthDate: "2000-01-01"},
			status:     http.StatusOK,
			wantStatus: http.StatusOK,
			wantBody:   `{"id":1,"nationalId":"1-9","name":"Ana","birthDate":"2000-01-01"}`,
		},
		{
			name:       "custom status",
			data:       models.Account{ID: 3, Name: "Savings", ClientID: 1},
			status:     http.StatusCreated,
			wantStatus: http.StatusCreated,
			wantBody:   `{"id":3,"name":"Savings","clientId":1}`,
		},
		{
			name:       "nil slice is an empty array",
			data:       []models.Client(nil),
			status:     http.StatusOK,
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name:       "unmarshalable value",
			data:       map[string]any{"fn": func() {}},
			status:     http.StatusOK,
			wantStatus: http.StatusInternalServerError,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			n, err := WriteJSON(rec, tt.data, tt.status)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantErr {
				require.Error(t, err)
				assert.Zero(t, n)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.wantBody), n)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

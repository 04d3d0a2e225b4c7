package http

import (
	"errors"
	"net/http"
	"testing"

	"github.com/MKhiriev/client-admin/internal/service"
	"github.com/MKhiriev/client-admin/internal/store"
	"github.com/MKhiriev/client-admin/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestListClients(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		_, router, svcs := newTestHandler(t)
		svcs.clients.EXPECT().ListClients(gomock.Any()).Return([]models.Client{
			{ID: 2, NationalID: "2-7", Name: "Bruno", BirthDate: "1990-05-12"},
			{ID: 1, NationalID: "1-9", Name: "Ana", BirthDate: "2000-01-01"},
		}, nil)

		rec := serve(router, http.MethodGet, "/clients", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.JSONEq(t, `[
			{"id":2,"nationalId":"2-7","name":"Bruno","birthDate":"1990-05-12"},
			{"id":1,"nationalId":"1-9","name":"Ana","birthDate":"2000-01-01"}
		]`, rec.Body.String())
	})

	t.Run("empty list is an array", func(t *testing.T) {
		_, router, svcs := newTestHandler(t)
		svcs.clients.EXPECT().ListClients(gomock.Any()).Return(nil, nil)

		rec := serve(router, http.MethodGet, "/clients", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "[]", rec.Body.String())
	})

	t.Run("storage failure hides details", func(t *testing.T) {
		_, router, svcs := newTestHandler(t)
		svcs.clients.EXPECT().ListClients(gomock.Any()).
			Return(nil, errors.Join(store.ErrExecutingQuery, errors.New("pq: password authentication failed")))

		rec := serve(router, http.MethodGet, "/clients", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "password")
	})
}

func TestCreateClient(t *testing.T) {
	body := `{"nationalId":"1-9","name":"Ana","birthDate":"2000-01-01"}`
	in := models.Client{NationalID: "1-9", Name: "Ana", BirthDate: "2000-01-01"}

	tests := []struct {
		name       string
		body       string
		setup      func(svcs testServices)
		wantStatus int
		wantBody   string
	}{
		{
			name: "created answers 200 with the stored client",
			body: body,
			setup: func(svcs testServices) {
				svcs.clients.EXPECT().CreateClient(gomock.Any(), in).
					Return(models.Client{ID: 7, NationalID: "1-9", Name: "Ana", BirthDate: "2000-01-01"}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"id":7,"nationalId":"1-9","name":"Ana","birthDate":"2000-01-01"}`,
		},
		{
			name:       "malformed JSON",
			body:       `{"nationalId":`,
			setup:      func(testServices) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "validation error",
			body: body,
			setup: func(svcs testServices) {
				svcs.clients.EXPECT().CreateClient(gomock.Any(), in).Return(models.Client{}, service.ErrInvalidDataProvided)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "duplicate national id",
			body: body,
			setup: func(svcs testServices) {
				svcs.clients.EXPECT().CreateClient(gomock.Any(), in).Return(models.Client{}, store.ErrNationalIDAlreadyExists)
			},
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, router, svcs := newTestHandler(t)
			tt.setup(svcs)

			rec := serve(router, http.MethodPost, "/clients", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestUpdateClient(t *testing.T) {
	full := models.Client{ID: 3, NationalID: "1-9", Name: "Ana", BirthDate: "2000-01-01"}

	tests := []struct {
		name       string
		target     string
		body       string
		setup      func(svcs testServices)
		wantStatus int
	}{
		{
			name:   "updated",
			target: "/clients/3",
			body:   `{"id":3,"nationalId":"1-9","name":"Ana","birthDate":"2000-01-01"}`,
			setup: func(svcs testServices) {
				svcs.clients.EXPECT().UpdateClient(gomock.Any(), full).Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "id taken from URL when body omits it",
			target: "/clients/3",
			body:   `{"nationalId":"1-9","name":"Ana","birthDate":"2000-01-01"}`,
			setup: func(svcs testServices) {
				svcs.clients.EXPECT().UpdateClient(gomock.Any(), full).Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "id mismatch",
			target:     "/clients/3",
			body:       `{"id":4,"nationalId":"1-9","name":"Ana","birthDate":"2000-01-01"}`,
			setup:      func(testServices) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "non-numeric id",
			target:     "/clients/abc",
			body:       `{}`,
			setup:      func(testServices) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "unknown client",
			target: "/clients/3",
			body:   `{"id":3,"nationalId":"1-9","name":"Ana","birthDate":"2000-01-01"}`,
			setup: func(svcs testServices) {
				svcs.clients.EXPECT().UpdateClient(gomock.Any(), full).Return(store.ErrClientNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, router, svcs := newTestHandler(t)
			tt.setup(svcs)

			rec := serve(router, http.MethodPut, tt.target, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestDeleteClient(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		_, router, svcs := newTestHandler(t)
		svcs.clients.EXPECT().DeleteClient(gomock.Any(), int64(5)).Return(nil)

		rec := serve(router, http.MethodDelete, "/clients/5", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("unknown client", func(t *testing.T) {
		_, router, svcs := newTestHandler(t)
		svcs.clients.EXPECT().DeleteClient(gomock.Any(), int64(5)).Return(store.ErrClientNotFound)

		rec := serve(router, http.MethodDelete, "/clients/5", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("zero id", func(t *testing.T) {
		_, router, _ := newTestHandler(t)

		rec := serve(router, http.MethodDelete, "/clients/0", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

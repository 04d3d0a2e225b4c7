package http

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/client-admin/internal/store"
	"github.com/MKhiriev/client-admin/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestListAccounts(t *testing.T) {
	t.Run("scoped by clientId", func(t *testing.T) {
		_, router, svcs := newTestHandler(t)
		svcs.accounts.EXPECT().ListAccounts(gomock.Any(), int64(4)).
			Return([]models.Account{{ID: 10, Name: "Savings", ClientID: 4}}, nil)

		rec := serve(router, http.MethodGet, "/accounts?clientId=4", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[{"id":10,"name":"Savings","clientId":4}]`, rec.Body.String())
	})

	for _, target := range []string{"/accounts", "/accounts?clientId=", "/accounts?clientId=x", "/accounts?clientId=-2"} {
		t.Run("bad query "+target, func(t *testing.T) {
			_, router, _ := newTestHandler(t)

			rec := serve(router, http.MethodGet, target, "")
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestCreateAccount(t *testing.T) {
	t.Run("created answers 201", func(t *testing.T) {
		_, router, svcs := newTestHandler(t)
		svcs.accounts.EXPECT().CreateAccount(gomock.Any(), models.Account{Name: "Savings", ClientID: 4}).
			Return(models.Account{ID: 10, Name: "Savings", ClientID: 4}, nil)

		rec := serve(router, http.MethodPost, "/accounts", `{"name":"Savings","clientId":4}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"id":10,"name":"Savings","clientId":4}`, rec.Body.String())
	})

	t.Run("unknown owner", func(t *testing.T) {
		_, router, svcs := newTestHandler(t)
		svcs.accounts.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).Return(models.Account{}, store.ErrOwnerNotFound)

		rec := serve(router, http.MethodPost, "/accounts", `{"name":"Savings","clientId":99}`)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		_, router, _ := newTestHandler(t)

		rec := serve(router, http.MethodPost, "/accounts", `[`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUpdateAccount(t *testing.T) {
	t.Run("updated answers 204", func(t *testing.T) {
		_, router, svcs := newTestHandler(t)
		svcs.accounts.EXPECT().UpdateAccount(gomock.Any(), models.Account{ID: 10, Name: "Main", ClientID: 4}).Return(nil)

		rec := serve(router, http.MethodPut, "/accounts/10", `{"id":10,"name":"Main","clientId":4}`)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("id mismatch", func(t *testing.T) {
		_, router, _ := newTestHandler(t)

		rec := serve(router, http.MethodPut, "/accounts/10", `{"id":11,"name":"Main","clientId":4}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown account", func(t *testing.T) {
		_, router, svcs := newTestHandler(t)
		svcs.accounts.EXPECT().UpdateAccount(gomock.Any(), gomock.Any()).Return(store.ErrAccountNotFound)

		rec := serve(router, http.MethodPut, "/accounts/10", `{"name":"Main","clientId":4}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDeleteAccount(t *testing.T) {
	t.Run("deleted answers 204", func(t *testing.T) {
		_, router, svcs := newTestHandler(t)
		svcs.accounts.EXPECT().DeleteAccount(gomock.Any(), int64(10)).Return(nil)

		rec := serve(router, http.MethodDelete, "/accounts/10", "")
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("unknown account", func(t *testing.T) {
		_, router, svcs := newTestHandler(t)
		svcs.accounts.EXPECT().DeleteAccount(gomock.Any(), int64(10)).Return(store.ErrAccountNotFound)

		rec := serve(router, http.MethodDelete, "/accounts/10", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

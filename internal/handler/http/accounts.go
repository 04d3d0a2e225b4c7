package http

import (
	"net/http"

	"github.com/MKhiriev/client-admin/internal/utils"
	"github.com/MKhiriev/client-admin/models"
)

func (h *Handler) listAccounts(w http.ResponseWriter, r *http.Request) {
	clientID, err := clientIDFromQuery(r)
	if err != nil {
		writeError(w, r, "*Handler.listAccounts", err)
		return
	}

	accounts, err := h.services.AccountService.ListAccounts(r.Context(), clientID)
	if err != nil {
		writeError(w, r, "*Handler.listAccounts", err)
		return
	}

	utils.WriteJSON(w, accounts, http.StatusOK)
}

// createAccount answers 201 with the stored account.
func (h *Handler) createAccount(w http.ResponseWriter, r *http.Request) {
	var account models.Account
	if err := decodeJSON(w, r, &account); err != nil {
		writeError(w, r, "*Handler.createAccount", err)
		return
	}

	created, err := h.services.AccountService.CreateAccount(r.Context(), account)
	if err != nil {
		writeError(w, r, "*Handler.createAccount", err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateAccount(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r)
	if err != nil {
		writeError(w, r, "*Handler.updateAccount", err)
		return
	}

	var account models.Account
	if err = decodeJSON(w, r, &account); err != nil {
		writeError(w, r, "*Handler.updateAccount", err)
		return
	}
	if account.ID, err = reconcileID(id, account.ID); err != nil {
		writeError(w, r, "*Handler.updateAccount", err)
		return
	}

	if err = h.services.AccountService.UpdateAccount(r.Context(), account); err != nil {
		writeError(w, r, "*Handler.updateAccount", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r)
	if err != nil {
		writeError(w, r, "*Handler.deleteAccount", err)
		return
	}

	if err = h.services.AccountService.DeleteAccount(r.Context(), id); err != nil {
		writeError(w, r, "*Handler.deleteAccount", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

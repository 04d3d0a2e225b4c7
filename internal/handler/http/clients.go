package http

import (
	"net/http"

	"github.com/MKhiriev/client-admin/internal/utils"
	"github.com/MKhiriev/client-admin/models"
)

func (h *Handler) listClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.services.ClientService.ListClients(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.listClients", err)
		return
	}

	utils.WriteJSON(w, clients, http.StatusOK)
}

// createClient answers 200 with the stored client, id included.
func (h *Handler) createClient(w http.ResponseWriter, r *http.Request) {
	var client models.Client
	if err := decodeJSON(w, r, &client); err != nil {
		writeError(w, r, "*Handler.createClient", err)
		return
	}

	created, err := h.services.ClientService.CreateClient(r.Context(), client)
	if err != nil {
		writeError(w, r, "*Handler.createClient", err)
		return
	}

	utils.WriteJSON(w, created, http.StatusOK)
}

func (h *Handler) updateClient(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r)
	if err != nil {
		writeError(w, r, "*Handler.updateClient", err)
		return
	}

	var client models.Client
	if err = decodeJSON(w, r, &client); err != nil {
		writeError(w, r, "*Handler.updateClient", err)
		return
	}
	if client.ID, err = reconcileID(id, client.ID); err != nil {
		writeError(w, r, "*Handler.updateClient", err)
		return
	}

	if err = h.services.ClientService.UpdateClient(r.Context(), client); err != nil {
		writeError(w, r, "*Handler.updateClient", err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) deleteClient(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r)
	if err != nil {
		writeError(w, r, "*Handler.deleteClient", err)
		return
	}

	if err = h.services.ClientService.DeleteClient(r.Context(), id); err != nil {
		writeError(w, r, "*Handler.deleteClient", err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

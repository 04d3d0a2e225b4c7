package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withMetrics, withGZip)

	// clients
	router.Get("/clients", h.listClients)
	router.Post("/clients", h.createClient)
	router.Put("/clients/{id}", h.updateClient)
	router.Delete("/clients/{id}", h.deleteClient)

	// accounts of one client
	router.Get("/accounts", h.listAccounts)
	router.Post("/accounts", h.createAccount)
	router.Put("/accounts/{id}", h.updateAccount)
	router.Delete("/accounts/{id}", h.deleteAccount)

	router.Get("/version", h.getServerVersion)
	router.Method(http.MethodGet, "/metrics", h.metrics.handler())

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

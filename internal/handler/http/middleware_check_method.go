// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns the router's MethodNotAllowed handler.
//
// chi answers 405 when a path matches but the method does not. This handler
// answers 404 instead, so unsupported methods look like unknown routes. If
// the method does match (for example after a route was added to the mux at
// runtime) the request is dispatched normally.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		http.NotFound(w, r)
	}
}

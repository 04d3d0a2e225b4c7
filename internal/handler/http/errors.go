// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced while decoding a request, before any service is
// called. All of them map to 400 Bad Request.
var (
	// ErrInvalidJSON is returned when the request body is not valid JSON for
	// the expected payload.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidIDParam is returned when the {id} path segment is not a
	// positive integer.
	ErrInvalidIDParam = errors.New("invalid id in URL")

	// ErrInvalidClientIDParam is returned when the clientId query parameter
	// is missing or not a positive integer.
	ErrInvalidClientIDParam = errors.New("invalid clientId query parameter")

	// ErrIDMismatch is returned when a PUT body carries an id different
	// from the one in the URL.
	ErrIDMismatch = errors.New("id in body does not match id in URL")
)

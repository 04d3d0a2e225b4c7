// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// API server's handlers and middleware.
//
// All Msg* constants are human-readable message strings written into HTTP
// response bodies when the underlying error must not be shown to the caller.
package app

const (
	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgRequestTimedOut is returned when a request runs longer than the
	// configured server request timeout.
	MsgRequestTimedOut = "request timed out"

	// MsgInvalidGzip is returned when a request declares gzip encoding but
	// its body cannot be decompressed.
	MsgInvalidGzip = "invalid gzip data"
)

// Package http implements the REST transport of the reference API server.
//
// It exposes the client and account CRUD routes consumed by the admin
// console, a version route and a Prometheus scrape endpoint. Request
// tracing, access logging, metrics and response compression are handled
// by middleware before requests reach the service layer.
package http

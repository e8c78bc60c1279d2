// Package http implements the HTTP transport of the maintenance server.
//
// It exposes route wiring, the two scheduled maintenance endpoints and the
// version endpoint. Cross-cutting concerns such as panic recovery, request
// tracing and access logging are handled by middleware before requests are
// delegated to the service layer.
package http

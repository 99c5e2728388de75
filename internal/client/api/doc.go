// Package api is the REST client for the Jobly backend.
//
// # Overview
//
// The package provides:
//  1. Transport-agnostic, per-domain API contracts (AuthAPI, CartAPI,
//     CatalogAPI, JobsAPI) consumed by the client services.
//  2. A concrete HTTP implementation (HTTPClient) that attaches the bearer
//     token, tags every request with an X-Request-Id, decodes the backend's
//     success envelope and maps failures to sentinel errors.
//
// # Error Handling
//
// Transport failures are reported as common.ErrUnavailable. HTTP 401 maps to
// common.ErrUnauthorized and 404 to common.ErrNotFound; other non-2xx
// responses surface as *Error carrying the server-provided message (or a
// generic fallback when the body is unusable). Match with errors.Is.
package api

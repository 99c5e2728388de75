package common

const (
	// AuthorizationHeader carries the bearer token on outbound requests.
	AuthorizationHeader = "Authorization"

	// BearerPrefix prefixes the token value in the Authorization header.
	BearerPrefix = "Bearer "

	// RequestIDHeader carries a client-generated id for request correlation.
	RequestIDHeader = "X-Request-Id"
)

package host

import (
	"net/http"

	"github.com/mlaily/falco/core/handler"
)

// Endpoint pairs a route with its handler. An empty method matches all
// methods.
type Endpoint struct {
	Method  string
	Pattern string
	Handler handler.Handler
}

// GetEndpoint declares a GET endpoint.
func GetEndpoint(pattern string, h handler.Handler) Endpoint {
	return Endpoint{Method: http.MethodGet, Pattern: pattern, Handler: h}
}

// PostEndpoint declares a POST endpoint.
func PostEndpoint(pattern string, h handler.Handler) Endpoint {
	return Endpoint{Method: http.MethodPost, Pattern: pattern, Handler: h}
}

// PutEndpoint declares a PUT endpoint.
func PutEndpoint(pattern string, h handler.Handler) Endpoint {
	return Endpoint{Method: http.MethodPut, Pattern: pattern, Handler: h}
}

// DeleteEndpoint declares a DELETE endpoint.
func DeleteEndpoint(pattern string, h handler.Handler) Endpoint {
	return Endpoint{Method: http.MethodDelete, Pattern: pattern, Handler: h}
}

// AnyEndpoint declares an endpoint matching every method.
func AnyEndpoint(pattern string, h handler.Handler) Endpoint {
	return Endpoint{Pattern: pattern, Handler: h}
}

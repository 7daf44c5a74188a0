// Package middleware provides the HTTP middleware stack: request logging,
// CORS, and trailing-slash normalization.
package middleware

import "net/http"

// Middleware wraps an http.Handler with additional behavior.
type Middleware func(http.Handler) http.Handler

// System composes middleware into a single wrapping applied around a handler.
type System interface {
	Use(mw Middleware)
	Apply(handler http.Handler) http.Handler
}

type stack struct {
	middleware []Middleware
}

// New creates an empty middleware system.
func New() System {
	return &stack{}
}

// Use appends a middleware to the stack. Middleware runs in registration
// order: the first registered is the outermost wrapper.
func (s *stack) Use(mw Middleware) {
	s.middleware = append(s.middleware, mw)
}

// Apply wraps the handler with every registered middleware.
func (s *stack) Apply(handler http.Handler) http.Handler {
	for i := len(s.middleware) - 1; i >= 0; i-- {
		handler = s.middleware[i](handler)
	}
	return handler
}

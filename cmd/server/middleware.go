package main

import "github.com/agentdeck/agentdeck/internal/middleware"

// buildMiddleware assembles the request middleware stack. Order matters:
// trailing-slash normalization runs before logging so redirects are not
// double-logged, and CORS wraps innermost so preflight short-circuits carry
// the logger's request id.
func buildMiddleware(rt *Runtime) middleware.System {
	stack := middleware.New()
	stack.Use(middleware.TrimSlash())
	stack.Use(middleware.Logger(rt.Logger))
	stack.Use(middleware.CORS(&rt.Config.CORS))
	return stack
}

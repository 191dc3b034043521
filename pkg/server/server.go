// Package server provides the configurable HTTP server built on Fiber.
package server

import "github.com/gofiber/fiber/v2"

// HTTPServer provides an HTTP server with prioritized middleware.
//
// Use NewHTTPServer to create a new instance.
type HTTPServer struct {
	cfg        Config
	router     *fiber.App
	listenAddr string
}

// NewHTTPServer creates a new HTTPServer with the provided configuration
// and middleware.
//
// The middlewares slice is applied in order of descending priority. The
// server uses a custom error handler for consistent error responses.
func NewHTTPServer(cfg Config, middlewares []Middleware) *HTTPServer {
	router := fiber.New(fiber.Config{
		ReadTimeout:              cfg.ReadTimeout,
		WriteTimeout:             cfg.WriteTimeout,
		IdleTimeout:              cfg.IdleTimeout,
		ErrorHandler:             customErrorHandler(cfg.HideErrorDetails),
		DisableStartupMessage:    true,
		Immutable:                true,
		BodyLimit:                cfg.BodyLimit,
		EnableSplittingOnParsers: true,
	})

	applyMiddlewares(router, middlewares)

	return &HTTPServer{
		cfg:        cfg,
		router:     router,
		listenAddr: cfg.Address(),
	}
}

// RegisterRouter registers routes with the server using the provided register function.
func (s *HTTPServer) RegisterRouter(registerFunc func(r fiber.Router)) {
	registerFunc(s.router)
}

// App exposes the underlying fiber application. Intended for tests.
func (s *HTTPServer) App() *fiber.App {
	return s.router
}

// Start begins listening for incoming HTTP requests on the configured address.
func (s *HTTPServer) Start() error {
	return s.router.Listen(s.listenAddr)
}

// Stop gracefully stops the server, allowing ongoing requests to complete.
func (s *HTTPServer) Stop() error {
	return s.router.Shutdown()
}

// Package httpapi maps the service use cases onto HTTP routes.
package httpapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rise-and-shine/filevault/internal/usecase/identity"
	"github.com/rise-and-shine/filevault/internal/usecase/uploads"
	"github.com/rise-and-shine/filevault/pkg/forward"
)

// UseCases groups the use cases exposed over HTTP.
type UseCases struct {
	Register     *identity.Register
	Authenticate *identity.Authenticate
	GetUser      *identity.GetUser
	ListUploads  *uploads.List
}

// RegisterRoutes wires the use cases into the router.
func RegisterRoutes(r fiber.Router, uc UseCases) {
	v1 := r.Group("/v1")

	auth := v1.Group("/auth")
	auth.Post("/register", forward.ToUserAction(uc.Register))
	auth.Post("/authenticate", forward.ToUserAction(uc.Authenticate))

	users := v1.Group("/users")
	users.Get("/:user_id", forward.ToUserAction(uc.GetUser))
	users.Get("/:user_id/uploads", forward.ToUserAction(uc.ListUploads))
}

package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rise-and-shine/filevault/pkg/meta"
	"github.com/rise-and-shine/filevault/pkg/server"
)

// NewMetaInjectMW creates a middleware that injects request metadata into
// the request context: a generated trace ID, client address information and
// service identity. The request user ID key is left empty and populated by
// authentication handlers.
func NewMetaInjectMW(serviceName, serviceVersion string) server.Middleware {
	return server.Middleware{
		Priority: 700,
		Handler: func(c *fiber.Ctx) error {
			metaData := map[meta.ContextKey]string{
				meta.TraceID:        uuid.NewString(),
				meta.IPAddress:      c.IP(),
				meta.UserAgent:      c.Get(fiber.HeaderUserAgent),
				meta.RemoteAddr:     c.Context().RemoteAddr().String(),
				meta.ServiceName:    serviceName,
				meta.ServiceVersion: serviceVersion,

				// set by authentication handlers
				meta.RequestUserID: "",
			}

			ctx := meta.InjectMetaToContext(c.UserContext(), metaData)
			c.SetUserContext(ctx)

			return c.Next()
		},
	}
}

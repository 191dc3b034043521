package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rise-and-shine/filevault/pkg/server"
)

// NewErrorHandlerMW creates a middleware that converts errors into
// standardized JSON responses. When hideDetails is false, the error trace
// and details are included in the response.
func NewErrorHandlerMW(hideDetails bool) server.Middleware {
	return server.Middleware{
		Priority: 400,
		Handler: func(c *fiber.Ctx) error {
			err := c.Next()
			if err == nil {
				return nil
			}

			// if error already handled, skip processing.
			if c.Response() != nil && c.Response().StatusCode() >= 400 {
				return err
			}

			return server.WriteErrorResponse(c, err, hideDetails)
		},
	}
}

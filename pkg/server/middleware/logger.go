package middleware

import (
	"runtime"
	"time"

	"github.com/code19m/errx"
	"github.com/gofiber/fiber/v2"
	"github.com/rise-and-shine/filevault/pkg/logger"
	"github.com/rise-and-shine/filevault/pkg/meta"
	"github.com/rise-and-shine/filevault/pkg/server"
	"github.com/spf13/cast"
)

// NewLoggerMW creates a middleware that logs HTTP requests and responses.
//
// The logging level is determined by the HTTP status code (info for 2xx/3xx,
// warn for 4xx, error for 5xx).
func NewLoggerMW(log logger.Logger) server.Middleware {
	return server.Middleware{
		Priority: 500,
		Handler: func(c *fiber.Ctx) error {
			entry := log.Named("middleware.logger").WithContext(c.UserContext())

			start := time.Now()

			err := handleWithRecovery(c)

			statusCode := c.Response().StatusCode()

			entry = entry.
				With("http_status_code", statusCode).
				With("http_method", c.Method()).
				With("http_path", c.Path()).
				With("http_route", c.Route().Path).
				With("hostname", c.Hostname()).
				With("duration", time.Since(start)).
				With("query_params", c.Queries()).
				With("request_size", c.Request().Header.ContentLength()).
				With("request_user_id", cast.ToString(c.Locals(meta.RequestUserID)))

			if err != nil {
				e := errx.AsErrorX(err)
				entry = entry.With("error", map[string]any{
					"code":    e.Code(),
					"message": e.Error(),
					"type":    e.Type().String(),
					"trace":   e.Trace(),
					"fields":  e.Fields(),
					"details": e.Details(),
				})
			}

			switch {
			case statusCode >= 500:
				entry.Error(err)
			case statusCode >= 400:
				entry.Warn(err)
			default:
				entry.Info("request processed successfully")
			}

			return err
		},
	}
}

// handleWithRecovery executes the next middleware and recovers from panics.
func handleWithRecovery(c *fiber.Ctx) (err error) {
	defer func() {
		if r := recover(); r != nil {
			traceSize := 4096 // 4KB
			stackTrace := make([]byte, traceSize)
			stackTrace = stackTrace[:runtime.Stack(stackTrace, false)]

			err = errx.New(
				"panic recovered at logger middleware",
				errx.WithDetails(errx.D{
					"stack_trace":   string(stackTrace),
					"panic_message": r,
				}),
			)
		}
	}()

	return c.Next()
}

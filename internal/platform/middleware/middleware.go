// Package middleware carries the request id, request logging and panic
// recovery shared by every route. The request id travels in the request
// context alongside a zerolog logger scoped to it, so downstream stages read
// both through zerolog.Ctx instead of echo's untyped key store.
package middleware

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// RequestIDHeader propagates request identifiers between client and server.
const RequestIDHeader = "X-Request-ID"

type requestIDKey struct{}

// Register installs the shared chain on e. The request id stage runs first
// so the logging and recovery stages can tag their output with it; recovery
// sits innermost so a panicking handler still produces a request line.
func Register(e *echo.Echo, logger zerolog.Logger) {
	e.Use(requestID(logger))
	e.Use(requestLogger())
	e.Use(recovery())
}

// RequestID returns the id assigned to the request, or "" when the chain
// installed by Register did not run.
func RequestID(c echo.Context) string {
	rid, _ := c.Request().Context().Value(requestIDKey{}).(string)
	return rid
}

func requestID(logger zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rid := c.Request().Header.Get(RequestIDHeader)
			if rid == "" {
				rid = uuid.New().String()
			}

			reqLogger := logger.With().Str("request_id", rid).Logger()
			ctx := reqLogger.WithContext(c.Request().Context())
			ctx = context.WithValue(ctx, requestIDKey{}, rid)
			c.SetRequest(c.Request().WithContext(ctx))

			c.Response().Header().Set(RequestIDHeader, rid)
			return next(c)
		}
	}
}

func requestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			logger := zerolog.Ctx(c.Request().Context())
			evt := logger.Info()
			if err != nil {
				evt = logger.Error().Err(err)
			}
			evt.
				Str("method", c.Request().Method).
				Str("path", c.Request().URL.Path).
				Int("status", c.Response().Status).
				Dur("latency", time.Since(start)).
				Str("remote_ip", c.RealIP()).
				Msg("request")

			return err
		}
	}
}

// recovery turns a handler panic into a logged 500. The stack capture is
// capped at 2KB, enough for the in-process call chains this service runs.
func recovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					stack := make([]byte, 2048)
					n := runtime.Stack(stack, false)
					zerolog.Ctx(c.Request().Context()).Error().
						Interface("panic", r).
						Str("stack", string(stack[:n])).
						Msg("panic recovered")
					err = echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
				}
			}()
			return next(c)
		}
	}
}

package echoapi

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/ylearn/ylearn/core/user"
)

// capabilityMiddleware gates a route on a role capability, consulted once
// here instead of per-handler role comparisons.
func capabilityMiddleware(capability string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			claims, err := getContextClaims(ctx)
			if err != nil {
				return errors.Wrap(err, "getting context claims")
			}
			if user.Can(user.User{Role: claims.Role}, capability) {
				return next(ctx)
			}
			return errHttpForbidden
		}
	}
}

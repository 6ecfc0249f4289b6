package middleware

import (
	"github.com/labstack/echo/v4"

	"mappins/internal/presentation"
)

// PinHeaders stamps the permissive CORS headers and the JSON content type on pin responses,
// including errors and preflight replies. With paths given, only requests for those paths
// are stamped; registered with echo's Pre it runs ahead of body and rate limits.
func PinHeaders(paths ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if len(paths) > 0 && !matches(c.Request().URL.Path, paths) {
				return next(c)
			}

			h := c.Response().Header()
			h.Set(echo.HeaderAccessControlAllowOrigin, "*")
			h.Set(echo.HeaderAccessControlAllowHeaders, presentation.AllowedHeaders)
			h.Set(echo.HeaderAccessControlAllowMethods, presentation.AllowedMethods)
			h.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

			return next(c)
		}
	}
}

func matches(path string, paths []string) bool {
	for _, p := range paths {
		if path == p {
			return true
		}
	}

	return false
}

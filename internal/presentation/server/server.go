package server

import (
	"io/fs"
	"math"
	"net/http"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"mappins/internal/presentation"
	"mappins/internal/presentation/handler"
	"mappins/internal/presentation/middleware"
)

// New builds the HTTP router. web is the browser client's file tree; nil leaves it unserved.
func New(cfg Config, pins *handler.PinsHandler, web fs.FS) *echo.Echo {
	cfg = cfg.WithDefaults()

	e := echo.New()
	e.HideBanner = true

	// Pin headers go on before routing so limit rejections carry them too.
	e.Pre(middleware.PinHeaders(presentation.PinsPath, presentation.APIPinsPath))

	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Secure())
	e.Use(echoMiddleware.BodyLimit(cfg.BodyLimit))
	if cfg.RateLimit > 0 {
		e.Use(echoMiddleware.RateLimiter(echoMiddleware.NewRateLimiterMemoryStoreWithConfig(
			echoMiddleware.RateLimiterMemoryStoreConfig{
				Rate:  rate.Limit(cfg.RateLimit),
				Burst: burst(cfg.RateLimit),
			})))
	}

	e.GET(presentation.HealthPath, func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	e.Any(presentation.PinsPath, pins.Handle)
	e.Any(presentation.APIPinsPath, pins.Handle)

	if web != nil {
		e.StaticFS("/", web)
	}

	return e
}

// burst lets at least one request through per client, even for sub-1 rates.
func burst(limit float64) int {
	return max(1, int(math.Ceil(limit)))
}

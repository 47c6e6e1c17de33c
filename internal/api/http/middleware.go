package http

import (
	"fmt"
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/sabbebasta/booking-platform/internal/config"
	"github.com/sabbebasta/booking-platform/internal/observability"
	"github.com/sabbebasta/booking-platform/internal/persistence"
	apperrors "github.com/sabbebasta/booking-platform/pkg/util"
)

// RegisterMiddlewares installs the global middleware chain: panic
// recovery and error translation first, request logging after.
func RegisterMiddlewares(app *fiber.App, cfg *config.Config, logger *zap.Logger, metrics *observability.Metrics) {
	app.Use(errorHandlingMiddleware(cfg, logger, metrics))
	app.Use(observability.RequestLogger(logger, metrics))
}

// errorHandlingMiddleware converts every error into the JSON error
// envelope and recovers panics. Stack traces are included in the
// response details outside production only.
func errorHandlingMiddleware(cfg *config.Config, logger *zap.Logger, metrics *observability.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered",
					zap.Any("panic", r),
					zap.String("path", c.Path()),
					zap.String("method", c.Method()),
					zap.ByteString("stack", debug.Stack()),
				)
				domainErr := apperrors.ToDomainError(apperrors.NewInternalError(fmt.Errorf("panic: %v", r)))
				if !cfg.App.IsProduction() {
					if domainErr.Details == nil {
						domainErr.Details = map[string]any{}
					}
					domainErr.Details["stack"] = string(debug.Stack())
				}
				writeError(c, domainErr, metrics)
			}
		}()

		err := c.Next()
		if err == nil {
			return nil
		}

		domainErr := apperrors.ToDomainError(err)
		if domainErr.HTTPStatus >= 500 {
			logger.Error("request failed",
				zap.String("path", c.Path()),
				zap.String("method", c.Method()),
				zap.String("code", domainErr.Code),
				zap.Error(err),
			)
		}
		return writeError(c, domainErr, metrics)
	}
}

func writeError(c *fiber.Ctx, domainErr *apperrors.DomainError, metrics *observability.Metrics) error {
	metrics.RecordError(c.Path(), c.Method(), domainErr.Code)
	return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    domainErr.Code,
			"message": domainErr.Message,
			"details": domainErr.Details,
		},
	})
}

// RequireDatabase rejects storage-backed routes while the database is
// unreachable. The availability check re-probes the connection, so a
// recovered database is picked up on the next request.
func RequireDatabase(pg *persistence.Postgres) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !pg.IsAvailable(c.Context()) {
			return apperrors.NewDatabaseUnavailable()
		}
		return c.Next()
	}
}

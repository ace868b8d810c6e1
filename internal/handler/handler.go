// Package handler exposes the moderation operations over HTTP for the admin
// pages and the session ban-guard.
package handler

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"community-guard/internal/config"
	"community-guard/internal/logger"
	"community-guard/internal/service"
)

var globalConfig *config.Config

// Store failures surface generically; the audit trail may already hold
// partial writes and the moderator gets no partial-state indication.
var ErrTryAgain = fiber.Map{"error": "잠시 후 다시 시도하세요."}

// Initialize stores the configuration used by the handlers.
func Initialize(cfg *config.Config) {
	globalConfig = cfg
}

// RegisterRoutes wires all API routes onto the app.
func RegisterRoutes(app *fiber.App) {
	api := app.Group("/api", JwtRequired)

	punishmentRoutes(api)
	banRoutes(api)
	appealRoutes(api)
	directoryRoutes(api)
	notificationRoutes(api)
}

// respondError maps service failures to HTTP statuses: validation input
// errors to 400 with their user-facing message, ownership rejections to 403,
// unknown ids to 404, anything else to a generic 500.
func respondError(c *fiber.Ctx, err error) error {
	if service.IsValidationError(err) {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if errors.Is(err, service.ErrNotOwner) {
		return c.Status(http.StatusForbidden).JSON(fiber.Map{"error": "본인 기록만 처리할 수 있습니다."})
	}
	if errors.Is(err, service.ErrNotFound) {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "대상을 찾을 수 없습니다."})
	}
	logger.Errorf("request failed: %v", err)
	return c.Status(http.StatusInternalServerError).JSON(ErrTryAgain)
}

package handler

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"community-guard/internal/service"
)

type saveBanRequest struct {
	Email  string     `json:"email"`
	Reason string     `json:"reason"`
	Until  *time.Time `json:"until"`
}

func banRoutes(router fiber.Router) {
	router.Get("/bans/me", myBan)
	router.Get("/bans", ModeratorRequired, listBans)
	router.Post("/bans", ModeratorRequired, saveBan)
	router.Delete("/bans/:email", ModeratorRequired, clearBan)
	router.Get("/banlogs", ModeratorRequired, banLogs)
}

// myBan is the session ban-guard endpoint: the client polls it on bootstrap
// and redirects a banned user.
func myBan(c *fiber.Ctx) error {
	ban, err := service.FetchActiveBan(currentActor(c))
	if err != nil {
		return respondError(c, err)
	}
	if ban == nil {
		return c.Status(http.StatusNoContent).Send(nil)
	}
	return c.JSON(ban)
}

func listBans(c *fiber.Ctx) error {
	bans, err := service.ListActiveBans()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(bans)
}

func saveBan(c *fiber.Ctx) error {
	var req saveBanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := service.SaveBan(req.Email, req.Reason, req.Until, currentActor(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"banned": true})
}

func clearBan(c *fiber.Ctx) error {
	if err := service.ClearBan(c.Params("email")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"cleared": true})
}

func banLogs(c *fiber.Ctx) error {
	entries, err := service.FetchBanLogs()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(entries)
}

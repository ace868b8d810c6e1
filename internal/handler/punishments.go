package handler

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"community-guard/internal/identity"
	"community-guard/internal/service"
)

type applyPunishmentRequest struct {
	Email          string `json:"email"`
	Reason         string `json:"reason"`
	AddCautions    int    `json:"addCautions"`
	AddWarnings    int    `json:"addWarnings"`
	SuspensionDays *int   `json:"suspensionDays"`
}

func punishmentRoutes(router fiber.Router) {
	router.Post("/punishments", ModeratorRequired, applyPunishment)
	router.Get("/punishments", ModeratorRequired, punishmentHistory)
	router.Get("/punishments/recent", recentPunishments)
	router.Get("/punishments/pending", pendingPunishment)
	router.Post("/punishments/:id/ack", acknowledgePunishment)
	router.Get("/counters", ModeratorRequired, punishmentCounters)
}

func applyPunishment(c *fiber.Ctx) error {
	var req applyPunishmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	result, err := service.ApplyPunishment(req.Email, currentActor(c), req.Reason, req.AddCautions, req.AddWarnings, req.SuspensionDays)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}

func punishmentHistory(c *fiber.Ctx) error {
	records, err := service.FetchPunishmentHistory()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(records)
}

// recentPunishments serves a user's own record list for the appeal page; a
// moderator may query any email.
func recentPunishments(c *fiber.Ctx) error {
	actor := currentActor(c)
	email := c.Query("email", actor)
	if identity.Normalize(email) != actor && !identity.IsModerator(globalConfig.Moderation.AdminEmails, actor) {
		return c.Status(http.StatusForbidden).JSON(ErrModeratorOnly)
	}
	years, _ := strconv.Atoi(c.Query("years", "3"))

	records, err := service.FetchRecentPunishments(email, years)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(records)
}

func pendingPunishment(c *fiber.Ctx) error {
	record, err := service.FetchPendingPunishment(currentActor(c))
	if err != nil {
		return respondError(c, err)
	}
	if record == nil {
		return c.Status(http.StatusNoContent).Send(nil)
	}
	return c.JSON(record)
}

func acknowledgePunishment(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid punishment id"})
	}
	if err := service.AcknowledgePunishment(currentActor(c), uint(id)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"acknowledged": true})
}

func punishmentCounters(c *fiber.Ctx) error {
	counters, err := service.GetPunishmentCounters(c.Query("email"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(counters)
}

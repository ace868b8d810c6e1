package handler

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"community-guard/internal/models"
	"community-guard/internal/service"
)

type createAppealRequest struct {
	PunishmentID uint   `json:"punishmentId"`
	Message      string `json:"message"`
}

type resolveAppealRequest struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
	// Revoke overrides the default convention (revoke on approval) when set.
	Revoke *bool `json:"revoke"`
}

func appealRoutes(router fiber.Router) {
	router.Post("/appeals", createAppeal)
	router.Get("/appeals", ModeratorRequired, listAppeals)
	router.Get("/appeals/pending", ModeratorRequired, pendingAppeals)
	router.Post("/appeals/:id/resolve", ModeratorRequired, resolveAppeal)
}

func createAppeal(c *fiber.Ctx) error {
	var req createAppealRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	appeal, err := service.CreateAppeal(currentActor(c), req.PunishmentID, req.Message)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(appeal)
}

func listAppeals(c *fiber.Ctx) error {
	appeals, err := service.FetchAppeals()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(appeals)
}

func pendingAppeals(c *fiber.Ctx) error {
	appeals, err := service.FetchPendingAppeals()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(appeals)
}

func resolveAppeal(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid appeal id"})
	}
	var req resolveAppealRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	revoke := req.Status == models.AppealApproved
	if req.Revoke != nil {
		revoke = *req.Revoke
	}

	if err := service.ResolveAppeal(uint(id), req.Status, req.Reason, revoke); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"resolved": true})
}

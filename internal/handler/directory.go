package handler

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"community-guard/internal/service"
)

type directoryEntryRequest struct {
	Nickname string `json:"nickname"`
	PhotoURL string `json:"photoURL"`
}

type notificationRequest struct {
	Message string `json:"message"`
	Link    string `json:"link"`
}

func directoryRoutes(router fiber.Router) {
	router.Put("/directory/me", saveDirectoryEntry)
	router.Get("/directory/search", ModeratorRequired, searchDirectory)
}

func notificationRoutes(router fiber.Router) {
	router.Get("/notifications", listNotifications)
	router.Post("/notifications", ModeratorRequired, sendNotification)
}

func saveDirectoryEntry(c *fiber.Ctx) error {
	var req directoryEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := service.SaveDirectoryEntry(currentActor(c), req.Nickname, req.PhotoURL); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"saved": true})
}

func searchDirectory(c *fiber.Ctx) error {
	entries, err := service.SearchUsersByNickname(c.Query("nickname"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(entries)
}

func listNotifications(c *fiber.Ctx) error {
	notifications, err := service.ListNotifications(c.QueryInt("limit", 0))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(notifications)
}

func sendNotification(c *fiber.Ctx) error {
	var req notificationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	notification, err := service.SendNotification(req.Message, req.Link, currentActor(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(notification)
}

package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/mindcarehq/mindcare-backend/internal/dto"
	"github.com/mindcarehq/mindcare-backend/internal/middleware"
	"github.com/mindcarehq/mindcare-backend/internal/services"
)

// JournalHandler handles video-journal analysis and history.
type JournalHandler struct {
	journalService *services.JournalService
}

func NewJournalHandler(journalService *services.JournalService) *JournalHandler {
	return &JournalHandler{journalService: journalService}
}

// Create handles POST /api/moods/journal
func (h *JournalHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": true, "message": "Unauthorized",
		})
	}

	var req dto.CreateJournalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Invalid request body",
		})
	}

	resp, err := h.journalService.Analyze(userID, req.Timeline, req.Transcript)
	if err != nil {
		if errors.Is(err, services.ErrEmptyTimeline) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": true, "message": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "Failed to save journal entry",
		})
	}

	return c.JSON(resp)
}

// History handles GET /api/moods/journal
func (h *JournalHandler) History(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": true, "message": "Unauthorized",
		})
	}

	entries, err := h.journalService.History(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "Failed to fetch journal history",
		})
	}

	return c.JSON(entries)
}

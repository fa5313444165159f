package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/mindcarehq/mindcare-backend/internal/dto"
	"github.com/mindcarehq/mindcare-backend/internal/middleware"
	"github.com/mindcarehq/mindcare-backend/internal/services"
)

// EmotionHandler handles single-frame emotion detection requests from
// the camera mood-mirror flow.
type EmotionHandler struct {
	emotionService *services.EmotionService
}

func NewEmotionHandler(emotionService *services.EmotionService) *EmotionHandler {
	return &EmotionHandler{emotionService: emotionService}
}

// Detect handles POST /api/moods/detect-emotion
func (h *EmotionHandler) Detect(c *fiber.Ctx) error {
	if _, err := middleware.UserID(c); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": true, "message": "Unauthorized",
		})
	}

	var req dto.DetectEmotionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Invalid request body",
		})
	}

	result, err := h.emotionService.Detect(req.ImageData)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoEmotion):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": true, "message": "No face detected",
			})
		case errors.Is(err, services.ErrImageRequired):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": true, "message": err.Error(),
			})
		default:
			// Provider misconfiguration or an upstream AI outage, not
			// the caller's fault.
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error": true, "message": "Emotion service unavailable",
			})
		}
	}

	return c.JSON(result)
}

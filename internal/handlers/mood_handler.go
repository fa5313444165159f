package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/mindcarehq/mindcare-backend/internal/config"
	"github.com/mindcarehq/mindcare-backend/internal/dto"
	"github.com/mindcarehq/mindcare-backend/internal/middleware"
	"github.com/mindcarehq/mindcare-backend/internal/services"
)

// MoodHandler handles HTTP requests for daily mood logging and the
// derived summaries.
type MoodHandler struct {
	moodService    *services.MoodService
	insightService *services.InsightService
	reportService  *services.ReportService
	cfg            *config.Config
}

func NewMoodHandler(moodService *services.MoodService, insightService *services.InsightService, reportService *services.ReportService, cfg *config.Config) *MoodHandler {
	return &MoodHandler{
		moodService:    moodService,
		insightService: insightService,
		reportService:  reportService,
		cfg:            cfg,
	}
}

// Log handles POST /api/moods
func (h *MoodHandler) Log(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": true, "message": "Unauthorized",
		})
	}

	var req dto.LogMoodRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Invalid request body",
		})
	}

	resp, err := h.moodService.Log(userID, req.Mood, req.Activities)
	if err != nil {
		if errors.Is(err, services.ErrMoodOutOfRange) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": true, "message": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "Failed to log mood",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// History handles GET /api/moods?days=N. days defaults to the configured
// retention window; days=0 requests full history.
func (h *MoodHandler) History(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": true, "message": "Unauthorized",
		})
	}

	days := h.cfg.MoodRetentionDays
	if raw := c.Query("days"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			days = n
		}
	}

	entries, err := h.moodService.History(userID, days)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "Failed to fetch history",
		})
	}

	return c.JSON(entries)
}

// WeeklySummary handles GET /api/moods/summary/weekly
func (h *MoodHandler) WeeklySummary(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": true, "message": "Unauthorized",
		})
	}

	summary, err := h.moodService.WeeklySummary(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "Failed to build weekly summary",
		})
	}

	return c.JSON(summary)
}

// MonthlySummary handles GET /api/moods/summary/monthly
func (h *MoodHandler) MonthlySummary(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": true, "message": "Unauthorized",
		})
	}

	grid, err := h.moodService.MonthlySummary(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "Failed to build monthly summary",
		})
	}

	return c.JSON(grid)
}

// Insights handles GET /api/moods/insights
func (h *MoodHandler) Insights(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": true, "message": "Unauthorized",
		})
	}

	entries, err := h.moodService.History(userID, h.cfg.MoodRetentionDays)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "Failed to fetch history",
		})
	}

	// History is newest first; the analysis reads oldest first.
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}

	return c.JSON(dto.InsightsResponse{Insights: *h.insightService.Build(entries)})
}

// ExportPDF handles GET /api/moods/export-pdf
func (h *MoodHandler) ExportPDF(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": true, "message": "Unauthorized",
		})
	}

	entries, err := h.moodService.History(userID, h.cfg.MoodRetentionDays)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "Failed to fetch history",
		})
	}
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}

	report, err := h.reportService.BuildMoodReport(entries, h.cfg.MoodRetentionDays)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "Failed to generate report",
		})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="mindcare_mood_report.pdf"`)
	return c.Send(report)
}

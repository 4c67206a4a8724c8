package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/RebeyMasota/fittrack-backend/internal/services"
)

type MetricsHandler struct {
	metrics *services.MetricsService
}

func NewMetricsHandler(metrics *services.MetricsService) *MetricsHandler {
	return &MetricsHandler{metrics: metrics}
}

// GetUserMetrics returns today's metrics, creating the day's record on
// first access.
func (h *MetricsHandler) GetUserMetrics(c *fiber.Ctx) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	metrics, err := h.metrics.GetUserMetrics(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err, "Failed to fetch metrics")
	}
	return c.JSON(fiber.Map{"metrics": metrics})
}

func (h *MetricsHandler) LogSteps(c *fiber.Ctx) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req struct {
		Steps int `json:"steps"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	metrics, err := h.metrics.LogSteps(c.Context(), userID, req.Steps)
	if err != nil {
		return respondServiceError(c, err, "Failed to log steps")
	}
	return c.JSON(fiber.Map{"metrics": metrics})
}

func (h *MetricsHandler) LogWater(c *fiber.Ctx) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req struct {
		Liters float64 `json:"liters"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	metrics, err := h.metrics.LogWater(c.Context(), userID, req.Liters)
	if err != nil {
		return respondServiceError(c, err, "Failed to log water")
	}
	return c.JSON(fiber.Map{"metrics": metrics})
}

func (h *MetricsHandler) LogSleep(c *fiber.Ctx) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req struct {
		Hours float64 `json:"hours"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	metrics, err := h.metrics.LogSleep(c.Context(), userID, req.Hours)
	if err != nil {
		return respondServiceError(c, err, "Failed to log sleep")
	}
	return c.JSON(fiber.Map{"metrics": metrics})
}

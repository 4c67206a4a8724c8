package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/RebeyMasota/fittrack-backend/internal/models"
	"github.com/RebeyMasota/fittrack-backend/internal/services"
)

type RecommendationHandler struct {
	recommendations *services.RecommendationService
}

func NewRecommendationHandler(recommendations *services.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{recommendations: recommendations}
}

func (h *RecommendationHandler) GetRecommendations(c *fiber.Ctx) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	category := c.Query("category")
	if message := validateCategory(category); message != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
	}

	recommendations, err := h.recommendations.GetRecommendations(c.Context(), userID, category)
	if err != nil {
		return respondServiceError(c, err, "Failed to fetch recommendations")
	}
	return c.JSON(fiber.Map{"recommendations": recommendations})
}

// GetCards assembles the live card set from the profile and today's
// progress.
func (h *RecommendationHandler) GetCards(c *fiber.Ctx) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	category := c.Query("category")
	if message := validateCategory(category); message != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
	}

	cards, err := h.recommendations.AssembleCards(c.Context(), userID, category)
	if err != nil {
		return respondServiceError(c, err, "Failed to assemble recommendations")
	}
	return c.JSON(fiber.Map{"recommendations": cards})
}

func (h *RecommendationHandler) GetAllRecommendations(c *fiber.Ctx) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	recommendations, err := h.recommendations.GetAllRecommendations(c.Context(), userID, c.Query("category"))
	if err != nil {
		return respondServiceError(c, err, "Failed to fetch recommendations")
	}
	return c.JSON(fiber.Map{"recommendations": recommendations})
}

func (h *RecommendationHandler) CreateRecommendation(c *fiber.Ctx) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var rec models.Recommendation
	if err := c.BodyParser(&rec); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if message := validateCategory(rec.Category); message != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
	}
	if rec.Category == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "category is required"})
	}

	if err := h.recommendations.CreateRecommendation(c.Context(), userID, &rec); err != nil {
		return respondServiceError(c, err, "Failed to create recommendation")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"recommendation": rec})
}

func (h *RecommendationHandler) UpdateRecommendation(c *fiber.Ctx) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid recommendation id"})
	}

	var rec models.Recommendation
	if err := c.BodyParser(&rec); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	updated, err := h.recommendations.UpdateRecommendation(c.Context(), userID, id, rec)
	if err != nil {
		return respondServiceError(c, err, "Failed to update recommendation")
	}
	return c.JSON(fiber.Map{"recommendation": updated})
}

func (h *RecommendationHandler) DeleteRecommendation(c *fiber.Ctx) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid recommendation id"})
	}

	if err := h.recommendations.DeleteRecommendation(c.Context(), userID, id); err != nil {
		return respondServiceError(c, err, "Failed to delete recommendation")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func validateCategory(category string) string {
	if category == "" {
		return ""
	}
	for _, known := range models.RecommendationCategories {
		if category == known {
			return ""
		}
	}
	return "category must be one of: workout, nutrition, hydration, rest"
}

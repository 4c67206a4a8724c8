package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/RebeyMasota/fittrack-backend/internal/services"
)

type ProfileHandler struct {
	profiles *services.ProfileService
}

func NewProfileHandler(profiles *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	user, err := h.profiles.GetProfile(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err, "Failed to fetch profile")
	}
	return c.JSON(fiber.Map{"user": user})
}

func (h *ProfileHandler) CompleteProfile(c *fiber.Ctx) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req services.CompleteProfileInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if message := validateCompleteProfileRequest(req); message != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
	}

	user, err := h.profiles.CompleteProfile(c.Context(), userID, req)
	if err != nil {
		return respondServiceError(c, err, "Failed to complete profile")
	}
	return c.JSON(fiber.Map{"user": user})
}

func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req services.UpdateProfileInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if message := validateUpdateProfileRequest(req); message != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
	}

	user, err := h.profiles.UpdateProfile(c.Context(), userID, req)
	if err != nil {
		return respondServiceError(c, err, "Failed to update profile")
	}
	return c.JSON(fiber.Map{"user": user})
}

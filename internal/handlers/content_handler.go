package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/RebeyMasota/fittrack-backend/internal/models"
	"github.com/RebeyMasota/fittrack-backend/internal/services"
)

type ContentHandler struct {
	content *services.ContentService
}

func NewContentHandler(content *services.ContentService) *ContentHandler {
	return &ContentHandler{content: content}
}

func (h *ContentHandler) GetCourses(c *fiber.Ctx) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	courses, err := h.content.GetCourses(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err, "Failed to fetch courses")
	}
	return c.JSON(fiber.Map{"courses": courses})
}

func (h *ContentHandler) GetCourse(c *fiber.Ctx) error {
	if _, ok := authenticatedUserID(c); !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid course id"})
	}

	course, err := h.content.GetCourse(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err, "Failed to fetch course")
	}
	return c.JSON(fiber.Map{"course": course})
}

func (h *ContentHandler) GetHealthTips(c *fiber.Ctx) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	tips, err := h.content.GetHealthTips(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err, "Failed to fetch health tips")
	}
	return c.JSON(fiber.Map{"health_tips": tips})
}

func (h *ContentHandler) GetDidYouKnowFacts(c *fiber.Ctx) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	facts, err := h.content.GetDidYouKnowFacts(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err, "Failed to fetch facts")
	}
	return c.JSON(fiber.Map{"facts": facts})
}

func (h *ContentHandler) GetAllCourses(c *fiber.Ctx) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	courses, err := h.content.GetAllCourses(c.Context(), userID, c.Query("fitness_goal"))
	if err != nil {
		return respondServiceError(c, err, "Failed to fetch courses")
	}
	return c.JSON(fiber.Map{"courses": courses})
}

func (h *ContentHandler) GetAllHealthTips(c *fiber.Ctx) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	tips, err := h.content.GetAllHealthTips(c.Context(), userID, c.Query("category"))
	if err != nil {
		return respondServiceError(c, err, "Failed to fetch health tips")
	}
	return c.JSON(fiber.Map{"health_tips": tips})
}

func (h *ContentHandler) GetAllDidYouKnowFacts(c *fiber.Ctx) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	facts, err := h.content.GetAllDidYouKnowFacts(c.Context(), userID, c.Query("fitness_goal"))
	if err != nil {
		return respondServiceError(c, err, "Failed to fetch facts")
	}
	return c.JSON(fiber.Map{"facts": facts})
}

func (h *ContentHandler) CreateCourse(c *fiber.Ctx) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var course models.Course
	if err := c.BodyParser(&course); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if course.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "title is required"})
	}

	if err := h.content.CreateCourse(c.Context(), userID, &course); err != nil {
		return respondServiceError(c, err, "Failed to create course")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"course": course})
}

func (h *ContentHandler) UpdateCourse(c *fiber.Ctx) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid course id"})
	}

	var course models.Course
	if err := c.BodyParser(&course); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	updated, err := h.content.UpdateCourse(c.Context(), userID, id, course)
	if err != nil {
		return respondServiceError(c, err, "Failed to update course")
	}
	return c.JSON(fiber.Map{"course": updated})
}

func (h *ContentHandler) DeleteCourse(c *fiber.Ctx) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid course id"})
	}

	if err := h.content.DeleteCourse(c.Context(), userID, id); err != nil {
		return respondServiceError(c, err, "Failed to delete course")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ContentHandler) CreateHealthTip(c *fiber.Ctx) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var tip models.HealthTip
	if err := c.BodyParser(&tip); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if tip.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "title is required"})
	}

	if err := h.content.CreateHealthTip(c.Context(), userID, &tip); err != nil {
		return respondServiceError(c, err, "Failed to create health tip")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"health_tip": tip})
}

func (h *ContentHandler) UpdateHealthTip(c *fiber.Ctx) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid health tip id"})
	}

	var tip models.HealthTip
	if err := c.BodyParser(&tip); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	updated, err := h.content.UpdateHealthTip(c.Context(), userID, id, tip)
	if err != nil {
		return respondServiceError(c, err, "Failed to update health tip")
	}
	return c.JSON(fiber.Map{"health_tip": updated})
}

func (h *ContentHandler) DeleteHealthTip(c *fiber.Ctx) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid health tip id"})
	}

	if err := h.content.DeleteHealthTip(c.Context(), userID, id); err != nil {
		return respondServiceError(c, err, "Failed to delete health tip")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ContentHandler) CreateDidYouKnow(c *fiber.Ctx) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var fact models.DidYouKnow
	if err := c.BodyParser(&fact); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if fact.Fact == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "fact is required"})
	}

	if err := h.content.CreateDidYouKnow(c.Context(), userID, &fact); err != nil {
		return respondServiceError(c, err, "Failed to create fact")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"fact": fact})
}

func (h *ContentHandler) UpdateDidYouKnow(c *fiber.Ctx) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid fact id"})
	}

	var fact models.DidYouKnow
	if err := c.BodyParser(&fact); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	updated, err := h.content.UpdateDidYouKnow(c.Context(), userID, id, fact)
	if err != nil {
		return respondServiceError(c, err, "Failed to update fact")
	}
	return c.JSON(fiber.Map{"fact": updated})
}

func (h *ContentHandler) DeleteDidYouKnow(c *fiber.Ctx) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid fact id"})
	}

	if err := h.content.DeleteDidYouKnow(c.Context(), userID, id); err != nil {
		return respondServiceError(c, err, "Failed to delete fact")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

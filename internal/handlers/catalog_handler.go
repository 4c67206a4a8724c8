package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/RebeyMasota/fittrack-backend/internal/repository"
	"github.com/RebeyMasota/fittrack-backend/internal/services"
)

type CatalogHandler struct {
	catalog  *services.CatalogService
	activity *services.ActivityService
}

func NewCatalogHandler(catalog *services.CatalogService, activity *services.ActivityService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, activity: activity}
}

func (h *CatalogHandler) GetExercises(c *fiber.Ctx) error {
	if _, ok := authenticatedUserID(c); !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	filter := repository.ExerciseFilter{
		Type:        c.Query("type"),
		MuscleGroup: c.Query("muscle_group"),
		Difficulty:  c.Query("difficulty"),
	}
	exercises, err := h.catalog.GetExercises(c.Context(), filter)
	if err != nil {
		return respondServiceError(c, err, "Failed to fetch exercises")
	}
	return c.JSON(fiber.Map{"exercises": exercises})
}

func (h *CatalogHandler) GetExercise(c *fiber.Ctx) error {
	if _, ok := authenticatedUserID(c); !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid exercise id"})
	}

	exercise, err := h.catalog.GetExercise(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err, "Failed to fetch exercise")
	}
	return c.JSON(fiber.Map{"exercise": exercise})
}

func (h *CatalogHandler) GetMeals(c *fiber.Ctx) error {
	if _, ok := authenticatedUserID(c); !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	filter := repository.MealFilter{}
	if tag := c.Query("dietary_tag"); tag != "" {
		filter.DietaryTags = []string{tag}
	}
	if maxCalories := c.QueryInt("max_calories"); maxCalories > 0 {
		filter.MaxCalories = maxCalories
	}
	meals, err := h.catalog.GetMeals(c.Context(), filter)
	if err != nil {
		return respondServiceError(c, err, "Failed to fetch meals")
	}
	return c.JSON(fiber.Map{"meals": meals})
}

func (h *CatalogHandler) GetMeal(c *fiber.Ctx) error {
	if _, ok := authenticatedUserID(c); !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid meal id"})
	}

	meal, err := h.catalog.GetMeal(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err, "Failed to fetch meal")
	}
	return c.JSON(fiber.Map{"meal": meal})
}

func (h *CatalogHandler) LogWorkout(c *fiber.Ctx) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req struct {
		ExerciseID  string `json:"exercise_id"`
		Duration    int    `json:"duration"`
		Repetitions *int   `json:"repetitions"`
		Sets        *int   `json:"sets"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	exerciseID, err := primitive.ObjectIDFromHex(req.ExerciseID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid exercise id"})
	}

	entry, err := h.activity.LogWorkout(c.Context(), userID, services.LogWorkoutInput{
		ExerciseID:  exerciseID,
		Duration:    req.Duration,
		Repetitions: req.Repetitions,
		Sets:        req.Sets,
	})
	if err != nil {
		return respondServiceError(c, err, "Failed to log workout")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"workout_log": entry})
}

func (h *CatalogHandler) LogMeal(c *fiber.Ctx) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req struct {
		MealID string `json:"meal_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	mealID, err := primitive.ObjectIDFromHex(req.MealID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid meal id"})
	}

	entry, err := h.activity.LogMeal(c.Context(), userID, mealID)
	if err != nil {
		return respondServiceError(c, err, "Failed to log meal")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"meal_log": entry})
}

func (h *CatalogHandler) WorkoutHistory(c *fiber.Ctx) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	logs, err := h.activity.WorkoutHistory(c.Context(), userID, listLimit(c))
	if err != nil {
		return respondServiceError(c, err, "Failed to fetch workout history")
	}
	return c.JSON(fiber.Map{"workout_logs": logs})
}

func (h *CatalogHandler) MealHistory(c *fiber.Ctx) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	logs, err := h.activity.MealHistory(c.Context(), userID, listLimit(c))
	if err != nil {
		return respondServiceError(c, err, "Failed to fetch meal history")
	}
	return c.JSON(fiber.Map{"meal_logs": logs})
}

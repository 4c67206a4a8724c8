package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/RebeyMasota/fittrack-backend/internal/services"
)

type FeedHandler struct {
	feed *services.FeedService
}

func NewFeedHandler(feed *services.FeedService) *FeedHandler {
	return &FeedHandler{feed: feed}
}

func (h *FeedHandler) GetFeed(c *fiber.Ctx) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	posts, err := h.feed.GetFeed(c.Context(), userID, listLimit(c))
	if err != nil {
		return respondServiceError(c, err, "Failed to fetch feed")
	}
	return c.JSON(fiber.Map{"posts": posts})
}

func (h *FeedHandler) GetPost(c *fiber.Ctx) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	postID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid post id"})
	}

	post, err := h.feed.GetPost(c.Context(), userID, postID)
	if err != nil {
		return respondServiceError(c, err, "Failed to fetch post")
	}
	return c.JSON(fiber.Map{"post": post})
}

func (h *FeedHandler) CreatePost(c *fiber.Ctx) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req services.CreatePostInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	post, err := h.feed.CreatePost(c.Context(), userID, req)
	if err != nil {
		return respondServiceError(c, err, "Failed to create post")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"post": post})
}

func (h *FeedHandler) UpdatePost(c *fiber.Ctx) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	postID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid post id"})
	}

	var req services.UpdatePostInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	post, err := h.feed.UpdatePost(c.Context(), userID, postID, req)
	if err != nil {
		return respondServiceError(c, err, "Failed to update post")
	}
	return c.JSON(fiber.Map{"post": post})
}

func (h *FeedHandler) DeletePost(c *fiber.Ctx) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	postID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid post id"})
	}

	if err := h.feed.DeletePost(c.Context(), userID, postID); err != nil {
		return respondServiceError(c, err, "Failed to delete post")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *FeedHandler) ToggleLike(c *fiber.Ctx) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	postID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid post id"})
	}

	post, err := h.feed.ToggleLike(c.Context(), userID, postID)
	if err != nil {
		return respondServiceError(c, err, "Failed to toggle like")
	}
	return c.JSON(fiber.Map{"post": post})
}

func (h *FeedHandler) CommentPost(c *fiber.Ctx) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	postID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid post id"})
	}

	var req struct {
		Comment string `json:"comment"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	post, err := h.feed.CommentPost(c.Context(), userID, postID, req.Comment)
	if err != nil {
		return respondServiceError(c, err, "Failed to comment on post")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"post": post})
}

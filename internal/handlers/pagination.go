package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// listLimit parses the optional limit query parameter, clamping it to
// a sane window.
func listLimit(c *fiber.Ctx) int64 {
	raw := c.Query("limit")
	if raw == "" {
		return defaultListLimit
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return int64(limit)
}

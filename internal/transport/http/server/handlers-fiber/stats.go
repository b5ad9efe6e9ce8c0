package handlers_fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// GetStats returns entity counts across the store.
func (h *Handler) GetStats(c *fiber.Ctx) error {
	stats, err := h.uc.Stats(c.Context())
	if err != nil {
		h.log.Errorw("failed to get stats", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(stats)
}

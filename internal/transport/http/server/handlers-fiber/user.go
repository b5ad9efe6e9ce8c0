package handlers_fiber

import (
	"net/http"

	"github.com/jarrensj/monkfish/internal/api"
	"github.com/jarrensj/monkfish/internal/mapper"
	"github.com/jarrensj/monkfish/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

type setUsernameRequest struct {
	Username string `json:"username"`
}

// PatchUsername sets the display name of the bound identity.
func (h *Handler) PatchUsername(c *fiber.Ctx) error {
	usr, ok := middleware.BoundUser(c)
	if !ok {
		return writeWalletRequired(c)
	}

	var body setUsernameRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(api.ErrorResponse{Error: "invalid body"})
	}

	updated, err := h.uc.SetUsername(c.Context(), usr.ID, body.Username)
	if err != nil {
		h.log.Errorw("failed to set username", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToAPIUser(*updated))
}

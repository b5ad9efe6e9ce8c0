package handlers_fiber

import (
	"net/http"

	"github.com/jarrensj/monkfish/internal/api"
	"github.com/jarrensj/monkfish/internal/mapper"
	"github.com/jarrensj/monkfish/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

type generateWalletRequest struct {
	TeamName string `json:"team_name"`
}

// PostWalletGenerate provisions a wallet for a team on behalf of the bound
// identity.
func (h *Handler) PostWalletGenerate(c *fiber.Ctx) error {
	usr, ok := middleware.BoundUser(c)
	if !ok {
		return writeWalletRequired(c)
	}

	var body generateWalletRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(api.ErrorResponse{Error: "invalid body"})
	}

	wallet, err := h.uc.GenerateTeamWallet(c.Context(), body.TeamName, usr.ID)
	if err != nil {
		h.log.Infow("wallet generation rejected", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToAPIWallet(*wallet))
}

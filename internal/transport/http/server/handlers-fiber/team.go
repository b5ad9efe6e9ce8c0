package handlers_fiber

import (
	"net/http"
	"strconv"

	"github.com/jarrensj/monkfish/internal/api"
	"github.com/jarrensj/monkfish/internal/entities"
	"github.com/jarrensj/monkfish/internal/mapper"
	"github.com/jarrensj/monkfish/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

type createTeamRequest struct {
	TeamName        string              `json:"team_name"`
	WalletAddresses []api.WalletAddress `json:"wallet_addresses"`
}

type joinTeamRequest struct {
	TeamName string `json:"team_name"`
}

// PostTeamCreate creates a team owned by the bound identity.
func (h *Handler) PostTeamCreate(c *fiber.Ctx) error {
	usr, ok := middleware.BoundUser(c)
	if !ok {
		return writeWalletRequired(c)
	}

	var body createTeamRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(api.ErrorResponse{Error: "invalid body"})
	}

	wallets := make([]entities.WalletAddress, 0, len(body.WalletAddresses))
	for _, w := range body.WalletAddresses {
		wallets = append(wallets, entities.WalletAddress{Chain: w.Chain, Address: w.Address})
	}

	team, err := h.uc.CreateTeam(c.Context(), body.TeamName, usr.ID, wallets)
	if err != nil {
		h.log.Infow("team creation rejected", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(mapper.ToAPITeam(*team))
}

// GetTeamList returns a page of teams with members, newest first.
func (h *Handler) GetTeamList(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))

	teams, err := h.uc.Teams(c.Context(), limit, offset)
	if err != nil {
		h.log.Errorw("failed to list teams", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToAPITeamList(teams))
}

// GetTeamBySlug returns a team with members for its page.
func (h *Handler) GetTeamBySlug(c *fiber.Ctx) error {
	team, err := h.uc.TeamBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPITeam(*team))
}

// PostTeamJoin adds the bound identity to a team found by name.
func (h *Handler) PostTeamJoin(c *fiber.Ctx) error {
	usr, ok := middleware.BoundUser(c)
	if !ok {
		return writeWalletRequired(c)
	}

	var body joinTeamRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(api.ErrorResponse{Error: "invalid body"})
	}

	member, err := h.uc.JoinTeam(c.Context(), body.TeamName, usr.ID)
	if err != nil {
		h.log.Infow("team join rejected", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToAPIMember(*member))
}

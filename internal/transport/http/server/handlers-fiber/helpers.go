package handlers_fiber

import (
	"errors"
	"net/http"

	"github.com/jarrensj/monkfish/internal/api"
	"github.com/jarrensj/monkfish/internal/entities"

	"github.com/gofiber/fiber/v2"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	msg := "internal server error"

	switch {
	case errors.Is(err, entities.ErrInvalidName), errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		msg = err.Error()
	case errors.Is(err, entities.ErrUserNotFound):
		status = http.StatusNotFound
		msg = "user not found"
	case errors.Is(err, entities.ErrTeamNotFound):
		status = http.StatusNotFound
		msg = "team not found"
	case errors.Is(err, entities.ErrTeamExists):
		status = http.StatusConflict
		msg = "a team with this name already exists"
	case errors.Is(err, entities.ErrSlugExhausted):
		status = http.StatusConflict
		msg = "unable to generate a unique slug, please try a different team name"
	case errors.Is(err, entities.ErrAlreadyMember):
		status = http.StatusConflict
		msg = "already a member of this team"
	case errors.Is(err, entities.ErrUnauthorized):
		status = http.StatusForbidden
		msg = "not authorized to act for this team"
	case errors.Is(err, entities.ErrWalletBackend):
		status = http.StatusBadGateway
		msg = err.Error()
	}

	return c.Status(status).JSON(api.ErrorResponse{Error: msg})
}

func writeWalletRequired(c *fiber.Ctx) error {
	return c.Status(http.StatusForbidden).JSON(api.ErrorResponse{Error: "wallet not connected"})
}

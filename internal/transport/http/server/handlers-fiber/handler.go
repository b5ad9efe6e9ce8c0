// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"github.com/jarrensj/monkfish/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the HTTP API using service layer interfaces.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
}

// NewHandler constructs an HTTP handler with service dependencies.
func NewHandler(log *zap.SugaredLogger, uc usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log: log,
		uc:  uc,
	}
}

// Register wires routes on the fiber app.
func (h *Handler) Register(app *fiber.App) {
	grp := app.Group("/api")

	grp.Post("/teams", h.PostTeamCreate)
	grp.Get("/teams", h.GetTeamList)
	grp.Get("/teams/:slug", h.GetTeamBySlug)
	grp.Post("/teams/join", h.PostTeamJoin)

	grp.Post("/wallet/generate", h.PostWalletGenerate)
	grp.Patch("/users/username", h.PatchUsername)
	grp.Get("/stats", h.GetStats)
}

// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"github.com/jarrensj/monkfish/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// UserInterface exposes user-related operations.
type UserInterface interface {
	GetUserByWallet(ctx context.Context, walletAddress string) (*entities.User, error)
	CreateUser(ctx context.Context, walletAddress string) (*entities.User, error)
	SetUsername(ctx context.Context, userID, username string) (*entities.User, error)
}

// TeamInterface exposes team-related operations.
type TeamInterface interface {
	CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error)
	GetTeamByName(ctx context.Context, name string) (*entities.Team, error)
	GetTeamBySlug(ctx context.Context, slug string) (*entities.Team, error)
	ListTeams(ctx context.Context, limit, offset int) ([]entities.Team, error)
	TeamSlugExists(ctx context.Context, slug, excludeID string) (bool, error)
	AppendTeamWallet(ctx context.Context, teamID string, wallet entities.WalletAddress) error
}

// MemberInterface exposes team membership operations.
type MemberInterface interface {
	AddMember(ctx context.Context, teamID, userID, role string) (*entities.TeamMember, error)
	IsMember(ctx context.Context, teamID, userID string) (bool, error)
}

// StatsInterface exposes aggregated statistics operations.
type StatsInterface interface {
	Stats(ctx context.Context) (entities.Stats, error)
}

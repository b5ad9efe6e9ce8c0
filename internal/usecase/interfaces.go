package usecase

import (
	"context"

	"github.com/jarrensj/monkfish/internal/entities"
)

// IdentityUsecaseInterface abstracts wallet identity operations for delivery layer.
type IdentityUsecaseInterface interface {
	BindIdentity(ctx context.Context, walletAddress string) (*entities.User, error)
	SetUsername(ctx context.Context, userID, username string) (*entities.User, error)
}

// TeamUsecaseInterface abstracts team-related operations.
type TeamUsecaseInterface interface {
	CreateTeam(ctx context.Context, name, ownerID string, wallets []entities.WalletAddress) (*entities.Team, error)
	Teams(ctx context.Context, limit, offset int) ([]entities.Team, error)
	TeamBySlug(ctx context.Context, slug string) (*entities.Team, error)
	JoinTeam(ctx context.Context, teamName, userID string) (*entities.TeamMember, error)
}

// WalletUsecaseInterface abstracts team wallet provisioning.
type WalletUsecaseInterface interface {
	GenerateTeamWallet(ctx context.Context, teamName, userID string) (*entities.GeneratedWallet, error)
}

// StatsUsecaseInterface abstracts statistics operations.
type StatsUsecaseInterface interface {
	Stats(ctx context.Context) (entities.Stats, error)
}

// Package domain contains application usecases orchestrating domain logic.
package domain

import (
	"context"
	"time"

	"github.com/jarrensj/monkfish/internal/entities"
	"github.com/jarrensj/monkfish/internal/repository"

	"go.uber.org/zap"
)

// WalletGenerator provisions team wallets through an external backend.
type WalletGenerator interface {
	Generate(ctx context.Context, teamName, ownerID string) (*entities.GeneratedWallet, error)
}

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx     context.Context
	log     *zap.SugaredLogger
	repo    repository.Repository
	wallets WalletGenerator
	timeout time.Duration
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	wallets WalletGenerator,
	timeout time.Duration,
) *Usecase {
	return &Usecase{
		ctx:     ctx,
		log:     log,
		repo:    repo,
		wallets: wallets,
		timeout: timeout,
	}
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}

package usecase

import (
	"context"
	"time"

	"github.com/jarrensj/monkfish/internal/repository"
	"github.com/jarrensj/monkfish/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	IdentityUsecaseInterface
	TeamUsecaseInterface
	WalletUsecaseInterface
	StatsUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(log *zap.SugaredLogger, ctx context.Context, repo repository.Repository, wallets domain.WalletGenerator, timeout time.Duration) InterfaceUsecase {
	return domain.New(log, ctx, repo, wallets, timeout)
}

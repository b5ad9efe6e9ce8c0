// Package domain contains application usecases orchestrating domain logic by identity.
package domain

import (
	"context"
	"errors"
	"fmt"

	"github.com/jarrensj/monkfish/internal/entities"
)

// BindIdentity maps a wallet address to a durable user, creating the user on
// first sight. Concurrent first binds race on the wallet_address unique
// constraint; the loser re-reads and returns the winning row, so exactly one
// user per address is ever observed.
func (u *Usecase) BindIdentity(ctx context.Context, walletAddress string) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if walletAddress == "" {
		return nil, fmt.Errorf("%w: wallet_address is required", entities.ErrInvalidArgument)
	}

	usr, err := u.repo.GetUserByWallet(ctx, walletAddress)
	if err == nil {
		return usr, nil
	}
	if !errors.Is(err, entities.ErrUserNotFound) {
		u.log.Errorw("identity lookup failed", "error", err)
		return nil, fmt.Errorf("identity lookup: %w", err)
	}

	usr, err = u.repo.CreateUser(ctx, walletAddress)
	if err != nil {
		if errors.Is(err, entities.ErrUserExists) {
			return u.repo.GetUserByWallet(ctx, walletAddress)
		}
		u.log.Errorw("identity create failed", "error", err)
		return nil, fmt.Errorf("identity create: %w", err)
	}

	u.log.Infow("identity bound", "user_id", usr.ID)
	return usr, nil
}

// SetUsername updates the display name of a bound user.
func (u *Usecase) SetUsername(ctx context.Context, userID, username string) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if userID == "" || username == "" {
		return nil, fmt.Errorf("%w: user_id and username are required", entities.ErrInvalidArgument)
	}

	return u.repo.SetUsername(ctx, userID, username)
}

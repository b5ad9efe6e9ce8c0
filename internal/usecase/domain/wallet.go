// Package domain contains application usecases orchestrating domain logic by wallet.
package domain

import (
	"context"
	"errors"
	"fmt"

	"github.com/jarrensj/monkfish/internal/entities"
)

// authorizeTeamAction decides whether the user may act on behalf of the
// team: owners and members are authorized, checked independently. A missing
// membership row is an ordinary denial; any other lookup failure denies as
// well (fail closed).
func (u *Usecase) authorizeTeamAction(ctx context.Context, userID string, team *entities.Team) error {
	if team.Owner == userID {
		return nil
	}

	member, err := u.repo.IsMember(ctx, team.ID, userID)
	if err != nil {
		u.log.Errorw("authorization check failed", "error", err, "team", team.TeamName, "user_id", userID)
		return fmt.Errorf("%w: authorization check failed", entities.ErrUnauthorized)
	}
	if !member {
		return fmt.Errorf("%w: not an owner or member of %q", entities.ErrUnauthorized, team.TeamName)
	}
	return nil
}

// GenerateTeamWallet authorizes the caller and relays a wallet provisioning
// request to the external backend. When the team does not exist yet the
// caller is the prospective owner and is implicitly authorized. One upstream
// attempt per call.
func (u *Usecase) GenerateTeamWallet(ctx context.Context, teamName, userID string) (*entities.GeneratedWallet, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	trimmed, err := validateTeamName(teamName)
	if err != nil {
		return nil, err
	}
	if userID == "" {
		return nil, fmt.Errorf("%w: user_id is required", entities.ErrInvalidArgument)
	}

	team, err := u.repo.GetTeamByName(ctx, trimmed)
	switch {
	case err == nil:
		if err := u.authorizeTeamAction(ctx, userID, team); err != nil {
			return nil, err
		}
	case errors.Is(err, entities.ErrTeamNotFound):
		team = nil
	default:
		u.log.Errorw("team lookup failed", "error", err, "team", trimmed)
		return nil, fmt.Errorf("team lookup: %w", err)
	}

	wallet, err := u.wallets.Generate(ctx, trimmed, userID)
	if err != nil {
		return nil, err
	}

	if team != nil {
		addr := entities.WalletAddress{Chain: "solana", Address: wallet.PublicAddress}
		if err := u.repo.AppendTeamWallet(ctx, team.ID, addr); err != nil {
			// The wallet exists upstream; losing the local record must not
			// fail the relay.
			u.log.Errorw("failed to record team wallet", "error", err, "team", trimmed, "address", wallet.PublicAddress)
		}
	}

	return wallet, nil
}

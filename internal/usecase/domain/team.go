// Package domain contains application usecases orchestrating domain logic by team.
package domain

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jarrensj/monkfish/internal/entities"
)

const (
	teamNameMaxLen   = 50
	defaultTeamLimit = 50
	maxTeamLimit     = 100
)

var teamNameRE = regexp.MustCompile(`^[A-Za-z0-9\s]+$`)

// validateTeamName applies the naming rules before any store interaction and
// returns the trimmed name used for all subsequent operations.
func validateTeamName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", fmt.Errorf("%w: team name cannot be empty", entities.ErrInvalidName)
	}
	if utf8.RuneCountInString(trimmed) > teamNameMaxLen {
		return "", fmt.Errorf("%w: team name must be 50 characters or less", entities.ErrInvalidName)
	}
	if !teamNameRE.MatchString(trimmed) {
		return "", fmt.Errorf("%w: team name can only contain letters, numbers, and spaces", entities.ErrInvalidName)
	}
	return trimmed, nil
}

// CreateTeam validates the name, allocates a unique slug and inserts the
// team with its owner membership. A unique-constraint loss under concurrent
// creation surfaces as entities.ErrTeamExists; the allocator is never rerun.
func (u *Usecase) CreateTeam(ctx context.Context, name, ownerID string, wallets []entities.WalletAddress) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	trimmed, err := validateTeamName(name)
	if err != nil {
		return nil, err
	}
	if ownerID == "" {
		return nil, fmt.Errorf("%w: owner is required", entities.ErrInvalidArgument)
	}

	slug, err := u.allocateSlug(ctx, trimmed, "")
	if err != nil {
		return nil, err
	}

	team, err := u.repo.CreateTeam(ctx, entities.Team{
		TeamName:        trimmed,
		Slug:            slug,
		Owner:           ownerID,
		WalletAddresses: wallets,
	})
	if err != nil {
		return nil, err
	}

	u.log.Infow("team created", "team", trimmed, "slug", slug, "owner", ownerID)
	return team, nil
}

// Teams returns a page of teams, newest first, members embedded.
func (u *Usecase) Teams(ctx context.Context, limit, offset int) ([]entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if limit <= 0 {
		limit = defaultTeamLimit
	}
	if limit > maxTeamLimit {
		limit = maxTeamLimit
	}
	if offset < 0 {
		offset = 0
	}

	return u.repo.ListTeams(ctx, limit, offset)
}

// TeamBySlug returns a team with members for its page.
func (u *Usecase) TeamBySlug(ctx context.Context, slug string) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if strings.TrimSpace(slug) == "" {
		return nil, fmt.Errorf("%w: slug is required", entities.ErrInvalidArgument)
	}

	return u.repo.GetTeamBySlug(ctx, slug)
}

// JoinTeam adds the user to a team found by display name, case-insensitive.
func (u *Usecase) JoinTeam(ctx context.Context, teamName, userID string) (*entities.TeamMember, error) {
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
	if err != nil {
		if errors.Is(err, entities.ErrTeamNotFound) {
			return nil, entities.ErrTeamNotFound
		}
		return nil, fmt.Errorf("team lookup: %w", err)
	}

	member, err := u.repo.AddMember(ctx, team.ID, userID, entities.RoleMember)
	if err != nil {
		return nil, err
	}

	u.log.Infow("member joined", "team", team.TeamName, "user_id", userID)
	return member, nil
}

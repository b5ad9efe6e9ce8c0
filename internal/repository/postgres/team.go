package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jarrensj/monkfish/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	insertTeamQuery = `
INSERT INTO teams(team_name, slug, owner, wallet_addresses)
VALUES ($1, $2, $3, $4)
RETURNING id`
	insertOwnerMemberQuery = `
INSERT INTO team_members(team_id, user_id, role)
VALUES ($1, $2, 'owner')`
	selectTeamColumns = `
SELECT id, team_name, slug, owner, wallet_addresses, created_at, updated_at
FROM teams`
	selectTeamByIDQuery   = selectTeamColumns + ` WHERE id = $1`
	selectTeamByNameQuery = selectTeamColumns + ` WHERE LOWER(team_name) = LOWER($1)`
	selectTeamBySlugQuery = selectTeamColumns + ` WHERE LOWER(slug) = LOWER($1)`
	selectTeamsPageQuery  = selectTeamColumns + ` ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	slugExistsQuery       = `
SELECT EXISTS(
    SELECT 1 FROM teams
    WHERE LOWER(slug) = LOWER($1) AND ($2 = '' OR id::text <> $2)
)`
	appendTeamWalletQuery = `
UPDATE teams
SET wallet_addresses = wallet_addresses || $2::jsonb, updated_at = NOW()
WHERE id = $1`
	selectTeamMembersQuery = `
SELECT m.id, m.team_id, m.user_id, m.role, m.joined_at,
       u.id, u.wallet_address, COALESCE(u.username, ''), u.created_at, u.updated_at
FROM team_members m
JOIN users u ON u.id = m.user_id
WHERE m.team_id = $1
ORDER BY m.role DESC, m.joined_at ASC`
)

// CreateTeam inserts a team and the owner's membership row in one transaction.
func (p *Postgres) CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error) {
	wallets, err := marshalWallets(team.WalletAddresses)
	if err != nil {
		return nil, err
	}

	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var teamID string
	if err := tx.QueryRow(ctx, insertTeamQuery, team.TeamName, team.Slug, team.Owner, wallets).Scan(&teamID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, entities.ErrTeamExists
		}
		return nil, fmt.Errorf("insert team: %w", err)
	}

	if _, err := tx.Exec(ctx, insertOwnerMemberQuery, teamID, team.Owner); err != nil {
		return nil, fmt.Errorf("insert owner member: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	p.log.Infow("team created", "team", team.TeamName, "slug", team.Slug)
	return p.getTeam(ctx, selectTeamByIDQuery, teamID)
}

// GetTeamByName fetches a team with members by its display name, case-insensitive.
func (p *Postgres) GetTeamByName(ctx context.Context, name string) (*entities.Team, error) {
	return p.getTeam(ctx, selectTeamByNameQuery, name)
}

// GetTeamBySlug fetches a team with members by its slug, case-insensitive.
func (p *Postgres) GetTeamBySlug(ctx context.Context, slug string) (*entities.Team, error) {
	return p.getTeam(ctx, selectTeamBySlugQuery, slug)
}

// ListTeams returns teams ordered by creation time descending, members embedded.
func (p *Postgres) ListTeams(ctx context.Context, limit, offset int) ([]entities.Team, error) {
	rows, err := p.db.Query(ctx, selectTeamsPageQuery, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	defer rows.Close()

	teams := make([]entities.Team, 0)
	for rows.Next() {
		t, err := scanTeam(rows)
		if err != nil {
			return nil, fmt.Errorf("scan team: %w", err)
		}
		teams = append(teams, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate teams: %w", err)
	}

	for i := range teams {
		members, err := p.teamMembers(ctx, teams[i].ID)
		if err != nil {
			return nil, err
		}
		teams[i].Members = members
	}

	return teams, nil
}

// TeamSlugExists probes whether any team already holds the slug. The probe is
// a latency optimization: the unique constraint on teams.slug stays the
// authority under concurrent creation.
func (p *Postgres) TeamSlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	var exists bool
	if err := p.db.QueryRow(ctx, slugExistsQuery, slug, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("slug probe: %w", err)
	}
	return exists, nil
}

// AppendTeamWallet adds a provisioned wallet address to the team row.
func (p *Postgres) AppendTeamWallet(ctx context.Context, teamID string, wallet entities.WalletAddress) error {
	payload, err := json.Marshal([]entities.WalletAddress{wallet})
	if err != nil {
		return fmt.Errorf("marshal wallet: %w", err)
	}

	tag, err := p.db.Exec(ctx, appendTeamWalletQuery, teamID, payload)
	if err != nil {
		return fmt.Errorf("append team wallet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrTeamNotFound
	}
	return nil
}

func (p *Postgres) getTeam(ctx context.Context, query, arg string) (*entities.Team, error) {
	row := p.db.QueryRow(ctx, query, arg)
	t, err := scanTeam(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTeamNotFound
		}
		return nil, fmt.Errorf("get team: %w", err)
	}

	members, err := p.teamMembers(ctx, t.ID)
	if err != nil {
		return nil, err
	}
	t.Members = members
	return t, nil
}

func (p *Postgres) teamMembers(ctx context.Context, teamID string) ([]entities.TeamMember, error) {
	rows, err := p.db.Query(ctx, selectTeamMembersQuery, teamID)
	if err != nil {
		return nil, fmt.Errorf("get team members: %w", err)
	}
	defer rows.Close()

	members := make([]entities.TeamMember, 0)
	for rows.Next() {
		var m entities.TeamMember
		var u entities.User
		if err := rows.Scan(
			&m.ID, &m.TeamID, &m.UserID, &m.Role, &m.JoinedAt,
			&u.ID, &u.WalletAddress, &u.Username, &u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan members: %w", err)
		}
		m.User = &u
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate members: %w", err)
	}

	return members, nil
}

func scanTeam(row pgx.Row) (*entities.Team, error) {
	var t entities.Team
	var wallets []byte
	if err := row.Scan(&t.ID, &t.TeamName, &t.Slug, &t.Owner, &wallets, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	if len(wallets) > 0 {
		if err := json.Unmarshal(wallets, &t.WalletAddresses); err != nil {
			return nil, fmt.Errorf("unmarshal wallet addresses: %w", err)
		}
	}
	return &t, nil
}

func marshalWallets(wallets []entities.WalletAddress) ([]byte, error) {
	if wallets == nil {
		wallets = []entities.WalletAddress{}
	}
	payload, err := json.Marshal(wallets)
	if err != nil {
		return nil, fmt.Errorf("marshal wallet addresses: %w", err)
	}
	return payload, nil
}

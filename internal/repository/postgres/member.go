package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jarrensj/monkfish/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	insertMemberQuery = `
INSERT INTO team_members(team_id, user_id, role)
VALUES ($1, $2, $3)
RETURNING id, team_id, user_id, role, joined_at`
	memberExistsQuery = `
SELECT 1 FROM team_members WHERE team_id = $1 AND user_id = $2`
)

// AddMember inserts a membership row. The (team_id, user_id) unique
// constraint rejects duplicate joins.
func (p *Postgres) AddMember(ctx context.Context, teamID, userID, role string) (*entities.TeamMember, error) {
	var m entities.TeamMember
	err := p.db.QueryRow(ctx, insertMemberQuery, teamID, userID, role).
		Scan(&m.ID, &m.TeamID, &m.UserID, &m.Role, &m.JoinedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return nil, entities.ErrAlreadyMember
			case "23503":
				return nil, entities.ErrTeamNotFound
			}
		}
		return nil, fmt.Errorf("insert member: %w", err)
	}

	p.log.Infow("member added", "team_id", teamID, "user_id", userID, "role", role)
	return &m, nil
}

// IsMember reports whether a membership row exists. A missing row is an
// ordinary false, never an error.
func (p *Postgres) IsMember(ctx context.Context, teamID, userID string) (bool, error) {
	var one int
	err := p.db.QueryRow(ctx, memberExistsQuery, teamID, userID).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("membership lookup: %w", err)
	}
	return true, nil
}

package postgres

import (
	"context"
	"fmt"

	"github.com/jarrensj/monkfish/internal/entities"
)

const statsQuery = `
SELECT
    (SELECT COUNT(*) FROM users),
    (SELECT COUNT(*) FROM teams),
    (SELECT COUNT(*) FROM team_members)`

// Stats returns entity counts across the store.
func (p *Postgres) Stats(ctx context.Context) (entities.Stats, error) {
	var s entities.Stats
	if err := p.db.QueryRow(ctx, statsQuery).Scan(&s.Users, &s.Teams, &s.Memberships); err != nil {
		return entities.Stats{}, fmt.Errorf("stats: %w", err)
	}
	return s, nil
}

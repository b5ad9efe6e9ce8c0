package domain

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/jarrensj/monkfish/internal/entities"
)

// slugMaxAttempts bounds the conflict-resolution loop. Hitting it means a
// pathological collision storm, not an ordinary race.
const slugMaxAttempts = 1000

var nonSlugRunsRE = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL-safe slug from a team name: trim, lowercase, drop
// apostrophes, collapse runs of other non-alphanumerics into single hyphens,
// trim edge hyphens. Idempotent.
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, "'", "")
	s = nonSlugRunsRE.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// allocateSlug resolves slug conflicts by probing the store and appending an
// incrementing counter. The probe is check-then-act with no lock: under
// concurrent creation both callers can pass it, and the unique constraint on
// teams.slug decides the winner at insert time.
func (u *Usecase) allocateSlug(ctx context.Context, name, excludeID string) (string, error) {
	base := Slugify(name)
	if base == "" {
		return "", fmt.Errorf("%w: name yields an empty slug", entities.ErrInvalidName)
	}

	candidate := base
	for attempt := 1; attempt <= slugMaxAttempts; attempt++ {
		exists, err := u.repo.TeamSlugExists(ctx, candidate, excludeID)
		if err != nil {
			return "", fmt.Errorf("slug probe: %w", err)
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, attempt)
	}

	u.log.Errorw("slug allocation exhausted", "base", base, "attempts", slugMaxAttempts)
	return "", entities.ErrSlugExhausted
}

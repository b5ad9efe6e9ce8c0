// Package domain contains application usecases orchestrating domain logic by statistics.
package domain

import (
	"context"

	"github.com/jarrensj/monkfish/internal/entities"
)

// Stats returns entity counts across the store.
func (u *Usecase) Stats(ctx context.Context) (entities.Stats, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.Stats(ctx)
}

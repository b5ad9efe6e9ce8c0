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
	selectUserByWalletQuery = `
SELECT id, wallet_address, COALESCE(username, ''), created_at, updated_at
FROM users
WHERE wallet_address = $1`
	insertUserQuery = `
INSERT INTO users(wallet_address)
VALUES ($1)
RETURNING id, wallet_address, COALESCE(username, ''), created_at, updated_at`
	updateUsernameQuery = `
UPDATE users
SET username = $2, updated_at = NOW()
WHERE id = $1
RETURNING id, wallet_address, COALESCE(username, ''), created_at, updated_at`
)

// GetUserByWallet returns the user bound to a wallet address. Comparison is case-sensitive.
func (p *Postgres) GetUserByWallet(ctx context.Context, walletAddress string) (*entities.User, error) {
	var u entities.User
	err := p.db.QueryRow(ctx, selectUserByWalletQuery, walletAddress).
		Scan(&u.ID, &u.WalletAddress, &u.Username, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by wallet: %w", err)
	}
	return &u, nil
}

// CreateUser inserts a user for a first-seen wallet address.
func (p *Postgres) CreateUser(ctx context.Context, walletAddress string) (*entities.User, error) {
	var u entities.User
	err := p.db.QueryRow(ctx, insertUserQuery, walletAddress).
		Scan(&u.ID, &u.WalletAddress, &u.Username, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, entities.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	p.log.Infow("user created", "user_id", u.ID)
	return &u, nil
}

// SetUsername updates the display name of a user.
func (p *Postgres) SetUsername(ctx context.Context, userID, username string) (*entities.User, error) {
	var u entities.User
	err := p.db.QueryRow(ctx, updateUsernameQuery, userID, username).
		Scan(&u.ID, &u.WalletAddress, &u.Username, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("set username: %w", err)
	}

	p.log.Infow("username updated", "user_id", userID)
	return &u, nil
}

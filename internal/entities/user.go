// Package entities contains core business entities.
package entities

import "time"

// User is an identity derived from a connected wallet.
type User struct {
	ID            string
	WalletAddress string
	Username      string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

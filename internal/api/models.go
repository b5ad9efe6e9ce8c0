// Package api defines the transport DTOs of the HTTP surface.
package api

import "time"

// User is the transport representation of a wallet identity.
type User struct {
	ID            string    `json:"id"`
	WalletAddress string    `json:"wallet_address"`
	Username      string    `json:"username,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// WalletAddress is a chain-qualified address held by a team.
type WalletAddress struct {
	Chain   string `json:"chain"`
	Address string `json:"address"`
}

// TeamMember is a user's membership inside a team payload.
type TeamMember struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Username      string    `json:"username,omitempty"`
	WalletAddress string    `json:"wallet_address,omitempty"`
	Role          string    `json:"role"`
	JoinedAt      time.Time `json:"joined_at"`
}

// Team is the transport representation of a team with its members.
type Team struct {
	ID              string          `json:"id"`
	TeamName        string          `json:"team_name"`
	Slug            string          `json:"slug"`
	Owner           string          `json:"owner"`
	WalletAddresses []WalletAddress `json:"wallet_addresses"`
	Members         []TeamMember    `json:"members"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// GeneratedWallet relays the wallet backend result. Field casing follows the
// upstream service contract.
type GeneratedWallet struct {
	PublicAddress string `json:"publicAddress"`
	ID            string `json:"id"`
	TeamName      string `json:"teamName"`
}

// ErrorResponse carries the single user-facing error message.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Package entities contains core business entities.
package entities

import "time"

// WalletAddress is a chain-qualified address held by a team.
type WalletAddress struct {
	Chain   string `json:"chain"`
	Address string `json:"address"`
}

// Team groups users under a unique name and URL slug.
type Team struct {
	ID              string
	TeamName        string
	Slug            string
	Owner           string
	WalletAddresses []WalletAddress
	Members         []TeamMember
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// GeneratedWallet is the result of provisioning a team wallet upstream.
type GeneratedWallet struct {
	ID            string
	PublicAddress string
	TeamName      string
}

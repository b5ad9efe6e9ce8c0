// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"github.com/jarrensj/monkfish/internal/api"
	"github.com/jarrensj/monkfish/internal/entities"
)

// ToAPIUser maps entities.User to transport model.
func ToAPIUser(u entities.User) api.User {
	return api.User{
		ID:            u.ID,
		WalletAddress: u.WalletAddress,
		Username:      u.Username,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

// ToAPIMember maps entities.TeamMember to transport model, flattening the
// hydrated user when present.
func ToAPIMember(m entities.TeamMember) api.TeamMember {
	out := api.TeamMember{
		ID:       m.ID,
		UserID:   m.UserID,
		Role:     m.Role,
		JoinedAt: m.JoinedAt,
	}
	if m.User != nil {
		out.Username = m.User.Username
		out.WalletAddress = m.User.WalletAddress
	}
	return out
}

// ToAPITeam maps entities.Team to transport model.
func ToAPITeam(t entities.Team) api.Team {
	wallets := make([]api.WalletAddress, 0, len(t.WalletAddresses))
	for _, w := range t.WalletAddresses {
		wallets = append(wallets, api.WalletAddress{Chain: w.Chain, Address: w.Address})
	}

	members := make([]api.TeamMember, 0, len(t.Members))
	for _, m := range t.Members {
		members = append(members, ToAPIMember(m))
	}

	return api.Team{
		ID:              t.ID,
		TeamName:        t.TeamName,
		Slug:            t.Slug,
		Owner:           t.Owner,
		WalletAddresses: wallets,
		Members:         members,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

// ToAPITeamList maps a team page to transport models.
func ToAPITeamList(teams []entities.Team) []api.Team {
	out := make([]api.Team, 0, len(teams))
	for _, t := range teams {
		out = append(out, ToAPITeam(t))
	}
	return out
}

// ToAPIWallet maps a provisioning result to transport model.
func ToAPIWallet(w entities.GeneratedWallet) api.GeneratedWallet {
	return api.GeneratedWallet{
		PublicAddress: w.PublicAddress,
		ID:            w.ID,
		TeamName:      w.TeamName,
	}
}

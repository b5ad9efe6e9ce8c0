package domain

import (
	"context"
	"fmt"
	"sync"

	"github.com/jarrensj/monkfish/internal/entities"
)

// SessionState tracks a caller's wallet connectivity.
type SessionState int

// Session states.
const (
	StateDisconnected SessionState = iota
	StateBinding
	StateBound
)

// Binder establishes a user identity for a wallet address.
type Binder interface {
	BindIdentity(ctx context.Context, walletAddress string) (*entities.User, error)
}

// Session holds at most one current identity and reacts to wallet
// connectivity transitions. Switching wallets clears the previous identity
// before the new bind, so no caller ever observes both.
type Session struct {
	mu     sync.Mutex
	binder Binder
	state  SessionState
	user   *entities.User
}

// NewSession returns a session in the Disconnected state.
func NewSession(b Binder) *Session {
	return &Session{binder: b, state: StateDisconnected}
}

// Connect handles a wallet-connect event. Connecting with the already bound
// address is a no-op returning the current user.
func (s *Session) Connect(ctx context.Context, walletAddress string) (*entities.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if walletAddress == "" {
		return nil, fmt.Errorf("%w: wallet_address is required", entities.ErrInvalidArgument)
	}

	if s.state == StateBound {
		if s.user.WalletAddress == walletAddress {
			return s.user, nil
		}
		// Wallet switch: clear before rebinding.
		s.user = nil
	}

	s.state = StateBinding
	usr, err := s.binder.BindIdentity(ctx, walletAddress)
	if err != nil {
		s.state = StateDisconnected
		s.user = nil
		return nil, err
	}

	s.state = StateBound
	s.user = usr
	return usr, nil
}

// Disconnect clears the current identity without touching the store.
func (s *Session) Disconnect() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateDisconnected
	s.user = nil
}

// Current returns the bound identity, if any.
func (s *Session) Current() (*entities.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateBound {
		return nil, false
	}
	return s.user, true
}

// State reports the connectivity state.
func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

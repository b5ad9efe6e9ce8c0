// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidName signals a team name that violates naming rules.
	ErrInvalidName = errors.New("invalid team name")
	// ErrUserNotFound is returned when a user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserExists signals a wallet address that is already bound.
	ErrUserExists = errors.New("user exists")
	// ErrTeamNotFound signals missing team.
	ErrTeamNotFound = errors.New("team not found")
	// ErrTeamExists signals a team name or slug conflict.
	ErrTeamExists = errors.New("team exists")
	// ErrSlugExhausted signals the slug allocation loop hit its attempt cap.
	ErrSlugExhausted = errors.New("slug allocation exhausted")
	// ErrAlreadyMember signals a duplicate team membership.
	ErrAlreadyMember = errors.New("already a member")
	// ErrUnauthorized signals the caller lacks owner or member standing.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrWalletBackend signals the wallet provisioning service failed.
	ErrWalletBackend = errors.New("wallet backend failure")
)

package auth

import "errors"

var (
	// ErrNoSecret is returned when no signing secret is provided.
	ErrNoSecret = errors.New("auth: signing secret is required")

	// ErrSecretTooShort is returned for secrets below the minimum length.
	ErrSecretTooShort = errors.New("auth: signing secret too short")

	// ErrNoTicket is returned when the request carries no ticket cookie.
	ErrNoTicket = errors.New("auth: no ticket")

	// ErrInvalidTicket is returned for malformed or tampered tickets.
	ErrInvalidTicket = errors.New("auth: invalid ticket")

	// ErrTicketExpired is returned for well-formed but expired tickets.
	ErrTicketExpired = errors.New("auth: ticket expired")
)

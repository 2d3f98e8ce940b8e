// Package domain contains core concepts of the chat server.
// This file defines client identity and session lifecycle states.
// No network or runtime logic should be added here.
package domain

import "github.com/google/uuid"

// ClientID is the opaque identity of one live connection. Registries and the
// router refer to sessions by ClientID, never by socket.
type ClientID string

func NewClientID() ClientID {
	return ClientID(uuid.NewString())
}

// SessionState tracks where a connection is in its protocol lifecycle.
type SessionState int

const (
	StateConnected SessionState = iota
	StateAuthenticating
	StateAuthenticated
	StateClosed
)

func (s SessionState) String() string {
	switch s {
	case StateConnected:
		return "connected"
	case StateAuthenticating:
		return "authenticating"
	case StateAuthenticated:
		return "authenticated"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

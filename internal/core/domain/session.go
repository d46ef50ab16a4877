package domain

import (
	"time"

	"github.com/google/uuid"
)

// SessionStatus is the connection state of the account session.
type SessionStatus string

const (
	SessionDisconnected SessionStatus = "DISCONNECTED"
	SessionConnecting   SessionStatus = "CONNECTING"
	SessionConnected    SessionStatus = "CONNECTED"
)

// Session is the wallet-authorized identity used to sign operations.
// A new ID is minted on every connect so results from an earlier session can be told apart.
type Session struct {
	ID          uuid.UUID     `json:"id"`
	Account     string        `json:"account"`
	ChainID     int64         `json:"chain_id"`
	Status      SessionStatus `json:"status"`
	ConnectedAt time.Time     `json:"connected_at"`
}

// IsActive reports whether the session may issue operations.
func (s *Session) IsActive() bool {
	return s != nil && s.Status == SessionConnected && s.Account != ""
}

// Reservation marks an action flag taken on behalf of one session.
// The zero value means nothing is held yet.
type Reservation struct {
	SessionID uuid.UUID
	Action    Action
}

// IsZero reports whether nothing is reserved.
func (r Reservation) IsZero() bool {
	return r.SessionID == uuid.Nil
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited action.
type AuditAction string

const (
	AuditActionConnect         AuditAction = "CONNECT"
	AuditActionDisconnect      AuditAction = "DISCONNECT"
	AuditActionAdopt           AuditAction = "ADOPT"
	AuditActionBreed           AuditAction = "BREED"
	AuditActionSignIn          AuditAction = "SIGN_IN"
	AuditActionTransfer        AuditAction = "TRANSFER"
	AuditActionUpdateContracts AuditAction = "UPDATE_CONTRACTS"
)

// AuditLog records a single audited action in the system.
type AuditLog struct {
	ID           uuid.UUID   `json:"id"`
	SessionID    *uuid.UUID  `json:"session_id,omitempty"`
	Account      string      `json:"account,omitempty"`
	Action       AuditAction `json:"action"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id,omitempty"`
	Details      string      `json:"details,omitempty"` // JSON string
	IPAddress    string      `json:"ip_address"`
	CreatedAt    time.Time   `json:"created_at"`
}

package domain

import "github.com/google/uuid"

// BuildIdempotencyKey scopes a client-supplied key to a session and action so a
// retried write intent is accepted once per session.
func BuildIdempotencyKey(sessionID uuid.UUID, action Action, clientKey string) string {
	return sessionID.String() + ":" + string(action) + ":" + clientKey
}

package domain

// LedgerEventType names a notification emitted by one of the contracts.
type LedgerEventType string

const (
	EventCoinTransfer LedgerEventType = "COIN_TRANSFER"
	EventSignedIn     LedgerEventType = "SIGNED_IN"
	EventPetAdopted   LedgerEventType = "PET_ADOPTED"
	EventPetsBred     LedgerEventType = "PETS_BRED"
	EventPetTransfer  LedgerEventType = "PET_TRANSFER"
)

// LedgerEvent is a notification scoped to the session account. Only its type
// and block are used; payload fields are never trusted as state.
type LedgerEvent struct {
	Type   LedgerEventType `json:"type"`
	Block  uint64          `json:"block"`
	TxHash string          `json:"tx_hash"`
	PetID  uint64          `json:"pet_id,omitempty"`
}

// AffectsBalance reports whether the event should trigger a balance re-read.
func (e LedgerEvent) AffectsBalance() bool {
	switch e.Type {
	case EventCoinTransfer, EventSignedIn, EventPetAdopted, EventPetsBred:
		return true
	}
	return false
}

// AffectsPets reports whether the event should trigger a pet list re-read.
func (e LedgerEvent) AffectsPets() bool {
	switch e.Type {
	case EventPetAdopted, EventPetsBred, EventPetTransfer:
		return true
	}
	return false
}

// AffectsSignIn reports whether the event should trigger a sign-in status re-read.
func (e LedgerEvent) AffectsSignIn() bool {
	return e.Type == EventSignedIn
}

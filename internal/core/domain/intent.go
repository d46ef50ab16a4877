package domain

import (
	"fmt"
	"strings"
	"time"
)

// Streak bonus per consecutive sign-in day.
const streakBonusPerDay = 2

// Action names an intent kind; each has its own in-progress flag and error.
type Action string

const (
	ActionAdopt    Action = "adopt"
	ActionBreed    Action = "breed"
	ActionSignIn   Action = "sign_in"
	ActionTransfer Action = "transfer"
)

// AdoptionIntent requests a new pet from the adoption contract.
type AdoptionIntent struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Validate checks the intent before it reaches the chain.
func (i AdoptionIntent) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return fmt.Errorf("%w: pet name is required", ErrInvalidIntent)
	}
	if strings.TrimSpace(i.Type) == "" {
		return fmt.Errorf("%w: pet type is required", ErrInvalidIntent)
	}
	return nil
}

// BreedingIntent requests a child from two parents.
type BreedingIntent struct {
	ParentA   uint64 `json:"parent_a"`
	ParentB   uint64 `json:"parent_b"`
	ChildName string `json:"child_name"`
}

// Validate checks the intent before it reaches the chain.
func (i BreedingIntent) Validate() error {
	if i.ParentA == 0 || i.ParentB == 0 {
		return fmt.Errorf("%w: two pets must be selected", ErrInvalidIntent)
	}
	if i.ParentA == i.ParentB {
		return fmt.Errorf("%w: parents must be two different pets", ErrInvalidIntent)
	}
	if strings.TrimSpace(i.ChildName) == "" {
		return fmt.Errorf("%w: child name is required", ErrInvalidIntent)
	}
	return nil
}

// TransferIntent moves a pet to another account.
type TransferIntent struct {
	PetID uint64 `json:"pet_id"`
	To    string `json:"to"`
}

// SignInStatus is the daily sign-in state of an account on the coin ledger.
type SignInStatus struct {
	LastSignIn     time.Time `json:"last_sign_in"`
	Streak         uint64    `json:"streak"`
	CanSignInToday bool      `json:"can_sign_in_today"`
	BaseReward     uint64    `json:"base_reward"`
	MaxStreakBonus uint64    `json:"max_streak_bonus"`
}

// NextReward is the reward the next sign-in will pay.
func (s SignInStatus) NextReward() uint64 {
	return SignInReward(s.BaseReward, s.Streak, s.MaxStreakBonus)
}

// SignedInOn reports whether the last sign-in fell on the same calendar day as now in loc.
func (s SignInStatus) SignedInOn(now time.Time, loc *time.Location) bool {
	if s.LastSignIn.IsZero() {
		return false
	}
	return SameDay(s.LastSignIn, now, loc)
}

// SignInReceipt is the confirmed outcome of a sign-in.
type SignInReceipt struct {
	Reward uint64 `json:"reward"`
	Streak uint64 `json:"streak"`
}

// SignInReward computes base + min(streak*2, maxBonus).
func SignInReward(base, streak, maxBonus uint64) uint64 {
	bonus := streak * streakBonusPerDay
	if bonus > maxBonus {
		bonus = maxBonus
	}
	return base + bonus
}

// SameDay reports whether a and b share a calendar day in loc.
func SameDay(a, b time.Time, loc *time.Location) bool {
	if loc == nil {
		loc = time.UTC
	}
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// experiencePerLevel is the experience needed to gain one level.
const experiencePerLevel = 100

// Rarity is the ordered rarity tier of a pet.
type Rarity uint8

const (
	RarityCommon Rarity = iota
	RarityUncommon
	RarityRare
	RarityEpic
	RarityLegendary
)

var rarityNames = [...]string{"common", "uncommon", "rare", "epic", "legendary"}

// String returns the lower-case tier name.
func (r Rarity) String() string {
	if int(r) < len(rarityNames) {
		return rarityNames[r]
	}
	return "unknown"
}

// Valid reports whether r is one of the defined tiers.
func (r Rarity) Valid() bool {
	return int(r) < len(rarityNames)
}

// ParseRarity accepts either a tier name ("epic") or its numeric tier ("3").
func ParseRarity(s string) (Rarity, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range rarityNames {
		if s == name {
			return Rarity(i), nil
		}
	}
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil || !Rarity(n).Valid() {
		return 0, fmt.Errorf("unknown rarity %q", s)
	}
	return Rarity(n), nil
}

// MarshalText encodes the rarity as its tier name.
func (r Rarity) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("invalid rarity %d", r)
	}
	return []byte(r.String()), nil
}

// UnmarshalText decodes a tier name or number.
func (r *Rarity) UnmarshalText(b []byte) error {
	v, err := ParseRarity(string(b))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// Pet is a pet as read from the pet registry. Derived fields (Level, CanBreed,
// ImageURL) are recomputed from the authoritative ones and never set by callers.
type Pet struct {
	ID            uint64    `json:"id"`
	Name          string    `json:"name"`
	Type          string    `json:"type"`
	Rarity        Rarity    `json:"rarity"`
	Level         uint64    `json:"level"`
	Experience    uint64    `json:"experience"`
	BirthTime     time.Time `json:"birth_time"`
	LastBreedTime time.Time `json:"last_breed_time"`
	CanBreed      bool      `json:"can_breed"`
	Owner         string    `json:"owner"`
	DNA           string    `json:"dna"`
	ImageURL      string    `json:"image_url"`
}

// LevelFor returns the level reached with the given experience.
func LevelFor(experience uint64) uint64 {
	return experience/experiencePerLevel + 1
}

// CanBreedAt reports whether a pet last bred at lastBreed is out of cooldown at now.
// The boundary is inclusive.
func CanBreedAt(now, lastBreed time.Time, cooldown time.Duration) bool {
	return now.Sub(lastBreed) >= cooldown
}

// CooldownLeft returns how long until the pet may breed again, or zero.
func CooldownLeft(now, lastBreed time.Time, cooldown time.Duration) time.Duration {
	left := cooldown - now.Sub(lastBreed)
	if left < 0 {
		return 0
	}
	return left
}

// PetImageURL returns the placeholder image for a pet id.
func PetImageURL(id uint64) string {
	return fmt.Sprintf("https://picsum.photos/seed/pet%d/200/200", id)
}

// Refresh recomputes derived fields.
func (p *Pet) Refresh(now time.Time, cooldown time.Duration) {
	p.Level = LevelFor(p.Experience)
	p.CanBreed = CanBreedAt(now, p.LastBreedTime, cooldown)
	p.ImageURL = PetImageURL(p.ID)
}

// AgeDays is the pet's age in whole days.
func (p *Pet) AgeDays(now time.Time) int {
	if now.Before(p.BirthTime) {
		return 0
	}
	return int(now.Sub(p.BirthTime) / (24 * time.Hour))
}

// OwnedBy reports whether account owns the pet (case-insensitive hex compare).
func (p *Pet) OwnedBy(account string) bool {
	return strings.EqualFold(p.Owner, account)
}

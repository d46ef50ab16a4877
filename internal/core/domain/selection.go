package domain

// BreedingSelection holds up to two pets picked for breeding.
type BreedingSelection struct {
	First  *uint64 `json:"first,omitempty"`
	Second *uint64 `json:"second,omitempty"`
}

// Toggle applies a click on a pet: a selected pet is deselected, otherwise it
// fills the first empty slot. A click while both slots are taken is ignored.
func (s BreedingSelection) Toggle(id uint64) BreedingSelection {
	switch {
	case s.First != nil && *s.First == id:
		s.First = nil
	case s.Second != nil && *s.Second == id:
		s.Second = nil
	case s.First == nil:
		s.First = &id
	case s.Second == nil:
		s.Second = &id
	}
	return s
}

// Complete reports whether two pets are selected.
func (s BreedingSelection) Complete() bool {
	return s.First != nil && s.Second != nil
}

// IDs returns the selected ids in slot order.
func (s BreedingSelection) IDs() []uint64 {
	ids := make([]uint64, 0, 2)
	if s.First != nil {
		ids = append(ids, *s.First)
	}
	if s.Second != nil {
		ids = append(ids, *s.Second)
	}
	return ids
}

// Clone copies the selection so callers cannot alias the slots.
func (s BreedingSelection) Clone() BreedingSelection {
	var out BreedingSelection
	if s.First != nil {
		v := *s.First
		out.First = &v
	}
	if s.Second != nil {
		v := *s.Second
		out.Second = &v
	}
	return out
}

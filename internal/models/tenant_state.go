package models

import (
	"maps"
	"slices"
	"sort"
)

// TenantState is the complete draw state owned by a single tenant
type TenantState struct {
	// TenantID identifies the owner of this state
	TenantID string

	// Roster is the ordered list of people eligible to win
	Roster []Person

	// Prizes are kept in insertion order
	Prizes []Prize

	// Winners are kept in chronological order
	Winners []WinRecord

	// Excluded holds the ids of people currently holding a win
	Excluded map[string]struct{}
}

// NewTenantState returns an empty state for a tenant
func NewTenantState(tenantID string) *TenantState {
	return &TenantState{
		TenantID: tenantID,
		Roster:   []Person{},
		Prizes:   []Prize{},
		Winners:  []WinRecord{},
		Excluded: make(map[string]struct{}),
	}
}

// Clone returns a copy that can be mutated without affecting the receiver.
// The roster is shared since it is only ever replaced wholesale.
func (s *TenantState) Clone() *TenantState {
	excluded := maps.Clone(s.Excluded)
	if excluded == nil {
		excluded = make(map[string]struct{})
	}

	return &TenantState{
		TenantID: s.TenantID,
		Roster:   s.Roster,
		Prizes:   slices.Clone(s.Prizes),
		Winners:  slices.Clone(s.Winners),
		Excluded: excluded,
	}
}

// IsExcluded reports whether a person currently holds a win
func (s *TenantState) IsExcluded(personID string) bool {
	_, ok := s.Excluded[personID]
	return ok
}

// ExcludedIDs returns the exclusion set as a sorted slice
func (s *TenantState) ExcludedIDs() []string {
	ids := make([]string, 0, len(s.Excluded))
	for id := range s.Excluded {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Candidates returns the roster members not currently excluded, in roster
// order. A repeated id only contributes its first entry so one draw can never
// pick the same person twice.
func (s *TenantState) Candidates() []Person {
	candidates := make([]Person, 0, len(s.Roster))
	seen := make(map[string]struct{}, len(s.Roster))
	for _, p := range s.Roster {
		if _, dup := seen[p.ID]; dup || s.IsExcluded(p.ID) {
			continue
		}
		seen[p.ID] = struct{}{}
		candidates = append(candidates, p)
	}
	return candidates
}

// PrizeIndex returns the position of a prize by id, or -1
func (s *TenantState) PrizeIndex(prizeID string) int {
	return slices.IndexFunc(s.Prizes, func(p Prize) bool {
		return p.ID == prizeID
	})
}

// WinnerIndex returns the position of a win record by id, or -1
func (s *TenantState) WinnerIndex(recordID string) int {
	return slices.IndexFunc(s.Winners, func(w WinRecord) bool {
		return w.ID == recordID
	})
}

package domain

// ConstraintState tracks names and role counts for one owner while a batch
// or a single add is being validated.
type ConstraintState struct {
	names      map[string]struct{}
	roleCounts map[Role]int
}

func NewConstraintState() *ConstraintState {
	return &ConstraintState{
		names:      map[string]struct{}{},
		roleCounts: map[Role]int{},
	}
}

// SeedConstraintState builds the state for a roster that already holds characters.
func SeedConstraintState(characters []Character) *ConstraintState {
	state := NewConstraintState()
	for _, character := range characters {
		state.names[character.Name] = struct{}{}
		state.roleCounts[character.Role]++
	}
	return state
}

func (s *ConstraintState) HasName(name string) bool {
	if s == nil {
		return false
	}
	_, ok := s.names[name]
	return ok
}

func (s *ConstraintState) Count(role Role) int {
	if s == nil {
		return 0
	}
	return s.roleCounts[role]
}

// ReserveName marks name as taken without touching role counts.
func (s *ConstraintState) ReserveName(name string) {
	s.names[name] = struct{}{}
}

func (s *ConstraintState) SetCount(role Role, count int) {
	s.roleCounts[role] = count
}

// Claim records that a record now occupies its name slot and one unit of its
// role's capacity. The first claim of a name wins.
func (s *ConstraintState) Claim(record CandidateRecord) {
	if _, ok := s.names[record.Name]; !ok {
		s.names[record.Name] = struct{}{}
	}
	s.roleCounts[record.Role]++
}

// BatchPolicy controls how a batch treats records that fail validation.
type BatchPolicy struct {
	// ClaimRejected lets a rejected record still occupy its name and count
	// toward its role's cap for the records after it.
	ClaimRejected bool
	// ReportIncomplete emits an IncompleteRecord error for blocks missing a
	// required key instead of dropping them.
	ReportIncomplete bool
}

func DefaultBatchPolicy() BatchPolicy {
	return BatchPolicy{ClaimRejected: true, ReportIncomplete: true}
}

package store

import (
	"encoding/json"
	"slices"
)

// CreateTable registers a new empty table at state version zero and returns
// its ID. It never fails.
func (s *Store) CreateTable(name string, maxPlayers, smallBlind, bigBlind int) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &Table{
		ID:         NewID(),
		Name:       name,
		MaxPlayers: maxPlayers,
		SmallBlind: smallBlind,
		BigBlind:   bigBlind,
		Players:    []string{},
		Seats:      map[string]int{},
		State:      json.RawMessage(`{}`),
	}
	s.tables[t.ID] = t
	return t.ID
}

// GetTable returns a snapshot of the table. Mutating the returned value has
// no effect on the stored table.
func (s *Store) GetTable(id string) (Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tables[id]
	if !ok {
		return Table{}, ErrTableNotFound
	}
	return t.snapshot(), nil
}

// ListTables returns summaries of all tables. Order is unspecified (map
// iteration order).
func (s *Store) ListTables() []TableSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]TableSummary, 0, len(s.tables))
	for _, t := range s.tables {
		out = append(out, t.summary())
	}
	return out
}

// JoinResult reports the outcome of a join. Seat is -1 when the player is
// at the table without a seat. Rejoined is true when the player was already
// present; rejoining is idempotent and returns whatever seat was recorded.
type JoinResult struct {
	Seat     int
	Rejoined bool
}

// JoinTable adds playerID to the table and assigns a seat. A requested seat
// is honored when it is in range and free; otherwise the lowest free index
// is assigned. When no index is free the player stays seatless rather than
// being evicted, which keeps Players and Seats consistent even if capacity
// and seats ever disagree. Rejections never mutate the table.
func (s *Store) JoinTable(tableID, playerID string, requestedSeat *int) (JoinResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tables[tableID]
	if !ok {
		return JoinResult{}, ErrTableNotFound
	}
	if slices.Contains(t.Players, playerID) {
		seat, seated := t.Seats[playerID]
		if !seated {
			seat = -1
		}
		return JoinResult{Seat: seat, Rejoined: true}, nil
	}
	if len(t.Players) >= t.MaxPlayers {
		return JoinResult{}, ErrTableFull
	}
	t.Players = append(t.Players, playerID)
	if requestedSeat != nil && *requestedSeat >= 0 && *requestedSeat < t.MaxPlayers && !t.seatTaken(*requestedSeat) {
		t.Seats[playerID] = *requestedSeat
		return JoinResult{Seat: *requestedSeat}, nil
	}
	if seat := t.firstFreeSeat(); seat >= 0 {
		t.Seats[playerID] = seat
		return JoinResult{Seat: seat}, nil
	}
	return JoinResult{Seat: -1}, nil
}

// LeaveTable removes the player from Players and Seats together.
func (s *Store) LeaveTable(tableID, playerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tables[tableID]
	if !ok {
		return ErrTableNotFound
	}
	idx := slices.Index(t.Players, playerID)
	if idx < 0 {
		return ErrPlayerNotAtTable
	}
	t.Players = slices.Delete(t.Players, idx, idx+1)
	delete(t.Seats, playerID)
	return nil
}

// ApplyStateSync replaces the table's state blob when proposedVersion is at
// least the current version, and returns the applied version. Equal
// versions still overwrite: the rule is last-writer-wins, not strict
// increase. A stale proposal leaves both state and version untouched.
func (s *Store) ApplyStateSync(tableID string, proposedVersion int64, state json.RawMessage) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tables[tableID]
	if !ok {
		return 0, ErrTableNotFound
	}
	if proposedVersion < t.StateVersion {
		return 0, ErrStaleVersion
	}
	t.State = cloneState(state)
	t.StateVersion = proposedVersion
	return t.StateVersion, nil
}

// StateSince returns the current (version, state) pair when the table has
// moved past since, or ErrNotModified with the current version otherwise.
// Non-blocking: callers poll, nothing waits for a change.
func (s *Store) StateSince(tableID string, since int64) (int64, json.RawMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tables[tableID]
	if !ok {
		return 0, nil, ErrTableNotFound
	}
	if t.StateVersion <= since {
		return t.StateVersion, nil, ErrNotModified
	}
	return t.StateVersion, cloneState(t.State), nil
}

// TableVersion reads the current state version without touching state. The
// action and event endpoints echo it back; they never advance it.
func (s *Store) TableVersion(tableID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tables[tableID]
	if !ok {
		return 0, ErrTableNotFound
	}
	return t.StateVersion, nil
}

func (t *Table) seatTaken(seat int) bool {
	for _, taken := range t.Seats {
		if taken == seat {
			return true
		}
	}
	return false
}

func (t *Table) firstFreeSeat() int {
	for i := 0; i < t.MaxPlayers; i++ {
		if !t.seatTaken(i) {
			return i
		}
	}
	return -1
}

package store

import "encoding/json"

// Player is a registered identity. Token is a bearer secret compared
// byte-for-byte on every authenticated call; there is no rename or token
// rotation once a player exists.
type Player struct {
	ID    string
	Name  string
	Token string
}

// Table groups players, their seats and one versioned opaque state blob.
// Players keeps join order and never holds duplicates. Seats maps player ID
// to a seat index in [0, MaxPlayers); every seated player is also listed in
// Players, but a player may be present without a seat. State is application
// data the store relays without interpreting, and it is only meaningful
// together with the StateVersion it was stored with.
type Table struct {
	ID           string
	Name         string
	MaxPlayers   int
	SmallBlind   int
	BigBlind     int
	Players      []string
	Seats        map[string]int
	StateVersion int64
	State        json.RawMessage
}

// TableSummary is the list-view projection of a table.
type TableSummary struct {
	ID           string
	Name         string
	MaxPlayers   int
	SmallBlind   int
	BigBlind     int
	PlayerCount  int
	StateVersion int64
}

func (t *Table) snapshot() Table {
	out := *t
	out.Players = make([]string, len(t.Players))
	copy(out.Players, t.Players)
	out.Seats = make(map[string]int, len(t.Seats))
	for id, seat := range t.Seats {
		out.Seats[id] = seat
	}
	out.State = cloneState(t.State)
	return out
}

func (t *Table) summary() TableSummary {
	return TableSummary{
		ID:           t.ID,
		Name:         t.Name,
		MaxPlayers:   t.MaxPlayers,
		SmallBlind:   t.SmallBlind,
		BigBlind:     t.BigBlind,
		PlayerCount:  len(t.Players),
		StateVersion: t.StateVersion,
	}
}

func cloneState(state json.RawMessage) json.RawMessage {
	if state == nil {
		return nil
	}
	return append(json.RawMessage(nil), state...)
}

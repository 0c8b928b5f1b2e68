// Package statesync carries the state synchronization protocol: version-gated
// state replacement, the polling read, and the relay-only action/event
// acknowledgements that a future rules engine would replace.
package statesync

import (
	"encoding/json"
	"errors"

	"tablerelay/internal/store"
)

type Service struct {
	store *store.Store
}

func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

// SyncState applies a client's proposed (version, state) pair. The store
// accepts it when the proposed version is at least the current one; a
// missing version field counts as -1 and is therefore always stale once a
// sync has landed.
func (s *Service) SyncState(tableID string, req SyncRequest) (*SyncResponse, error) {
	if !s.store.Authenticate(req.PlayerID, req.Token) {
		return nil, ErrUnauthorized
	}
	proposed := int64(-1)
	if req.Version != nil {
		proposed = *req.Version
	}
	state := req.State
	if state == nil {
		state = json.RawMessage(`{}`)
	}
	applied, err := s.store.ApplyStateSync(tableID, proposed, state)
	switch {
	case errors.Is(err, store.ErrTableNotFound):
		return nil, ErrTableNotFound
	case errors.Is(err, store.ErrStaleVersion):
		return nil, ErrStaleVersion
	case err != nil:
		return nil, err
	}
	return &SyncResponse{TableID: tableID, AppliedVersion: applied}, nil
}

// StateSince returns the current state when it is newer than since. The
// bool reports whether anything changed; an unchanged poll still carries
// the current version so clients can resynchronize their counters.
func (s *Service) StateSince(tableID string, since int64) (*StateResponse, bool, error) {
	version, state, err := s.store.StateSince(tableID, since)
	switch {
	case errors.Is(err, store.ErrTableNotFound):
		return nil, false, ErrTableNotFound
	case errors.Is(err, store.ErrNotModified):
		return &StateResponse{TableID: tableID, Version: version, State: json.RawMessage(`"unchanged"`)}, false, nil
	case err != nil:
		return nil, false, err
	}
	return &StateResponse{TableID: tableID, Version: version, State: state}, true, nil
}

// PostEvents acknowledges a batch of client events. Events are not stored
// and do not touch the table; the count is echoed back.
func (s *Service) PostEvents(tableID string, req EventsRequest) (*EventsResponse, error) {
	if !s.store.Authenticate(req.PlayerID, req.Token) {
		return nil, ErrUnauthorized
	}
	return &EventsResponse{TableID: tableID, Acknowledged: len(req.Events)}, nil
}

// PostAction echoes the action together with the table's current version.
// It never advances the version; appliedVersion is -1 when the table does
// not exist.
func (s *Service) PostAction(tableID string, req ActionRequest) (*ActionResponse, error) {
	if !s.store.Authenticate(req.PlayerID, req.Token) {
		return nil, ErrUnauthorized
	}
	applied := int64(-1)
	if v, err := s.store.TableVersion(tableID); err == nil {
		applied = v
	}
	action := req.Action
	if action == nil {
		action = json.RawMessage(`{}`)
	}
	return &ActionResponse{TableID: tableID, Action: action, AppliedVersion: applied}, nil
}

// ForceResync is a pure acknowledgement; clients interpret it as a hint to
// re-pull the full state.
func (s *Service) ForceResync(tableID string, req AuthRequest) (*ResyncResponse, error) {
	if !s.store.Authenticate(req.PlayerID, req.Token) {
		return nil, ErrUnauthorized
	}
	return &ResyncResponse{TableID: tableID, Request: "resync"}, nil
}

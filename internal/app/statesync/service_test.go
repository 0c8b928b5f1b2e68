package statesync

import (
	"encoding/json"
	"errors"
	"testing"

	"tablerelay/internal/store"
)

func int64Ptr(v int64) *int64 { return &v }

func setup(t *testing.T) (*store.Store, *Service, store.Player, string) {
	t.Helper()
	st := store.New()
	p := st.CreatePlayer("alice")
	tableID := st.CreateTable("t", 9, 1, 2)
	return st, NewService(st), p, tableID
}

func TestSyncState(t *testing.T) {
	_, svc, p, tableID := setup(t)

	resp, err := svc.SyncState(tableID, SyncRequest{
		PlayerID: p.ID, Token: p.Token,
		Version: int64Ptr(5), State: json.RawMessage(`{"pot":10}`),
	})
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if resp.AppliedVersion != 5 {
		t.Fatalf("applied = %d, want 5", resp.AppliedVersion)
	}

	_, err = svc.SyncState(tableID, SyncRequest{
		PlayerID: p.ID, Token: p.Token,
		Version: int64Ptr(3), State: json.RawMessage(`{"pot":99}`),
	})
	if !errors.Is(err, ErrStaleVersion) {
		t.Fatalf("stale err = %v, want ErrStaleVersion", err)
	}

	state, changed, err := svc.StateSince(tableID, 0)
	if err != nil || !changed {
		t.Fatalf("poll = (%v, %v)", changed, err)
	}
	if state.Version != 5 || string(state.State) != `{"pot":10}` {
		t.Fatalf("poll = %+v, want version 5 and original state", state)
	}
}

func TestSyncStateMissingVersionIsStale(t *testing.T) {
	_, svc, p, tableID := setup(t)

	// Omitted version counts as -1: below the fresh table's version 0.
	_, err := svc.SyncState(tableID, SyncRequest{PlayerID: p.ID, Token: p.Token})
	if !errors.Is(err, ErrStaleVersion) {
		t.Fatalf("err = %v, want ErrStaleVersion", err)
	}
}

func TestSyncStateAuthAndNotFound(t *testing.T) {
	_, svc, p, tableID := setup(t)

	_, err := svc.SyncState(tableID, SyncRequest{PlayerID: p.ID, Token: "bad", Version: int64Ptr(1)})
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("bad token err = %v, want ErrUnauthorized", err)
	}
	_, err = svc.SyncState("nope", SyncRequest{PlayerID: p.ID, Token: p.Token, Version: int64Ptr(1)})
	if !errors.Is(err, ErrTableNotFound) {
		t.Fatalf("unknown table err = %v, want ErrTableNotFound", err)
	}
}

func TestStateSinceUnchanged(t *testing.T) {
	_, svc, p, tableID := setup(t)
	if _, err := svc.SyncState(tableID, SyncRequest{PlayerID: p.ID, Token: p.Token, Version: int64Ptr(2), State: json.RawMessage(`{}`)}); err != nil {
		t.Fatalf("sync: %v", err)
	}

	resp, changed, err := svc.StateSince(tableID, 2)
	if err != nil {
		t.Fatalf("poll: %v", err)
	}
	if changed {
		t.Fatal("expected unchanged poll")
	}
	if resp.Version != 2 || string(resp.State) != `"unchanged"` {
		t.Fatalf("unchanged poll = %+v", resp)
	}

	if _, _, err := svc.StateSince("nope", 0); !errors.Is(err, ErrTableNotFound) {
		t.Fatalf("unknown table err = %v, want ErrTableNotFound", err)
	}
}

func TestPostEventsEchoesCount(t *testing.T) {
	st, svc, p, tableID := setup(t)

	resp, err := svc.PostEvents(tableID, EventsRequest{
		PlayerID: p.ID, Token: p.Token,
		Events: []json.RawMessage{json.RawMessage(`{"e":1}`), json.RawMessage(`{"e":2}`)},
	})
	if err != nil {
		t.Fatalf("events: %v", err)
	}
	if resp.Acknowledged != 2 {
		t.Fatalf("acknowledged = %d, want 2", resp.Acknowledged)
	}
	// Relay-only: the table's version must not move.
	if v, _ := st.TableVersion(tableID); v != 0 {
		t.Fatalf("version after events = %d, want 0", v)
	}

	if _, err := svc.PostEvents(tableID, EventsRequest{PlayerID: p.ID, Token: "bad"}); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("bad token err = %v, want ErrUnauthorized", err)
	}
}

func TestPostActionEchoesVersion(t *testing.T) {
	st, svc, p, tableID := setup(t)
	if _, err := st.ApplyStateSync(tableID, 4, json.RawMessage(`{}`)); err != nil {
		t.Fatalf("seed sync: %v", err)
	}

	resp, err := svc.PostAction(tableID, ActionRequest{
		PlayerID: p.ID, Token: p.Token, Action: json.RawMessage(`{"type":"raise"}`),
	})
	if err != nil {
		t.Fatalf("action: %v", err)
	}
	if resp.AppliedVersion != 4 {
		t.Fatalf("appliedVersion = %d, want 4", resp.AppliedVersion)
	}
	if string(resp.Action) != `{"type":"raise"}` {
		t.Fatalf("action echo = %s", resp.Action)
	}
	if v, _ := st.TableVersion(tableID); v != 4 {
		t.Fatalf("version after action = %d, want 4", v)
	}

	// Unknown table: still acknowledged, version reported as -1.
	resp, err = svc.PostAction("nope", ActionRequest{PlayerID: p.ID, Token: p.Token})
	if err != nil {
		t.Fatalf("action on unknown table: %v", err)
	}
	if resp.AppliedVersion != -1 {
		t.Fatalf("appliedVersion = %d, want -1", resp.AppliedVersion)
	}
}

func TestForceResync(t *testing.T) {
	_, svc, p, tableID := setup(t)

	resp, err := svc.ForceResync(tableID, AuthRequest{PlayerID: p.ID, Token: p.Token})
	if err != nil {
		t.Fatalf("resync: %v", err)
	}
	if resp.Request != "resync" {
		t.Fatalf("resync = %+v", resp)
	}
	if _, err := svc.ForceResync(tableID, AuthRequest{PlayerID: p.ID, Token: "bad"}); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("bad token err = %v, want ErrUnauthorized", err)
	}
}

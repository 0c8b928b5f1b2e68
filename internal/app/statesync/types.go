package statesync

import "encoding/json"

type SyncRequest struct {
	PlayerID string          `json:"playerId"`
	Token    string          `json:"token"`
	Version  *int64          `json:"version"`
	State    json.RawMessage `json:"state"`
}

type SyncResponse struct {
	TableID        string `json:"tableId"`
	AppliedVersion int64  `json:"appliedVersion"`
}

type StateResponse struct {
	TableID string          `json:"tableId"`
	Version int64           `json:"version"`
	State   json.RawMessage `json:"state"`
}

type EventsRequest struct {
	PlayerID string            `json:"playerId"`
	Token    string            `json:"token"`
	Events   []json.RawMessage `json:"events"`
}

type EventsResponse struct {
	TableID      string `json:"tableId"`
	Acknowledged int    `json:"acknowledged"`
}

type ActionRequest struct {
	PlayerID string          `json:"playerId"`
	Token    string          `json:"token"`
	Action   json.RawMessage `json:"action"`
}

type ActionResponse struct {
	TableID        string          `json:"tableId"`
	Action         json.RawMessage `json:"action"`
	AppliedVersion int64           `json:"appliedVersion"`
}

type AuthRequest struct {
	PlayerID string `json:"playerId"`
	Token    string `json:"token"`
}

type ResyncResponse struct {
	TableID string `json:"tableId"`
	Request string `json:"request"`
}

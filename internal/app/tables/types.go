package tables

// Wire names are camelCase throughout; clients predate this server and the
// field names are part of the contract.

type CreateTableRequest struct {
	Name       string `json:"name"`
	MaxPlayers *int   `json:"maxPlayers"`
	SmallBlind *int   `json:"smallBlind"`
	BigBlind   *int   `json:"bigBlind"`
}

type CreateTableResponse struct {
	TableID string `json:"tableId"`
}

type TableListItem struct {
	TableID      string `json:"tableId"`
	Name         string `json:"name"`
	MaxPlayers   int    `json:"maxPlayers"`
	SmallBlind   int    `json:"smallBlind"`
	BigBlind     int    `json:"bigBlind"`
	Players      int    `json:"players"`
	StateVersion int64  `json:"stateVersion"`
}

type ListTablesResponse struct {
	Tables []TableListItem `json:"tables"`
}

type TableDetailResponse struct {
	TableID      string         `json:"tableId"`
	Name         string         `json:"name"`
	MaxPlayers   int            `json:"maxPlayers"`
	SmallBlind   int            `json:"smallBlind"`
	BigBlind     int            `json:"bigBlind"`
	Players      []string       `json:"players"`
	Seats        map[string]int `json:"seats"`
	StateVersion int64          `json:"stateVersion"`
}

type JoinRequest struct {
	PlayerID string `json:"playerId"`
	Token    string `json:"token"`
	Seat     *int   `json:"seat"`
}

type JoinResponse struct {
	TableID  string `json:"tableId"`
	PlayerID string `json:"playerId"`
	Seat     int    `json:"seat"`
}

type LeaveRequest struct {
	PlayerID string `json:"playerId"`
	Token    string `json:"token"`
}

type LeaveResponse struct {
	TableID  string `json:"tableId"`
	PlayerID string `json:"playerId"`
}

type HeartbeatResponse struct {
	Time         string `json:"time"`
	TableID      string `json:"tableId"`
	StateVersion int64  `json:"stateVersion"`
	Players      int    `json:"players"`
}

type ChatRequest struct {
	PlayerID string `json:"playerId"`
	Token    string `json:"token"`
	Message  string `json:"message"`
}

type ChatResponse struct {
	TableID  string `json:"tableId"`
	PlayerID string `json:"playerId"`
	Message  string `json:"message"`
	Time     string `json:"time"`
}

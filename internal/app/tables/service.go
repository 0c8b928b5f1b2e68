package tables

import (
	"errors"
	"time"

	"tablerelay/internal/config"
	"tablerelay/internal/store"
)

type Service struct {
	store *store.Store
	cfg   config.ServerConfig
}

func NewService(st *store.Store, cfg config.ServerConfig) *Service {
	return &Service{store: st, cfg: cfg}
}

// Create makes a new table. Omitted fields fall back to the configured
// defaults; creation itself never fails.
func (s *Service) Create(req CreateTableRequest) *CreateTableResponse {
	name := req.Name
	if name == "" {
		name = s.cfg.TableDefaultName
	}
	maxPlayers := s.cfg.TableDefaultMaxPlayers
	if req.MaxPlayers != nil && *req.MaxPlayers >= 1 {
		maxPlayers = *req.MaxPlayers
	}
	smallBlind := s.cfg.TableDefaultSmallBlind
	if req.SmallBlind != nil {
		smallBlind = *req.SmallBlind
	}
	bigBlind := s.cfg.TableDefaultBigBlind
	if req.BigBlind != nil {
		bigBlind = *req.BigBlind
	}
	id := s.store.CreateTable(name, maxPlayers, smallBlind, bigBlind)
	return &CreateTableResponse{TableID: id}
}

func (s *Service) List() *ListTablesResponse {
	summaries := s.store.ListTables()
	out := make([]TableListItem, 0, len(summaries))
	for _, t := range summaries {
		out = append(out, TableListItem{
			TableID:      t.ID,
			Name:         t.Name,
			MaxPlayers:   t.MaxPlayers,
			SmallBlind:   t.SmallBlind,
			BigBlind:     t.BigBlind,
			Players:      t.PlayerCount,
			StateVersion: t.StateVersion,
		})
	}
	return &ListTablesResponse{Tables: out}
}

func (s *Service) Get(tableID string) (*TableDetailResponse, error) {
	t, err := s.store.GetTable(tableID)
	if err != nil {
		return nil, ErrTableNotFound
	}
	return &TableDetailResponse{
		TableID:      t.ID,
		Name:         t.Name,
		MaxPlayers:   t.MaxPlayers,
		SmallBlind:   t.SmallBlind,
		BigBlind:     t.BigBlind,
		Players:      t.Players,
		Seats:        t.Seats,
		StateVersion: t.StateVersion,
	}, nil
}

func (s *Service) Join(tableID string, req JoinRequest) (*JoinResponse, error) {
	if !s.store.Authenticate(req.PlayerID, req.Token) {
		return nil, ErrUnauthorized
	}
	res, err := s.store.JoinTable(tableID, req.PlayerID, req.Seat)
	switch {
	case errors.Is(err, store.ErrTableNotFound):
		return nil, ErrTableNotFound
	case errors.Is(err, store.ErrTableFull):
		return nil, ErrTableFull
	case err != nil:
		return nil, err
	}
	if res.Seat < 0 {
		// At the table but seatless; clients treat a join without a seat
		// as a failure.
		return nil, ErrCannotJoin
	}
	return &JoinResponse{TableID: tableID, PlayerID: req.PlayerID, Seat: res.Seat}, nil
}

func (s *Service) Leave(tableID string, req LeaveRequest) (*LeaveResponse, error) {
	if !s.store.Authenticate(req.PlayerID, req.Token) {
		return nil, ErrUnauthorized
	}
	err := s.store.LeaveTable(tableID, req.PlayerID)
	switch {
	case errors.Is(err, store.ErrTableNotFound):
		return nil, ErrTableNotFound
	case errors.Is(err, store.ErrPlayerNotAtTable):
		return nil, ErrNotAtTable
	case err != nil:
		return nil, err
	}
	return &LeaveResponse{TableID: tableID, PlayerID: req.PlayerID}, nil
}

// Heartbeat reports the table's version and occupancy. An unknown table is
// not an error here: the response carries stateVersion -1 so lobby clients
// can poll tables that may not exist yet.
func (s *Service) Heartbeat(tableID string) *HeartbeatResponse {
	resp := &HeartbeatResponse{
		Time:         time.Now().UTC().Format(time.RFC3339),
		TableID:      tableID,
		StateVersion: -1,
	}
	if t, err := s.store.GetTable(tableID); err == nil {
		resp.StateVersion = t.StateVersion
		resp.Players = len(t.Players)
	}
	return resp
}

// Chat relays a message back to the sender with the server timestamp. The
// relay stores nothing; distribution is the clients' problem.
func (s *Service) Chat(tableID string, req ChatRequest) (*ChatResponse, error) {
	if !s.store.Authenticate(req.PlayerID, req.Token) {
		return nil, ErrUnauthorized
	}
	if req.Message == "" {
		return nil, ErrMessageRequired
	}
	return &ChatResponse{
		TableID:  tableID,
		PlayerID: req.PlayerID,
		Message:  req.Message,
		Time:     time.Now().UTC().Format(time.RFC3339),
	}, nil
}

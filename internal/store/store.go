package store

import "sync"

// Store is the single source of truth for players, tables and sessions.
// One mutex serializes every operation, so each method is atomic with
// respect to all others. Callers always receive copies: a handler can never
// observe or cause a mutation of a stored entity through a returned value.
//
// Sequences of store calls made by one handler are NOT atomic against
// concurrent writers; only individual methods are.
type Store struct {
	mu       sync.Mutex
	players  map[string]*Player
	tables   map[string]*Table
	sessions map[string]string
}

func New() *Store {
	return &Store{
		players:  map[string]*Player{},
		tables:   map[string]*Table{},
		sessions: map[string]string{},
	}
}

// CreatePlayer registers a new player and mints their bearer token.
func (s *Store) CreatePlayer(name string) Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := &Player{ID: NewID(), Name: name, Token: NewToken()}
	s.players[p.ID] = p
	return *p
}

func (s *Store) GetPlayer(id string) (Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.players[id]
	if !ok {
		return Player{}, ErrPlayerNotFound
	}
	return *p, nil
}

// Authenticate reports whether token matches the stored bearer secret for
// playerID. Plain equality: tokens are server-generated secrets, not
// user-chosen passwords.
func (s *Store) Authenticate(playerID, token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.players[playerID]
	return ok && p.Token == token
}

// CreateSession records a session for playerID and returns its ID.
func (s *Store) CreateSession(playerID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := NewID()
	s.sessions[id] = playerID
	return id
}

// GetSession resolves a session ID to the player it was created for. No
// endpoint currently reads sessions back; the lookup exists so the session
// table is a real store rather than a write-only sink.
func (s *Store) GetSession(sessionID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	playerID, ok := s.sessions[sessionID]
	if !ok {
		return "", ErrSessionNotFound
	}
	return playerID, nil
}

package players

import "tablerelay/internal/store"

type Service struct {
	store *store.Store
}

func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

func (s *Service) Register(name string) (*RegisterResponse, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	p := s.store.CreatePlayer(name)
	return &RegisterResponse{PlayerID: p.ID, Token: p.Token, Name: p.Name}, nil
}

func (s *Service) CreateSession(playerID, token string) (*SessionResponse, error) {
	if playerID == "" || token == "" {
		return nil, ErrAuthRequired
	}
	if !s.store.Authenticate(playerID, token) {
		return nil, ErrUnauthorized
	}
	sessionID := s.store.CreateSession(playerID)
	return &SessionResponse{SessionID: sessionID, PlayerID: playerID}, nil
}

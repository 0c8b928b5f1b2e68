package players

type RegisterResponse struct {
	PlayerID string `json:"playerId"`
	Token    string `json:"token"`
	Name     string `json:"name"`
}

type SessionResponse struct {
	SessionID string `json:"sessionId"`
	PlayerID  string `json:"playerId"`
}

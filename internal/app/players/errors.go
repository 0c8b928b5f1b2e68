package players

import "errors"

var (
	ErrNameRequired = errors.New("name_required")
	ErrAuthRequired = errors.New("auth_required")
	ErrUnauthorized = errors.New("unauthorized")
)

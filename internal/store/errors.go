package store

import "errors"

var (
	ErrPlayerNotFound   = errors.New("player_not_found")
	ErrTableNotFound    = errors.New("table_not_found")
	ErrSessionNotFound  = errors.New("session_not_found")
	ErrTableFull        = errors.New("table_full")
	ErrPlayerNotAtTable = errors.New("player_not_at_table")
	ErrStaleVersion     = errors.New("stale_version")
	ErrNotModified      = errors.New("not_modified")
)

package tables

import "errors"

var (
	ErrUnauthorized    = errors.New("unauthorized")
	ErrTableNotFound   = errors.New("table_not_found")
	ErrNotAtTable      = errors.New("not_at_table")
	ErrTableFull       = errors.New("table_full")
	ErrCannotJoin      = errors.New("cannot_join")
	ErrMessageRequired = errors.New("message_required")
)

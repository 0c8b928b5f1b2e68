package statesync

import "errors"

var (
	ErrUnauthorized  = errors.New("unauthorized")
	ErrTableNotFound = errors.New("table_not_found")
	ErrStaleVersion  = errors.New("stale_version")
)

// Package common defines sentinel errors shared by the gateway, the backend
// clients and the configuration layer. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Configuration errors.
	ErrMissingEndpoint = errors.New("backend endpoint is not configured")
	ErrMissingAPIKey   = errors.New("backend access key is not configured")
	ErrMissingDSN      = errors.New("database DSN is not configured")
	ErrUnknownBackend  = errors.New("unknown backend")

	// Backend errors.
	ErrInvalidCollection = errors.New("invalid collection name")
	ErrEmptyInsert       = errors.New("nothing to insert")
)

package redis

import "errors"

var (
	// ErrInvalidConnectionURL indicates the connection URL failed to parse.
	ErrInvalidConnectionURL = errors.New("redis.invalid_connection_url")

	// ErrNotReady indicates the server did not answer within the configured
	// retry budget.
	ErrNotReady = errors.New("redis.not_ready")
)

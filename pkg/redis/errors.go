package redis

import "errors"

var (
	// ErrHostRequired is returned when no host is configured.
	ErrHostRequired = errors.New("redis: host is required")
	// ErrInvalidPort is returned when the port is out of range.
	ErrInvalidPort = errors.New("redis: port must be between 1 and 65535")
)

package gateway

import "errors"

var (
	// ErrUnavailable indicates the gateway endpoint is unreachable.
	ErrUnavailable = errors.New("gateway unavailable")

	// ErrBadStatus indicates the gateway answered with a non-2xx status.
	ErrBadStatus = errors.New("gateway returned error status")

	// ErrInvalidResponse indicates the gateway body could not be parsed
	// or lacked the expected field.
	ErrInvalidResponse = errors.New("invalid gateway response")
)

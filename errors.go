package dtanet

import (
	"github.com/pkg/errors"
)

/* Domain error taxonomy. Raise sites wrap these sentinels with context, so callers can match with errors.Is */

var (
	// ErrInvalidEndpoint is returned when a link is constructed with an endpoint that does not satisfy the node contract
	ErrInvalidEndpoint = errors.New("invalid endpoint")
	// ErrUnknownEndpoint is returned when a link is queried with a node which is neither of its endpoints
	ErrUnknownEndpoint = errors.New("unknown endpoint")
	// ErrMissingAttributes is returned when attribute comparison is invoked on a link carrying no comparison attributes
	ErrMissingAttributes = errors.New("missing link attributes")
	// ErrDuplicateID is returned by the network registry on identifier collision
	ErrDuplicateID = errors.New("duplicate identifier")
	// ErrUnknownID is returned by the network registry when no entity carries the requested identifier
	ErrUnknownID = errors.New("unknown identifier")
)

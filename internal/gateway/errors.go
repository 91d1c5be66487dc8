package gateway

import (
	"errors"
	"fmt"
)

var (
	// ErrNoCredential indicates a gateway call was attempted without a bearer
	// token. Raised before any network I/O.
	ErrNoCredential = errors.New("no credential available for gateway call")

	// ErrRemoteStatus indicates the remote service answered with a non-2xx
	// status.
	ErrRemoteStatus = errors.New("gateway returned error status")
)

// CallError tags a remote failure with which gateway, operation, and entity
// it concerned. Failures are terminal for the attempt; retry is manual.
type CallError struct {
	Gateway  string
	Op       string
	Kind     string
	EntityID string
	Err      error
}

func (e *CallError) Error() string {
	if e.EntityID == "" {
		return fmt.Sprintf("%s %s %s: %v", e.Gateway, e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s %s %s/%s: %v", e.Gateway, e.Op, e.Kind, e.EntityID, e.Err)
}

func (e *CallError) Unwrap() error { return e.Err }

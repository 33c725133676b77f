package consolemenu

import (
	"errors"
	"fmt"
)

// Sentinel errors for session lifecycle conditions.
var (
	// ErrClosed is returned when a Session is used after Close.
	ErrClosed = errors.New("session closed")

	// ErrAlreadyRunning is returned when Run is called a second time.
	ErrAlreadyRunning = errors.New("session already running")
)

// InfrastructureError represents a failure outside navigation itself: the
// console could not be opened, an input device disappeared, a mapping file
// was malformed. Navigation operations never return errors.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "init_console", "read_input")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("consolemenu: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("consolemenu: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}

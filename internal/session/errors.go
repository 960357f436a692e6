package session

import (
	"errors"
	"fmt"
)

// Rejection causes. None of them change session state.
var (
	// ErrAlreadyRunning indicates Start while the session is running.
	ErrAlreadyRunning = errors.New("session: already running")

	// ErrNotRunning indicates Stop while the session is idle or stopped.
	ErrNotRunning = errors.New("session: not running")

	// ErrResetWhileRunning indicates Reset before the session was stopped.
	ErrResetWhileRunning = errors.New("session: cannot reset while running")

	// ErrBusy indicates a configuration change while the session is running.
	ErrBusy = errors.New("session: cannot reconfigure while running")

	// ErrInvalidTarget indicates a negative iteration target.
	ErrInvalidTarget = errors.New("session: iteration target must not be negative")

	// ErrInvalidRuns indicates an ensemble with no runs.
	ErrInvalidRuns = errors.New("session: ensemble needs at least one run")
)

// Rejection reports a command that was refused in the current state.
type Rejection struct {
	Command string
	State   State
	Err     error
}

func (r *Rejection) Error() string {
	return fmt.Sprintf("%s rejected (%s): %v", r.Command, r.State, r.Err)
}

func (r *Rejection) Unwrap() error {
	return r.Err
}

// IsRejection reports whether err is a user-facing command rejection rather
// than a failure.
func IsRejection(err error) bool {
	var r *Rejection
	return errors.As(err, &r)
}

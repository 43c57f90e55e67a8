package domain

import "errors"

// Validation errors, reported to the caller without any state change.
var (
	ErrInvalidTime   = errors.New("invalid time, expected HH:MM:SS (24 hour format)")
	ErrInvalidWindow = errors.New("start and end times must be different")
)

// Precondition errors for member commands.
var (
	ErrNotAMember          = errors.New("not a member of the morning club")
	ErrAlreadyMember       = errors.New("already a member of the morning club")
	ErrAlreadyActive       = errors.New("member is already active")
	ErrAlreadyInactive     = errors.New("member is already inactive")
	ErrMustDeactivateFirst = errors.New("member must be deactivated first")
)

// ErrStoreUnavailable wraps every failure coming from the data store.
var ErrStoreUnavailable = errors.New("store unavailable")

package contestdb

import "errors"

var (
	// ErrContestNotFound is returned when no contest exists for an ID. The
	// HTTP layer maps it to a 404.
	ErrContestNotFound = errors.New("contest not found")

	// ErrDuplicateRegistration is returned when a user registers for a
	// contest they already joined.
	ErrDuplicateRegistration = errors.New("user already registered for contest")
)

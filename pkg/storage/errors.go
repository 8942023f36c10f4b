package storage

import "errors"

// Common errors returned by storage implementations.
var (
	// ErrAlreadyInTx is returned when an operation requiring a non-transactional
	// context is attempted while already inside a transaction.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned when a transaction-specific operation is attempted
	// while not currently inside a transaction.
	ErrNotInTx = errors.New("not in tx")
	// ErrDuplicate is returned when a write violates a uniqueness constraint.
	// Implementations wrap it in a *ConstraintError naming the constraint.
	ErrDuplicate = errors.New("duplicate")
	// ErrMissingReference is returned when a write references a row that does
	// not exist (e.g. an unknown tag or ingredient ID).
	ErrMissingReference = errors.New("missing reference")
)

// ConstraintError reports which database constraint rejected a write.
type ConstraintError struct {
	// Err is either ErrDuplicate or ErrMissingReference.
	Err error
	// Constraint is the name of the violated constraint, e.g. "users_email_key".
	Constraint string
}

func (e *ConstraintError) Error() string {
	return e.Err.Error() + " (" + e.Constraint + ")"
}

func (e *ConstraintError) Unwrap() error { return e.Err }

// ConstraintOf returns the violated constraint name carried by err, or an
// empty string when err is not a constraint violation.
func ConstraintOf(err error) string {
	var ce *ConstraintError
	if errors.As(err, &ce) {
		return ce.Constraint
	}

	return ""
}

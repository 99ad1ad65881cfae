package errs

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrPersistence        = errors.New("persistence failure")
	ErrInvariantViolation = errors.New("invariant violation")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
)

// NotFound reports a missing competition, submission or user
func NotFound(entity, id string) error {
	return fmt.Errorf("%s %q: %w", entity, id, ErrNotFound)
}

// Persistence wraps a storage failure, keeping the cause inspectable
func Persistence(op string, err error) error {
	return fmt.Errorf("failed to %s: %w: %w", op, ErrPersistence, err)
}

// InvariantViolation reports a duplicate medal for a (competition, user, position) triple
func InvariantViolation(competitionID, userID string, position int, err error) error {
	return fmt.Errorf("duplicate result for competition %q user %q position %d: %w: %w",
		competitionID, userID, position, ErrInvariantViolation, err)
}

func InvalidInput(msg string) error {
	return fmt.Errorf("%s: %w", msg, ErrInvalidInput)
}

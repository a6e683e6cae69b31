package assemblers

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is matched by errors returned when a required collaborator or
	// the source sequence of a bulk conversion is nil.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrConstruction is matched by errors returned when a fresh resource could not be
	// instantiated.
	ErrConstruction = errors.New("resource construction failed")

	errNilInstance = errors.New("factory returned a nil instance")
)

func invalidArgument(op, msg string) error {
	return fmt.Errorf("%s: %w: %s", op, ErrInvalidArgument, msg)
}

func constructionFailed(op string, cause error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrConstruction, cause)
}

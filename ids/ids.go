// Package ids produces resource ids the server accepts.
package ids

import (
	"errors"
	"fmt"

	"github.com/andyle182810/gappwrite/validator"
	"github.com/google/uuid"
)

var ErrInvalidID = errors.New("ids: invalid id")

var idValidator = validator.New() //nolint:gochecknoglobals

// Unique asks the server to generate the id.
func Unique() string {
	return "unique()"
}

// New returns a random UUID, which is 36 characters and always a valid id.
func New() string {
	return uuid.NewString()
}

type customID struct {
	ID string `json:"id" validate:"required,max=36,appwriteid"`
}

// Custom checks a caller chosen id: at most 36 characters from a-z, A-Z,
// 0-9, '.', '-' and '_', not starting with a special character.
func Custom(id string) (string, error) {
	if id == Unique() {
		return id, nil
	}

	if err := idValidator.Validate(customID{ID: id}); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidID, err)
	}

	return id, nil
}

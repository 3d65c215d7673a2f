package header

import (
	"errors"
	"fmt"

	"friendlyenum/internal/domain"
)

var (
	ErrNoEnum          = errors.New("no enum class declaration found")
	ErrNoMembers       = errors.New("enum has no members")
	ErrDuplicateMember = errors.New("duplicate enum member")
)

// Validate rejects models that would produce incorrect code. It is only used
// in strict mode; by default such headers pass through unchanged.
func Validate(model *domain.HeaderModel) error {
	if model.Enum.Name == "" {
		return ErrNoEnum
	}
	if len(model.Enum.Members) == 0 {
		return fmt.Errorf("%s: %w", model.Enum.Name, ErrNoMembers)
	}
	seen := make(map[string]bool, len(model.Enum.Members))
	for _, m := range model.Enum.Members {
		if seen[m.Name] {
			return fmt.Errorf("%s::%s: %w", model.Enum.Name, m.Name, ErrDuplicateMember)
		}
		seen[m.Name] = true
	}
	return nil
}

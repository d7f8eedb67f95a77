package ports

import (
	"context"

	"github.com/bnema/roster-cli/internal/domain"
)

// CharacterRepository persists characters. Every call is scoped to one owner.
type CharacterRepository interface {
	Create(ctx context.Context, owner domain.Owner, record domain.CandidateRecord) (domain.Character, error)
	CountByRole(ctx context.Context, owner domain.Owner, role domain.Role) (int, error)
	ExistsByName(ctx context.Context, owner domain.Owner, name string) (bool, error)
	// ListByOwner returns characters in the order they were persisted.
	ListByOwner(ctx context.Context, owner domain.Owner) ([]domain.Character, error)
	// Delete reports false when id does not exist or belongs to another owner.
	Delete(ctx context.Context, owner domain.Owner, id domain.CharacterID) (bool, error)
}

// Package storage provides shared types for recipe storage.
//
// The concrete backends live in the jsonfile and memory sub-packages. This
// package holds the interface and sentinel errors referenced by both the
// backends and their consumers (internal/recipes, cmd/rbx).
package storage

import (
	"context"
	"errors"

	"github.com/recipebox/rbx/internal/types"
)

// ErrNotFound is returned when a requested recipe does not exist.
var ErrNotFound = errors.New("recipe not found")

// Storage is the interface satisfied by the jsonfile and memory backends.
// Consumers depend on this interface rather than on a concrete type so that
// alternative implementations (a database, mocks) can be substituted.
//
// The unit of persistence is the whole collection: Save replaces everything
// that Load would return. There is no per-recipe durability granularity.
type Storage interface {
	// Load reads the full recipe collection.
	//
	// A missing underlying store is not an error (empty collection). A
	// corrupted store is recovered best-effort and reported via warnings,
	// never as an error. Any other read failure is returned.
	Load(ctx context.Context) ([]*types.Recipe, error)

	// Save durably replaces the full collection. Implementations must never
	// leave the store partially written: after a failed Save the previously
	// committed state is still readable.
	Save(ctx context.Context, recipes []*types.Recipe) error

	// Lifecycle
	Close() error
}

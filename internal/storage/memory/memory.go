// Package memory implements an in-memory recipe store. It backs tests and
// --ephemeral runs where nothing should touch the filesystem.
package memory

import (
	"context"

	"github.com/recipebox/rbx/internal/storage"
	"github.com/recipebox/rbx/internal/types"
)

// Store keeps the committed collection in memory. Load and Save deep-copy so
// callers never alias the committed state.
type Store struct {
	recipes []*types.Recipe
	saveErr error
}

var _ storage.Storage = (*Store)(nil)

// New creates an empty in-memory store.
func New() *Store {
	return &Store{recipes: []*types.Recipe{}}
}

// FailSavesWith makes every subsequent Save return err. Pass nil to restore
// normal behavior. Used by tests exercising write-failure paths.
func (s *Store) FailSavesWith(err error) {
	s.saveErr = err
}

// Load returns a deep copy of the committed collection.
func (s *Store) Load(ctx context.Context) ([]*types.Recipe, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return types.CloneAll(s.recipes), nil
}

// Save replaces the committed collection.
func (s *Store) Save(ctx context.Context, recipes []*types.Recipe) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.saveErr != nil {
		return s.saveErr
	}
	s.recipes = types.CloneAll(recipes)
	return nil
}

// Close is a no-op.
func (s *Store) Close() error {
	return nil
}

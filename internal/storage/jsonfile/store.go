// Package jsonfile implements recipe storage as a single JSON document with
// crash-tolerant writes: backup before overwrite, write to a temp sibling,
// atomic rename onto the primary path.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/recipebox/rbx/internal/debug"
	"github.com/recipebox/rbx/internal/storage"
	"github.com/recipebox/rbx/internal/types"
)

// osRename is swapped out in tests to simulate a failure between the temp
// write and the commit rename.
var osRename = os.Rename

// Store persists the recipe collection to a JSON file.
//
// Beside the primary file live two auxiliary paths: "<path>.backup" holds the
// previously committed state and "<path>.tmp.*" is a transient staging file
// present only during a save.
type Store struct {
	path       string
	backupPath string
}

var _ storage.Storage = (*Store)(nil)

// New creates a Store for the given file path. The file does not need to
// exist; a missing file loads as an empty collection.
func New(path string) *Store {
	return &Store{
		path:       path,
		backupPath: path + ".backup",
	}
}

// Path returns the primary file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the recipe collection from disk.
//
// Missing file: empty collection, no error. Individual records that fail
// required-field validation are skipped with a warning. Malformed JSON: the
// backup (if any) is copied over the primary and the load retried once;
// failing that, an empty collection is returned with a warning. Any other
// read failure is returned to the caller.
func (s *Store) Load(ctx context.Context) ([]*types.Recipe, error) {
	return s.load(ctx, false)
}

func (s *Store) load(ctx context.Context, restored bool) ([]*types.Recipe, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path) // #nosec G304 - path is operator-controlled config
	if os.IsNotExist(err) {
		return []*types.Recipe{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}

	records, err := decodeDocument(data)
	if err != nil {
		if restored {
			// Backup was already restored and is itself unreadable.
			debug.Warnf("restored backup for %s is also corrupted; starting with an empty collection\n", s.path)
			return []*types.Recipe{}, nil
		}
		if _, statErr := os.Stat(s.backupPath); statErr == nil {
			debug.Warnf("%s is corrupted; restoring from backup\n", s.path)
			if copyErr := copyFile(s.backupPath, s.path); copyErr != nil {
				debug.Warnf("could not restore %s from backup: %v; starting with an empty collection\n", s.path, copyErr)
				return []*types.Recipe{}, nil
			}
			return s.load(ctx, true)
		}
		debug.Warnf("%s is corrupted and no backup exists; starting with an empty collection\n", s.path)
		return []*types.Recipe{}, nil
	}

	recipes := make([]*types.Recipe, 0, len(records))
	for i, rec := range records {
		r := new(types.Recipe)
		if err := json.Unmarshal(rec, r); err != nil {
			debug.Warnf("skipping invalid recipe entry %d: %v\n", i, err)
			continue
		}
		recipes = append(recipes, r)
	}
	return recipes, nil
}

// decodeDocument accepts both the canonical bare-array form and the legacy
// wrapped form {"recipes": [...]}.
func decodeDocument(data []byte) ([]json.RawMessage, error) {
	trimmed := strings.TrimLeftFunc(string(data), func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if strings.HasPrefix(trimmed, "{") {
		var wrapped struct {
			Recipes []json.RawMessage `json:"recipes"`
		}
		if err := json.Unmarshal(data, &wrapped); err != nil {
			return nil, err
		}
		return wrapped.Recipes, nil
	}
	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Save writes the full collection with the atomic-replace strategy:
// backup the current primary (best effort), marshal, write a temp sibling,
// rename it onto the primary. A crash mid-save leaves either the old
// complete file, or the old file plus a stray temp file -- never a
// truncated primary.
func (s *Store) Save(ctx context.Context, recipes []*types.Recipe) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	hadPrimary := false
	if _, err := os.Stat(s.path); err == nil {
		hadPrimary = true
		if err := copyFile(s.path, s.backupPath); err != nil {
			// Backup failure is non-fatal; the save proceeds.
			debug.Warnf("could not create backup of %s: %v\n", s.path, err)
		}
	}

	if err := s.writeAtomic(ctx, recipes); err != nil {
		if hadPrimary {
			if restoreErr := copyFile(s.backupPath, s.path); restoreErr != nil {
				debug.Logf("restore from backup after failed save: %v\n", restoreErr)
			}
		}
		return fmt.Errorf("writing %s: %w", s.path, err)
	}
	return nil
}

func (s *Store) writeAtomic(ctx context.Context, recipes []*types.Recipe) error {
	data, err := json.MarshalIndent(recipes, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling recipes: %w", err)
	}

	dir := filepath.Dir(s.path)
	base := filepath.Base(s.path)
	tempFile, err := os.CreateTemp(dir, base+".tmp.*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tempPath := tempFile.Name()
	defer func() {
		_ = tempFile.Close()    // may already be closed before rename
		_ = os.Remove(tempPath) // may already be renamed away
	}()

	if _, err := tempFile.Write(data); err != nil {
		return fmt.Errorf("writing temp file: %w", err)
	}

	// Close before rename (required on Windows; double-close in defer is harmless)
	_ = tempFile.Close()

	// The rename can fail transiently (antivirus scanners, Windows sharing
	// violations), so retry briefly before declaring the save failed.
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 50 * time.Millisecond
	policy := backoff.WithContext(backoff.WithMaxRetries(bo, 4), ctx)
	if err := backoff.Retry(func() error {
		return osRename(tempPath, s.path)
	}, policy); err != nil {
		return fmt.Errorf("replacing %s: %w", s.path, err)
	}

	if err := os.Chmod(s.path, 0600); err != nil {
		debug.Logf("chmod %s: %v\n", s.path, err)
	}
	return nil
}

// Close is a no-op; the store holds no open handles between operations.
func (s *Store) Close() error {
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src) // #nosec G304 - sibling of operator-controlled path
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600) // #nosec G304
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

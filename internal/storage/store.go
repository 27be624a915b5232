package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoSnapshot is returned by Load when nothing has been saved yet.
var ErrNoSnapshot = errors.New("no saved tank")

// ErrMalformedSnapshot is returned when a snapshot is missing required data.
var ErrMalformedSnapshot = errors.New("malformed snapshot")

// Store persists a single flat tank snapshot. Save fully replaces the
// previous snapshot.
type Store interface {
	Load(ctx context.Context) (*TankRecord, error)
	Save(ctx context.Context, rec *TankRecord) error
	Close() error
}

// Backend names accepted by OpenStore.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// DefaultSavePath returns the default snapshot location for a backend:
// the user config dir ($XDG_CONFIG_HOME, ~/.config or %AppData%) plus "afish".
func DefaultSavePath(backend string) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("get config dir: %w", err)
	}
	if backend == BackendSQLite {
		return filepath.Join(dir, "afish.db"), nil
	}
	return filepath.Join(dir, "afish"), nil
}

// OpenStore opens the snapshot store for backend at path.
func OpenStore(ctx context.Context, backend, path string) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendJSON:
		return NewJSONStore(path), nil
	case BackendSQLite:
		return OpenSQLiteStore(ctx, path)
	default:
		return nil, fmt.Errorf("unknown store backend %q (json|sqlite)", backend)
	}
}

package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// JSONStore keeps the snapshot in one JSON file.
type JSONStore struct {
	path string
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

func (s *JSONStore) Path() string { return s.path }

func (s *JSONStore) Load(ctx context.Context) (*TankRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNoSnapshot
		}
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	return DecodeSnapshot(data)
}

// DecodeSnapshot parses a JSON snapshot, filling defaults for fields older
// versions did not write.
func DecodeSnapshot(data []byte) (*TankRecord, error) {
	rec := NewTankRecord()
	if err := json.Unmarshal(data, rec); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if rec.Fish == nil {
		return nil, fmt.Errorf("decode snapshot: %w: missing fish list", ErrMalformedSnapshot)
	}
	return rec, nil
}

// Save writes the snapshot to a temp file and renames it over the old one.
func (s *JSONStore) Save(ctx context.Context, rec *TankRecord) error {
	if rec.Fish == nil {
		rec.Fish = []FishRecord{}
	}
	data, err := json.MarshalIndent(rec, "", "    ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}

func (s *JSONStore) Close() error { return nil }

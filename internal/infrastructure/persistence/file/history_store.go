// Package file stores query history as a JSON document.
package file

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"

	"github.com/hH-13/tilde/internal/domain/entity"
	"github.com/hH-13/tilde/internal/domain/repository"
	"github.com/hH-13/tilde/internal/logging"
)

const (
	formatVersion = 1

	dirPerm  = 0o750
	filePerm = 0o600
)

type document struct {
	Version int                  `json:"version"`
	Items   []entity.HistoryItem `json:"items"`
}

// HistoryStore keeps the history list in a single JSON file.
// Writes go to a temp file that is renamed over the original.
type HistoryStore struct {
	fs   afero.Fs
	path string
	mu   sync.Mutex
}

var _ repository.HistoryRepository = (*HistoryStore)(nil)

// NewHistoryStore creates a store for path on fsys.
func NewHistoryStore(fsys afero.Fs, path string) *HistoryStore {
	return &HistoryStore{fs: fsys, path: path}
}

// Path returns the history file path.
func (s *HistoryStore) Path() string {
	return s.path
}

// Load reads the history file. A missing or empty file is an empty history.
// Both the versioned document and a bare JSON array are accepted.
func (s *HistoryStore) Load(ctx context.Context) ([]entity.HistoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := afero.ReadFile(s.fs, s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []entity.HistoryItem{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read history file: %w", err)
	}

	items, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse history file %s: %w", s.path, err)
	}

	entity.SortHistory(items)
	logging.FromContext(ctx).Debug().Str("path", s.path).Int("items", len(items)).Msg("history file loaded")
	return items, nil
}

func decode(data []byte) ([]entity.HistoryItem, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return []entity.HistoryItem{}, nil
	}

	var items []entity.HistoryItem
	if data[0] == '[' {
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, err
		}
	} else {
		var doc document
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
		if doc.Version > formatVersion {
			return nil, fmt.Errorf("unsupported history format version %d", doc.Version)
		}
		items = doc.Items
	}

	out := make([]entity.HistoryItem, 0, len(items))
	for _, item := range items {
		if item.Text != "" && item.Count > 0 {
			out = append(out, item)
		}
	}
	return out, nil
}

// Save replaces the history file with items.
func (s *HistoryStore) Save(ctx context.Context, items []entity.HistoryItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if items == nil {
		items = []entity.HistoryItem{}
	}
	data, err := json.MarshalIndent(document{Version: formatVersion, Items: items}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}

	if err := s.writeAtomic(data); err != nil {
		return err
	}

	logging.FromContext(ctx).Debug().Str("path", s.path).Int("items", len(items)).Msg("history file saved")
	return nil
}

// Clear removes the history file.
func (s *HistoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fs.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove history file: %w", err)
	}
	logging.FromContext(ctx).Debug().Str("path", s.path).Msg("history file cleared")
	return nil
}

func (s *HistoryStore) writeAtomic(data []byte) error {
	dir := filepath.Dir(s.path)
	if err := s.fs.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("failed to create history directory: %w", err)
	}

	tmp, err := afero.TempFile(s.fs, dir, ".history-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp history file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = s.fs.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write history file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write history file: %w", err)
	}
	if err := s.fs.Chmod(tmpName, filePerm); err != nil {
		return fmt.Errorf("failed to set history file mode: %w", err)
	}
	if err := s.fs.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("failed to replace history file: %w", err)
	}
	return nil
}

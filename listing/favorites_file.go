package listing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FavoritesFileName is the fixed storage key of the file-backed store.
const FavoritesFileName = "business_favorites.json"

// FileFavoritesStore persists the favorite set as a JSON array in a fixed
// file under dir.
type FileFavoritesStore struct {
	path string
}

func NewFileFavoritesStore(dir string) *FileFavoritesStore {
	return &FileFavoritesStore{path: filepath.Join(dir, FavoritesFileName)}
}

func (s *FileFavoritesStore) Read(ctx context.Context) ([]string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read favorites file: %w", err)
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("favorites file is malformed: %w", err)
	}
	return ids, nil
}

func (s *FileFavoritesStore) Write(ctx context.Context, ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("failed to encode favorites: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write favorites file: %w", err)
	}
	return nil
}

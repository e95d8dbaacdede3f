package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/xaenox/nyaymitra-bot/internal/models"
)

// FileStorage reads the directory from a JSON document of the form
// {"lawyers": [...]}.
type FileStorage struct {
	path string
}

type directoryFile struct {
	Lawyers []models.ReferralContact `json:"lawyers"`
}

func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

func (s *FileStorage) LoadContacts(ctx context.Context) ([]models.ReferralContact, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("error reading directory file: %w", err)
	}

	var doc directoryFile
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("error parsing directory file %s: %w", s.path, err)
	}

	return doc.Lawyers, nil
}

func (s *FileStorage) Close() error {
	return nil
}

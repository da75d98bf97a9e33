package storage

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

type diskStore struct {
	dir     string
	baseURL string
	logger  *log.Logger
}

// NewDisk returns a FileStore writing into dir. Returned URLs are baseURL
// followed by the stored name. The directory is created on first save.
func NewDisk(dir, baseURL string, logger *log.Logger) FileStore {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &diskStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/"), logger: logger}
}

// Save writes data under a uuid-prefixed copy of name's base name, so two
// uploads sharing a filename never overwrite each other.
func (s *diskStore) Save(name string, data []byte) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	base := filepath.Base(strings.TrimSpace(name))
	if base == "." || base == string(filepath.Separator) || base == "" {
		base = "file"
	}
	stored := uuid.NewString() + "_" + base

	path := filepath.Join(s.dir, stored)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		s.logger.Printf("file store: save name=%q error=%v", name, err)
		return "", fmt.Errorf("write file: %w", err)
	}

	s.logger.Printf("file store: saved name=%q as=%s bytes=%d", name, stored, len(data))
	return s.baseURL + "/" + stored, nil
}

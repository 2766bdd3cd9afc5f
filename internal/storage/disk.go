package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// MaxUploadSize is the ceiling for a single image upload.
const MaxUploadSize = 5 * 1024 * 1024

var (
	ErrNotAnImage = errors.New("file must be an image")
	ErrTooLarge   = errors.New("file exceeds the 5MB limit")
)

// DiskStore saves uploaded images under a per-user directory and maps
// them to publicly resolvable URLs.
type DiskStore struct {
	root    string
	baseURL string
}

func NewDiskStore(root, baseURL string) *DiskStore {
	return &DiskStore{
		root:    root,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// Root returns the directory served under /uploads/.
func (s *DiskStore) Root() string {
	return s.root
}

// Save validates and writes an upload, returning its public URL. The
// stored name is a fresh uuid with the original extension so uploads
// never collide or expose the client's file name.
func (s *DiskStore) Save(userID uuid.UUID, filename, contentType string, size int64, r io.Reader) (string, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return "", ErrNotAnImage
	}
	if size > MaxUploadSize {
		return "", ErrTooLarge
	}

	dir := filepath.Join(s.root, userID.String())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating upload dir: %w", err)
	}

	name := uuid.New().String() + strings.ToLower(filepath.Ext(filename))
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating upload file: %w", err)
	}
	defer f.Close()

	// +1 catches a reader that lied about its size.
	written, err := io.Copy(f, io.LimitReader(r, MaxUploadSize+1))
	if err != nil {
		os.Remove(path)
		return "", fmt.Errorf("writing upload: %w", err)
	}
	if written > MaxUploadSize {
		os.Remove(path)
		return "", ErrTooLarge
	}

	return fmt.Sprintf("%s/uploads/%s/%s", s.baseURL, userID, name), nil
}

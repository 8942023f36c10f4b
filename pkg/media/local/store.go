// Package local provides a media.Store writing files to a directory on disk,
// typically a volume shared with the web server that serves them.
package local

import (
	"context"
	"errors"
	"fmt"
	"foodgram/pkg/media"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ImagesDir is the directory, relative to the store root, holding recipe images.
const ImagesDir = "recipes/images"

var errOutsideRoot = errors.New("path escapes media root")

// Store keeps images under Root and renders URLs below BaseURL.
type Store struct {
	root    string
	baseURL string
}

var _ media.Store = (*Store)(nil)

// New returns a Store rooted at root. baseURL may be absolute
// ("https://host/media") or a path ("/media").
func New(root, baseURL string) *Store {
	return &Store{
		root:    root,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (s *Store) Save(_ context.Context, img media.Image) (string, error) {
	dir := filepath.Join(s.root, filepath.FromSlash(ImagesDir))
	if err := os.MkdirAll(dir, 0o755); err != nil { //nolint: mnd
		return "", fmt.Errorf("could not create media directory: %w", err)
	}

	name := uuid.NewString() + "." + img.Ext
	if err := os.WriteFile(filepath.Join(dir, name), img.Data, 0o644); err != nil { //nolint: gosec,mnd
		return "", fmt.Errorf("could not write image: %w", err)
	}

	return path.Join(ImagesDir, name), nil
}

func (s *Store) Delete(_ context.Context, p string) error {
	full, err := s.resolve(p)
	if err != nil {
		return err
	}

	if err := os.Remove(full); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("could not delete image: %w", err)
	}

	return nil
}

func (s *Store) URL(p string) string {
	if p == "" {
		return ""
	}

	return s.baseURL + "/" + strings.TrimLeft(p, "/")
}

// resolve maps a stored path to a file below root.
func (s *Store) resolve(p string) (string, error) {
	clean := path.Clean("/" + p)
	if clean == "/" || strings.Contains(p, "..") {
		return "", fmt.Errorf("%w: %q", errOutsideRoot, p)
	}

	return filepath.Join(s.root, filepath.FromSlash(strings.TrimPrefix(clean, "/"))), nil
}

// Package media defines how recipe images travel through the application:
// they arrive as base64 data URIs, are written to a Store and are referenced
// afterwards by a path relative to the store root.
package media

import "context"

// Image is a decoded picture ready to be stored.
type Image struct {
	// Ext is the file extension without the dot, e.g. "png".
	Ext string
	// Data holds the raw file content.
	Data []byte
}

// Store persists images and renders their public URLs.
//
//go:generate mockgen -package mockmedia -source=interface.go -destination=mock/mockmedia.go *
type Store interface {
	// Save writes the image under a fresh name and returns its path relative
	// to the store root, e.g. "recipes/images/<uuid>.png".
	Save(ctx context.Context, img Image) (string, error)
	// Delete removes the file at path. Deleting a missing file is not an error.
	Delete(ctx context.Context, path string) error
	// URL returns the public URL for a stored path, or "" for an empty path.
	URL(path string) string
}

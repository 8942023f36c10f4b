package media

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrInvalidImage is returned when a data URI cannot be decoded into an image.
var ErrInvalidImage = errors.New("invalid image")

// Extensions lists the accepted image types.
var Extensions = []string{"png", "jpeg", "jpg", "gif", "webp"}

// DecodeDataURI parses a string of the form "data:image/<ext>;base64,<payload>".
// The payload must be valid base64 (padding optional) and its content must
// sniff as an image.
func DecodeDataURI(s string) (Image, error) {
	header, payload, ok := strings.Cut(s, ";base64,")
	if !ok || !strings.HasPrefix(header, "data:image/") {
		return Image{}, fmt.Errorf("%w: expected data:image/<type>;base64,<data>", ErrInvalidImage)
	}

	ext := strings.ToLower(strings.TrimPrefix(header, "data:image/"))
	if !isAllowed(ext) {
		return Image{}, fmt.Errorf("%w: unsupported type %q", ErrInvalidImage, ext)
	}

	payload = strings.TrimSpace(payload)
	if payload == "" {
		return Image{}, fmt.Errorf("%w: empty payload", ErrInvalidImage)
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		data, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
		if err != nil {
			return Image{}, fmt.Errorf("%w: malformed base64", ErrInvalidImage)
		}
	}

	if !strings.HasPrefix(http.DetectContentType(data), "image/") {
		return Image{}, fmt.Errorf("%w: content is not an image", ErrInvalidImage)
	}

	return Image{Ext: ext, Data: data}, nil
}

func isAllowed(ext string) bool {
	for _, e := range Extensions {
		if e == ext {
			return true
		}
	}

	return false
}

// Package assets turns a local file chosen for an image field into the opaque
// handle stored on the record. The CRUD core never looks inside a handle.
package assets

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/dmitrijs2005/tripdesk/internal/config"
)

// Store kinds accepted by New.
const (
	StoreNone   = "none"
	StoreInline = "inline"
	StoreS3     = "s3"
)

var ErrTooLarge = errors.New("file too large")

// Picker resolves a local path to a handle.
type Picker interface {
	Pick(ctx context.Context, path string) (string, error)
}

// New returns the picker selected by cfg.AssetStore.
func New(cfg *config.Config) (Picker, error) {
	switch strings.ToLower(cfg.AssetStore) {
	case StoreNone:
		return NoopPicker{}, nil
	case "", StoreInline:
		return &InlinePicker{MaxBytes: cfg.MaxImageBytes}, nil
	case StoreS3:
		return NewS3Picker(cfg), nil
	default:
		return nil, fmt.Errorf("unknown asset store %q", cfg.AssetStore)
	}
}

// NoopPicker keeps the path as the handle.
type NoopPicker struct{}

func (NoopPicker) Pick(_ context.Context, path string) (string, error) {
	return strings.TrimSpace(path), nil
}

// InlinePicker embeds the file in the handle as a data URI. A zero MaxBytes
// disables the size check.
type InlinePicker struct {
	MaxBytes int64
}

func (p *InlinePicker) Pick(_ context.Context, path string) (string, error) {
	data, err := readFile(strings.TrimSpace(path), p.MaxBytes)
	if err != nil {
		return "", err
	}
	return DataURI(data), nil
}

// readFile reads a regular file, refusing it with ErrTooLarge when it is
// larger than maxBytes. A zero maxBytes means no limit.
func readFile(path string, maxBytes int64) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	if maxBytes > 0 && info.Size() > maxBytes {
		return nil, fmt.Errorf("%s: %d bytes (limit %d): %w", path, info.Size(), maxBytes, ErrTooLarge)
	}
	return os.ReadFile(path)
}

// DataURI encodes data as "data:<mime>;base64,<payload>".
func DataURI(data []byte) string {
	mime := http.DetectContentType(data)
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = mime[:i]
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

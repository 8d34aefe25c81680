// Package storage keeps uploaded and generated files (visa documents,
// logos, profile images, posters) behind one small interface.
package storage

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
)

var ErrObjectNotFound = errors.New("object not found")

type Object struct {
	Key         string
	ContentType string
	Data        []byte
}

type Storage interface {
	Put(ctx context.Context, key, contentType string, data []byte) error
	Get(ctx context.Context, key string) (*Object, error)
	Delete(ctx context.Context, key string) error
	// URL is the public address of key, used for images embedded in documents.
	URL(key string) string
}

// NewKey builds "<folder>/<uuid><ext>" from an uploaded file name.
func NewKey(folder, fileName string) string {
	ext := strings.ToLower(path.Ext(fileName))
	return fmt.Sprintf("%s/%s%s", strings.Trim(folder, "/"), uuid.NewString(), ext)
}

func validKey(key string) error {
	if key == "" {
		return errors.New("storage key is required")
	}
	clean := path.Clean("/" + key)
	if clean != "/"+key || strings.Contains(key, "..") {
		return fmt.Errorf("invalid storage key %q", key)
	}
	return nil
}

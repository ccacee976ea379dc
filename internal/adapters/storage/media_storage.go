// Package storage keeps uploaded media files on the local filesystem and
// serves them back under stable /media/ URLs.
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ANOOPSONKRIYA/vlsi-web/internal/util"
)

const urlPrefix = "/media/"

type MediaStorage struct {
	baseDir string
}

func NewMediaStorage(baseDir string) (*MediaStorage, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create media directory: %w", err)
	}
	return &MediaStorage{baseDir: baseDir}, nil
}

// Dir returns the directory uploads are written to, for mounting as a static
// file root.
func (s *MediaStorage) Dir() string {
	return s.baseDir
}

// Store writes the uploaded bytes under a slugified version of the original
// filename and returns the URL the file is served at.
func (s *MediaStorage) Store(ctx context.Context, name string, data []byte) (string, error) {
	filename := safeFilename(name)
	if filename == "" {
		return "", fmt.Errorf("invalid file name %q", name)
	}

	destPath := filepath.Join(s.baseDir, filename)
	if err := os.WriteFile(destPath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write media file: %w", err)
	}

	return urlPrefix + filename, nil
}

func (s *MediaStorage) Delete(ctx context.Context, url string) error {
	path, err := s.pathFor(url)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to delete media file: %w", err)
	}
	return nil
}

func (s *MediaStorage) Exists(ctx context.Context, url string) (bool, error) {
	path, err := s.pathFor(url)
	if err != nil {
		return false, err
	}

	_, err = os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func (s *MediaStorage) pathFor(url string) (string, error) {
	filename := strings.TrimPrefix(url, urlPrefix)
	if filename == url || filename == "" || strings.Contains(filename, "/") {
		return "", fmt.Errorf("URL %q is not a stored media file", url)
	}
	return filepath.Join(s.baseDir, filename), nil
}

// safeFilename slugifies the base name while keeping the extension, so
// "Die Shot (1).JPG" becomes "die-shot-1.jpg".
func safeFilename(name string) string {
	base := filepath.Base(name)
	ext := strings.ToLower(filepath.Ext(base))
	stem := util.Slugify(strings.TrimSuffix(base, filepath.Ext(base)))
	if stem == "" {
		return ""
	}
	return stem + ext
}

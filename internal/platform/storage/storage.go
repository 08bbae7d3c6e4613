// Copyright (c) 2026 HeroFlicks. All rights reserved.
// Author: vilian.dp@gmail.com

/*
Package storage places uploaded media files on the local filesystem.

It is the single collaborator the upload workflow talks to for durable file
placement. Files are written BEFORE the enclosing database transaction starts,
so a failed transaction leaves at worst an orphaned file, never a comic row
pointing at a missing file.

Responsibilities:

  - Media-type allow-list (PDF documents and images only).
  - Collision-resistant file naming.
  - Best-effort removal when a comic is deleted.
*/
package storage

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/viliandp/HeroFlicks-BackEnd/internal/platform/apperr"
	"github.com/viliandp/HeroFlicks-BackEnd/pkg/slug"
)

// randomSuffixBytes is the entropy appended to generated file names.
const randomSuffixBytes = 4

// Store writes uploaded files under a base directory.
type Store struct {
	baseDir string
}

// New creates a Store rooted at baseDir, creating the directory if needed.
func New(baseDir string) (*Store, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: failed to create upload dir %s: %w", baseDir, err)
	}
	return &Store{baseDir: baseDir}, nil
}

// BaseDir returns the root directory files are placed under.
func (store *Store) BaseDir() string {
	return store.baseDir
}

// SavePDF validates and places an uploaded PDF document.
// It returns the path relative to the base directory.
func (store *Store) SavePDF(header *multipart.FileHeader) (string, error) {
	if !IsAllowedPDF(header) {
		return "", apperr.UnsupportedMedia("Only PDF files are allowed for the comic document")
	}
	return store.place(header)
}

// SaveImage validates and places an uploaded cover image.
// It returns the path relative to the base directory.
func (store *Store) SaveImage(header *multipart.FileHeader) (string, error) {
	if !IsAllowedImage(header) {
		return "", apperr.UnsupportedMedia("Only image files are allowed for the cover")
	}
	return store.place(header)
}

// Remove deletes a previously placed file. Missing files are not an error,
// deletion is best-effort cleanup.
func (store *Store) Remove(relativePath string) error {
	if relativePath == "" {
		return nil
	}
	fullPath := filepath.Join(store.baseDir, filepath.Base(relativePath))
	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage: failed to remove %s: %w", relativePath, err)
	}
	return nil
}

// Resolve returns the absolute filesystem path for a stored relative path.
// The path is constrained to the base directory to block traversal.
func (store *Store) Resolve(relativePath string) string {
	return filepath.Join(store.baseDir, filepath.Base(relativePath))
}

// place copies the uploaded file to disk under a generated name.
func (store *Store) place(header *multipart.FileHeader) (string, error) {
	source, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("storage: failed to open upload: %w", err)
	}
	defer source.Close()

	fileName := GenerateFileName(header.Filename)
	fullPath := filepath.Join(store.baseDir, fileName)

	destination, err := os.OpenFile(fullPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("storage: failed to create %s: %w", fileName, err)
	}
	defer destination.Close()

	if _, err := io.Copy(destination, source); err != nil {
		// Partial writes are removed so the directory never holds torn files.
		_ = os.Remove(fullPath)
		return "", fmt.Errorf("storage: failed to write %s: %w", fileName, err)
	}

	return fileName, nil
}

// GenerateFileName builds a collision-resistant name from the original:
// sanitized base + millisecond timestamp + random suffix + original extension.
func GenerateFileName(originalName string) string {
	extension := strings.ToLower(filepath.Ext(originalName))
	base := strings.TrimSuffix(filepath.Base(originalName), filepath.Ext(originalName))

	sanitized := slug.From(base)
	if sanitized == "" {
		sanitized = "file"
	}

	return fmt.Sprintf("%s-%d-%s%s", sanitized, time.Now().UnixMilli(), randomHex(randomSuffixBytes), extension)
}

// IsAllowedPDF reports whether the upload declares a PDF content type.
func IsAllowedPDF(header *multipart.FileHeader) bool {
	return mediaType(header) == "application/pdf"
}

// IsAllowedImage reports whether the upload declares an image content type.
func IsAllowedImage(header *multipart.FileHeader) bool {
	return strings.HasPrefix(mediaType(header), "image/")
}

// randomHex returns n random bytes hex-encoded.
func randomHex(n int) string {
	buffer := make([]byte, n)
	_, _ = rand.Read(buffer)
	return hex.EncodeToString(buffer)
}

// mediaType extracts the declared Content-Type without parameters.
func mediaType(header *multipart.FileHeader) string {
	contentType := header.Header.Get("Content-Type")
	if index := strings.IndexByte(contentType, ';'); index >= 0 {
		contentType = contentType[:index]
	}
	return strings.TrimSpace(strings.ToLower(contentType))
}

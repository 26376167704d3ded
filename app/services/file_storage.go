package services

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// UploadedFile is an image binary handed in by a multipart request.
type UploadedFile struct {
	File        io.Reader
	Filename    string
	ContentType string
}

// FileStorage persists uploaded image binaries and returns a path relative to
// its root. Delete is best-effort: it reports whether a file was removed and
// never fails the caller.
type FileStorage interface {
	Store(file *UploadedFile, subDir string) (string, error)
	Delete(relativePath string) bool
}

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

var allowedMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

var allowedSubDirs = map[string]bool{
	"thumbnail": true,
	"detail":    true,
}

type LocalFileStorage struct {
	root string
}

func NewLocalFileStorage(rootDir string) (*LocalFileStorage, error) {
	root, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &LocalFileStorage{root: root}, nil
}

func (s *LocalFileStorage) Store(file *UploadedFile, subDir string) (string, error) {
	if file == nil || file.File == nil {
		return "", nil
	}

	if !allowedSubDirs[subDir] {
		return "", errInvalidUpload(fmt.Sprintf("허용되지 않은 디렉토리입니다: %s", subDir))
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		return "", errInvalidUpload("허용되지 않은 파일 형식입니다. (jpg, jpeg, png, gif, webp만 허용)")
	}

	if !allowedMimeTypes[file.ContentType] {
		return "", errInvalidUpload("허용되지 않은 파일 타입입니다.")
	}

	dirPath := filepath.Join(s.root, subDir)
	if err := os.MkdirAll(dirPath, 0o755); err != nil {
		return "", err
	}

	// Never trust the client-supplied name.
	filename := uuid.New().String() + ext

	target, err := os.Create(filepath.Join(dirPath, filename))
	if err != nil {
		return "", err
	}
	defer target.Close()

	if _, err := io.Copy(target, file.File); err != nil {
		return "", err
	}

	return subDir + "/" + filename, nil
}

func (s *LocalFileStorage) Delete(relativePath string) bool {
	if relativePath == "" {
		return false
	}

	target := filepath.Join(s.root, relativePath)

	// Path traversal guard: the resolved target must stay under the root.
	if !strings.HasPrefix(target, s.root+string(os.PathSeparator)) {
		return false
	}

	if err := os.Remove(target); err != nil {
		return false
	}
	return true
}

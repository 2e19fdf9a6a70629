package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/impactlink/impactlink/internal/pkg/logger"
)

// StoredFile describes a saved upload.
type StoredFile struct {
	// Path is relative to the storage root, e.g. "submissions/<uuid>.pdf"
	Path     string
	URL      string
	Filename string
	Size     int64
	MimeType string
}

// FileStorage defines the interface for file storage operations
type FileStorage interface {
	// Save stores the upload under subDir with a generated name
	Save(fileHeader *multipart.FileHeader, subDir string) (*StoredFile, error)

	// Delete removes a file by its relative path. Missing files are not an error.
	Delete(relPath string) error
}

// LocalStorage handles saving files to the local filesystem.
type LocalStorage struct {
	basePath string // root directory on disk
	baseURL  string // public URL prefix the root is served under
}

// NewLocalStorage creates a new LocalStorage instance, creating basePath if needed.
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{
		basePath: basePath,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}, nil
}

// Save implements FileStorage
func (ls *LocalStorage) Save(fileHeader *multipart.FileHeader, subDir string) (*StoredFile, error) {
	if fileHeader == nil {
		return nil, fmt.Errorf("no file provided")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	subDir = strings.Trim(path.Clean("/"+filepath.ToSlash(subDir)), "/")
	dir := filepath.Join(ls.basePath, filepath.FromSlash(subDir))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create subdirectory: %w", err)
	}

	name := uuid.New().String() + strings.ToLower(filepath.Ext(fileHeader.Filename))
	dstPath := filepath.Join(dir, name)

	dst, err := os.Create(dstPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	size, err := io.Copy(dst, src)
	if err != nil {
		_ = os.Remove(dstPath)
		return nil, fmt.Errorf("failed to save file content: %w", err)
	}

	rel := path.Join(subDir, name)
	stored := &StoredFile{
		Path:     rel,
		URL:      ls.baseURL + "/" + rel,
		Filename: filepath.Base(fileHeader.Filename),
		Size:     size,
		MimeType: fileHeader.Header.Get("Content-Type"),
	}

	logger.Info().Str("filename", stored.Filename).Str("path", rel).Msg("File saved successfully")
	return stored, nil
}

// Delete implements FileStorage
func (ls *LocalStorage) Delete(relPath string) error {
	if relPath == "" {
		return nil
	}

	full, err := ls.resolve(relPath)
	if err != nil {
		return err
	}

	if err := os.Remove(full); err != nil {
		if os.IsNotExist(err) {
			logger.Warn().Str("path", full).Msg("File to delete does not exist")
			return nil
		}
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// resolve maps a relative path onto the storage root, refusing paths that
// would escape it.
func (ls *LocalStorage) resolve(relPath string) (string, error) {
	clean := path.Clean("/" + filepath.ToSlash(relPath))
	if clean == "/" {
		return "", fmt.Errorf("invalid file path: %s", relPath)
	}
	return filepath.Join(ls.basePath, filepath.FromSlash(strings.TrimPrefix(clean, "/"))), nil
}

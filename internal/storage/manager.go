package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/docqanda/backend/internal/models"
)

var (
	// ErrNotFound is returned when no document is stored under a name.
	ErrNotFound = errors.New("file not found")

	// ErrInvalidName is returned for names rejected by name restriction.
	ErrInvalidName = errors.New("invalid file name")
)

// Store defines the interface for document storage.
type Store interface {
	Save(name string, r io.Reader) (*models.DocumentInfo, error)
	Path(name string) (string, error)
	List(limit int) ([]*models.DocumentInfo, error)
}

// LocalStore implements Store on a flat directory of the local filesystem.
// Documents are keyed by the client-supplied name; writes are not locked.
type LocalStore struct {
	uploadDir     string
	restrictNames bool
}

// NewLocalStore creates a new LocalStore. When restrictNames is set, names
// that could escape uploadDir are rejected with ErrInvalidName.
func NewLocalStore(uploadDir string, restrictNames bool) (*LocalStore, error) {
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		return nil, fmt.Errorf("creating upload directory: %w", err)
	}

	return &LocalStore{
		uploadDir:     uploadDir,
		restrictNames: restrictNames,
	}, nil
}

// Dir returns the upload directory.
func (s *LocalStore) Dir() string {
	return s.uploadDir
}

// Save writes r to the document named name, overwriting any previous content.
func (s *LocalStore) Save(name string, r io.Reader) (*models.DocumentInfo, error) {
	path, err := s.resolve(name)
	if err != nil {
		return nil, err
	}

	// The directory may have been removed out of band since startup.
	if err := os.MkdirAll(s.uploadDir, 0755); err != nil {
		return nil, fmt.Errorf("creating upload directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()

	size, err := io.Copy(f, r)
	if err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("writing file: %w", err)
	}

	info := &models.DocumentInfo{
		FileName: name,
		Size:     size,
	}
	if st, err := f.Stat(); err == nil {
		info.ModifiedAt = st.ModTime()
	}

	return info, nil
}

// Path returns the on-disk path of a stored document.
func (s *LocalStore) Path(name string) (string, error) {
	path, err := s.resolve(name)
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return "", fmt.Errorf("checking file: %w", err)
	}

	return path, nil
}

// List returns the most recently modified documents.
func (s *LocalStore) List(limit int) ([]*models.DocumentInfo, error) {
	entries, err := os.ReadDir(s.uploadDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []*models.DocumentInfo{}, nil
		}
		return nil, fmt.Errorf("reading upload directory: %w", err)
	}

	list := make([]*models.DocumentInfo, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		st, err := entry.Info()
		if err != nil {
			continue // removed between ReadDir and Info
		}
		list = append(list, &models.DocumentInfo{
			FileName:   entry.Name(),
			Size:       st.Size(),
			ModifiedAt: st.ModTime(),
		})
	}

	// Sort by ModifiedAt desc
	sort.Slice(list, func(i, j int) bool {
		return list[i].ModifiedAt.After(list[j].ModifiedAt)
	})

	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}

	return list, nil
}

// resolve joins name onto the upload directory. Without name restriction
// the name is used verbatim, so it may point outside the directory.
func (s *LocalStore) resolve(name string) (string, error) {
	if s.restrictNames {
		if err := ValidateName(name); err != nil {
			return "", err
		}
	}
	return filepath.Join(s.uploadDir, name), nil
}

// ValidateName reports whether name is a single, plain path segment.
func ValidateName(name string) error {
	switch {
	case name == "", name == ".", name == "..":
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	case strings.ContainsAny(name, `/\`), strings.ContainsRune(name, 0):
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

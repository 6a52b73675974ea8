// mock_storage.go - Mock storage implementation for testing
package testutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/docqanda/backend/internal/models"
	"github.com/docqanda/backend/internal/storage"
)

// MockStorage implements storage.Store in memory for testing
type MockStorage struct {
	files    map[string]*models.DocumentInfo
	fileData map[string][]byte
	mu       sync.RWMutex

	// SaveErr, when set, is returned by every Save call.
	SaveErr error
}

// NewMockStorage creates a new empty mock storage
func NewMockStorage() *MockStorage {
	return &MockStorage{
		files:    make(map[string]*models.DocumentInfo),
		fileData: make(map[string][]byte),
	}
}

func (m *MockStorage) Save(name string, r io.Reader) (*models.DocumentInfo, error) {
	if m.SaveErr != nil {
		return nil, m.SaveErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return m.AddFile(name, data), nil
}

func (m *MockStorage) Path(name string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if _, ok := m.files[name]; !ok {
		return "", fmt.Errorf("%w: %s", storage.ErrNotFound, name)
	}
	return "/mock/path/" + name, nil
}

func (m *MockStorage) List(limit int) ([]*models.DocumentInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	files := make([]*models.DocumentInfo, 0, len(m.files))
	for _, file := range m.files {
		files = append(files, file)
	}
	sort.Slice(files, func(i, j int) bool {
		return files[i].ModifiedAt.After(files[j].ModifiedAt)
	})
	if limit > 0 && len(files) > limit {
		files = files[:limit]
	}
	return files, nil
}

// Ensure MockStorage implements storage.Store
var _ storage.Store = (*MockStorage)(nil)

// Test Helper Methods

// AddFile stores data under name, replacing any previous content
func (m *MockStorage) AddFile(name string, data []byte) *models.DocumentInfo {
	m.mu.Lock()
	defer m.mu.Unlock()

	file := &models.DocumentInfo{
		FileName:   name,
		Size:       int64(len(data)),
		ModifiedAt: time.Now(),
	}
	m.files[name] = file
	m.fileData[name] = data
	return file
}

// GetFileData returns the file content
func (m *MockStorage) GetFileData(name string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.fileData[name]
	return data, ok
}

// GetFileCount returns the number of stored files
func (m *MockStorage) GetFileCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.files)
}

// MockStorageWithTempDir is a mock storage that actually writes files to disk.
// Use it where the code under test reads the returned path.
type MockStorageWithTempDir struct {
	*MockStorage
	tempDir string
}

// NewMockStorageWithTempDir creates a mock storage backed by tempDir
func NewMockStorageWithTempDir(tempDir string) *MockStorageWithTempDir {
	return &MockStorageWithTempDir{
		MockStorage: NewMockStorage(),
		tempDir:     tempDir,
	}
}

func (m *MockStorageWithTempDir) Save(name string, r io.Reader) (*models.DocumentInfo, error) {
	if m.SaveErr != nil {
		return nil, m.SaveErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return m.AddFile(name, data), nil
}

// AddFile writes the file to disk and adds it to the mock
func (m *MockStorageWithTempDir) AddFile(name string, data []byte) *models.DocumentInfo {
	if err := os.WriteFile(filepath.Join(m.tempDir, name), data, 0644); err != nil {
		panic(fmt.Sprintf("failed to write test file: %v", err))
	}
	return m.MockStorage.AddFile(name, data)
}

// Path returns the actual file path on disk
func (m *MockStorageWithTempDir) Path(name string) (string, error) {
	if _, err := m.MockStorage.Path(name); err != nil {
		return "", err
	}
	return filepath.Join(m.tempDir, name), nil
}

var _ storage.Store = (*MockStorageWithTempDir)(nil)

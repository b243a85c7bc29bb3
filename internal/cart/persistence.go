package cart

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/luxebeaute/storefront/internal/domain"
)

// Persistence is the durable backing store for one cart. Implementations
// must treat Save as a full replacement of the item list.
type Persistence interface {
	// Load restores the persisted item list. A missing backing entry yields
	// an empty list, not an error; corrupt data yields an error which
	// callers degrade to an empty cart.
	Load() ([]domain.CartItem, error)

	// Save serializes the complete item list.
	Save(items []domain.CartItem) error
}

// storageKey mirrors the web client's fixed persistence key.
const storageKey = "cart-storage"

// cartFile is the on-disk JSON envelope.
type cartFile struct {
	Key   string            `json:"key"`
	Items []domain.CartItem `json:"items"`
}

// FileStore persists a cart as a JSON file. One file per session.
type FileStore struct {
	path string
}

// NewFileStore creates a file-backed persistence at dir/<session>.json.
// The session ID must be a plain name: anything that would resolve outside
// dir is rejected so a forged ID can never reach another path.
func NewFileStore(dir, sessionID string) (*FileStore, error) {
	if sessionID == "" || sessionID != filepath.Base(sessionID) {
		return nil, fmt.Errorf("invalid cart session id: %q", sessionID)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cart directory: %w", err)
	}
	return &FileStore{path: filepath.Join(dir, sessionID+".json")}, nil
}

func (f *FileStore) Load() ([]domain.CartItem, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cart file: %w", err)
	}

	var file cartFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to decode cart file: %w", err)
	}

	return file.Items, nil
}

func (f *FileStore) Save(items []domain.CartItem) error {
	data, err := json.Marshal(cartFile{Key: storageKey, Items: items})
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}

	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write cart file: %w", err)
	}
	return nil
}

// MemoryStore is an in-memory Persistence for tests and ephemeral sessions.
type MemoryStore struct {
	data []byte
}

// NewMemoryStore creates an empty in-memory persistence.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// SetRaw seeds the store with raw bytes, letting tests inject malformed data.
func (m *MemoryStore) SetRaw(data []byte) {
	m.data = data
}

func (m *MemoryStore) Load() ([]domain.CartItem, error) {
	if m.data == nil {
		return nil, nil
	}

	var file cartFile
	if err := json.Unmarshal(m.data, &file); err != nil {
		return nil, fmt.Errorf("failed to decode cart: %w", err)
	}
	return file.Items, nil
}

func (m *MemoryStore) Save(items []domain.CartItem) error {
	data, err := json.Marshal(cartFile{Key: storageKey, Items: items})
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	m.data = data
	return nil
}

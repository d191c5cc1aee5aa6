// Package session persists tour state between runs of the host application.
// Blobs are stored per tour name in the platform application-data directory
// via gdata; a map-backed store is available for tests and for hosts that do
// not want anything written to disk.
package session

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
)

// tour blobs live under one storage object, keyed by tour name
const storageObject = "tours"

// Store is the persistence capability the tour consumes.
// Last write wins; there is no locking discipline.
type Store interface {
	Save(name string, data []byte) error
	Load(name string) ([]byte, error)
}

// GdataStore keeps blobs in the platform app-data directory.
type GdataStore struct {
	m *gdata.Manager
}

// Open creates a store rooted at the app-data directory for appName.
func Open(appName string) (*GdataStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("failed to open session storage: %w", err)
	}
	return &GdataStore{m: m}, nil
}

// Save writes the blob for a tour name, replacing any previous one.
func (s *GdataStore) Save(name string, data []byte) error {
	if err := s.m.SaveObjectProp(storageObject, name, data); err != nil {
		return fmt.Errorf("failed to save tour %q: %w", name, err)
	}
	return nil
}

// Load returns the blob saved under a tour name.
func (s *GdataStore) Load(name string) ([]byte, error) {
	if !s.m.ObjectPropExists(storageObject, name) {
		return nil, fmt.Errorf("no saved tour %q", name)
	}
	data, err := s.m.LoadObjectProp(storageObject, name)
	if err != nil {
		return nil, fmt.Errorf("failed to load tour %q: %w", name, err)
	}
	return data, nil
}

// MemoryStore is an in-memory Store.
type MemoryStore struct {
	blobs map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

// Save keeps a copy of the blob under the tour name.
func (s *MemoryStore) Save(name string, data []byte) error {
	s.blobs[name] = append([]byte(nil), data...)
	return nil
}

// Load returns the blob saved under the tour name.
func (s *MemoryStore) Load(name string) ([]byte, error) {
	data, ok := s.blobs[name]
	if !ok {
		return nil, fmt.Errorf("no saved tour %q", name)
	}
	return append([]byte(nil), data...), nil
}

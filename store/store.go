// Package store persists named record collections as JSON files on disk.
// Each collection has its own mutex, held across the whole
// load-modify-save span so concurrent writers cannot lose updates.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

type Store struct {
	dataDir string

	mu    sync.Mutex // guards locks
	locks map[string]*sync.Mutex
}

// New initializes a store rooted at dataDir, creating it if needed.
func New(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, err
	}
	return &Store{
		dataDir: dataDir,
		locks:   make(map[string]*sync.Mutex),
	}, nil
}

func (s *Store) lock(collection string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.locks[collection]
	if !ok {
		l = &sync.Mutex{}
		s.locks[collection] = l
	}
	return l
}

func (s *Store) path(collection string) string {
	return filepath.Join(s.dataDir, collection+".json")
}

// Init seeds a collection if its file does not exist yet. An existing
// collection is never overwritten.
func (s *Store) Init(collection string, seed any) error {
	l := s.lock(collection)
	l.Lock()
	defer l.Unlock()

	if _, err := os.Stat(s.path(collection)); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	return s.writeFile(collection, seed)
}

// Load reads the whole collection into out under the collection lock.
func (s *Store) Load(collection string, out any) error {
	l := s.lock(collection)
	l.Lock()
	defer l.Unlock()
	return s.readFile(collection, out)
}

// Save overwrites the whole collection under the collection lock.
func (s *Store) Save(collection string, v any) error {
	l := s.lock(collection)
	l.Lock()
	defer l.Unlock()
	return s.writeFile(collection, v)
}

// Update runs fn while holding the collection lock. fn loads, mutates
// and saves through the Tx; returning an error aborts without saving.
func (s *Store) Update(collection string, fn func(tx *Tx) error) error {
	l := s.lock(collection)
	l.Lock()
	defer l.Unlock()
	return fn(&Tx{s: s, collection: collection})
}

// Tx is a handle to a collection while its lock is held.
type Tx struct {
	s          *Store
	collection string
}

func (tx *Tx) Load(out any) error {
	return tx.s.readFile(tx.collection, out)
}

func (tx *Tx) Save(v any) error {
	return tx.s.writeFile(tx.collection, v)
}

func (s *Store) readFile(collection string, out any) error {
	content, err := os.ReadFile(s.path(collection))
	if err != nil {
		return err
	}
	return json.Unmarshal(content, out)
}

func (s *Store) writeFile(collection string, v any) error {
	bytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	// Write to a temporary file first, then rename. The rename is
	// atomic, so a crash leaves either the old file or the new one.
	filePath := s.path(collection)
	tempPath := filePath + ".tmp"
	if err := os.WriteFile(tempPath, bytes, 0644); err != nil {
		return err
	}
	return os.Rename(tempPath, filePath)
}

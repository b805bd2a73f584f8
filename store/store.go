// store/store.go
package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
)

// Store reads and writes named JSON documents under a single data
// directory. Every read re-parses the document from disk; there is no
// caching layer. Writes replace the whole document, so the last completed
// write wins. A per-document mutex keeps concurrent saves to the same
// document from interleaving.
type Store struct {
	dir string
	log *logrus.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New returns a Store rooted at dir. The directory is created lazily on
// first access.
func New(dir string, log *logrus.Logger) *Store {
	return &Store{
		dir:   dir,
		log:   log,
		locks: make(map[string]*sync.Mutex),
	}
}

// Dir returns the data directory the store writes under.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) lockFor(name string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[name]
	if !ok {
		l = &sync.Mutex{}
		s.locks[name] = l
	}
	return l
}

func (s *Store) write(name string, value any) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, name), data, 0o644)
}

// Load returns the parsed contents of the named document. A missing
// document is created with defaultValue (persisting it). An unreadable or
// malformed document fails soft: the condition is logged and defaultValue
// is returned without touching the file.
func Load[T any](s *Store, name string, defaultValue T) T {
	l := s.lockFor(name)
	l.Lock()
	defer l.Unlock()

	path := filepath.Join(s.dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			if werr := s.write(name, defaultValue); werr != nil {
				s.log.WithError(werr).WithField("document", name).Warn("failed to seed document")
			}
			return defaultValue
		}
		s.log.WithError(err).WithField("document", name).Warn("failed to read document")
		return defaultValue
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		s.log.WithError(err).WithField("document", name).Warn("failed to parse document")
		return defaultValue
	}
	return value
}

// Save serializes value as indented JSON and overwrites the named document
// in full.
func Save[T any](s *Store, name string, value T) error {
	l := s.lockFor(name)
	l.Lock()
	defer l.Unlock()
	return s.write(name, value)
}

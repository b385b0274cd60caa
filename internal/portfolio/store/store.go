// Package store persists the portfolio document as a single JSON file.
//
// The file has exactly three top-level keys (custom_projects,
// github_metadata, project_galleries), matching the layout of existing
// portfolio_data.json files. Every mutation rewrites the whole document.
package store

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/rudirimachado/portfolio-backend/internal/portfolio/domain"
)

// Store is the narrow persistence interface the services depend on, so the
// whole-document strategy can later be swapped without touching them.
type Store interface {
	Load() *domain.Document
	Save(doc *domain.Document) error
	Update(fn func(doc *domain.Document) error) error
}

// FileStore reads and writes one JSON document on disk. A mutex serializes
// Update calls, so concurrent admin mutations cannot lose each other's
// writes within this process.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a store backed by the given file path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the document. A missing or unreadable file yields a fresh empty
// document; the store is self-healing at the cost of discarding unreadable
// data.
func (s *FileStore) Load() *domain.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *FileStore) load() *domain.Document {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return domain.NewDocument()
	}

	var doc domain.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		log.Printf("[warn] store: unreadable document at %s, starting fresh: %v", s.path, err)
		return domain.NewDocument()
	}

	// Older files may omit a collection entirely.
	if doc.CustomProjects == nil {
		doc.CustomProjects = []domain.CustomProject{}
	}
	if doc.Overrides == nil {
		doc.Overrides = map[string]domain.Override{}
	}
	if doc.Galleries == nil {
		doc.Galleries = map[string]domain.Gallery{}
	}
	return &doc
}

// Save overwrites the document on disk.
func (s *FileStore) Save(doc *domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(doc)
}

func (s *FileStore) save(doc *domain.Document) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}

// Update runs fn over the current document and persists the result, holding
// the lock across the whole read-modify-write. If fn returns an error the
// document is left untouched.
func (s *FileStore) Update(fn func(doc *domain.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.load()
	if err := fn(doc); err != nil {
		return err
	}
	return s.save(doc)
}

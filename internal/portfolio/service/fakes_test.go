package service

import (
	"context"

	"github.com/rudirimachado/portfolio-backend/internal/portfolio/domain"
)

// memStore is an in-memory store double for service tests.
type memStore struct {
	doc     *domain.Document
	saveErr error
	saves   int
}

func newMemStore() *memStore {
	return &memStore{doc: domain.NewDocument()}
}

func (m *memStore) Load() *domain.Document { return m.doc }

func (m *memStore) Save(doc *domain.Document) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.doc = doc
	m.saves++
	return nil
}

func (m *memStore) Update(fn func(doc *domain.Document) error) error {
	if err := fn(m.doc); err != nil {
		return err
	}
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	return nil
}

// fakeSource returns a canned GitHub snapshot, or panics to exercise the
// aggregation boundary.
type fakeSource struct {
	profile domain.Profile
	repos   []domain.Repository
	panics  bool
}

func (f *fakeSource) FetchProfileAndRepos(_ context.Context, _ string) (domain.Profile, []domain.Repository) {
	if f.panics {
		panic("remote source blew up")
	}
	return f.profile, f.repos
}

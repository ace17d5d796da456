package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/okian/activities/internal/domain/model"
	"github.com/okian/activities/pkg/metrics"
)

// RegistryStore is the in-memory Store. A single RWMutex serializes
// mutations so the membership check and the append/remove are atomic.
type RegistryStore struct {
	mu              sync.RWMutex
	byName          map[string]model.Activity
	order           []string
	enforceCapacity bool
}

var _ Store = (*RegistryStore)(nil)

// NewRegistryStore builds a store owning a deep copy of seed. Seed order is
// alphabetical since the catalog is a map.
func NewRegistryStore(_ context.Context, seed model.Catalog, opts ...Option) *RegistryStore {
	s := &RegistryStore{
		byName: make(map[string]model.Activity, len(seed)),
		order:  make([]string, 0, len(seed)),
	}
	for _, opt := range opts {
		opt(s)
	}

	for name, a := range seed.Clone() {
		s.byName[name] = a
		s.order = append(s.order, name)
	}
	sort.Strings(s.order)

	metrics.UpdateActivitiesTotal(len(s.order))
	for name, a := range s.byName {
		metrics.UpdateActivityParticipants(name, len(a.Participants))
	}
	return s
}

// List implements Store.List.
func (s *RegistryStore) List(_ context.Context) model.Catalog {
	start := time.Now()
	defer observeQuery(start)

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(model.Catalog, len(s.byName))
	for name, a := range s.byName {
		out[name] = a.Clone()
	}
	return out
}

// Get implements Store.Get.
func (s *RegistryStore) Get(_ context.Context, name string) (model.Activity, error) {
	start := time.Now()
	defer observeQuery(start)

	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.byName[name]
	if !ok {
		metrics.RecordErrorByComponent("repository", "not_found")
		return model.Activity{}, fmt.Errorf("%w: %q", ErrActivityNotFound, name)
	}
	return a.Clone(), nil
}

// Signup implements Store.Signup.
func (s *RegistryStore) Signup(_ context.Context, name, email string) (model.Activity, error) {
	start := time.Now()
	defer observeUpdate(start)

	s.mu.Lock()
	a, ok := s.byName[name]
	switch {
	case !ok:
		s.mu.Unlock()
		metrics.RecordErrorByComponent("repository", "not_found")
		return model.Activity{}, fmt.Errorf("%w: %q", ErrActivityNotFound, name)
	case a.HasParticipant(email):
		s.mu.Unlock()
		return model.Activity{}, fmt.Errorf("%w: %s in %q", ErrAlreadySignedUp, email, name)
	case s.enforceCapacity && a.IsFull():
		s.mu.Unlock()
		return model.Activity{}, fmt.Errorf("%w: %q has %d/%d participants", ErrActivityFull, name, len(a.Participants), a.MaxParticipants)
	}

	updated := a.Clone()
	updated.Participants = append(updated.Participants, email)
	s.byName[name] = updated
	count := len(updated.Participants)
	s.mu.Unlock()

	metrics.UpdateActivityParticipants(name, count)
	return updated.Clone(), nil
}

// Unregister implements Store.Unregister.
func (s *RegistryStore) Unregister(_ context.Context, name, email string) (model.Activity, error) {
	start := time.Now()
	defer observeUpdate(start)

	s.mu.Lock()
	a, ok := s.byName[name]
	switch {
	case !ok:
		s.mu.Unlock()
		metrics.RecordErrorByComponent("repository", "not_found")
		return model.Activity{}, fmt.Errorf("%w: %q", ErrActivityNotFound, name)
	case !a.HasParticipant(email):
		s.mu.Unlock()
		return model.Activity{}, fmt.Errorf("%w: %s in %q", ErrNotSignedUp, email, name)
	}

	updated := a.WithoutParticipant(email)
	s.byName[name] = updated
	count := len(updated.Participants)
	s.mu.Unlock()

	metrics.UpdateActivityParticipants(name, count)
	return updated.Clone(), nil
}

// Count implements Store.Count.
func (s *RegistryStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byName)
}

// Names implements Store.Names.
func (s *RegistryStore) Names(_ context.Context) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

func observeQuery(start time.Time) {
	metrics.RecordRepositoryQueryLatency(float64(time.Since(start).Microseconds()) / 1000)
}

func observeUpdate(start time.Time) {
	metrics.RecordRepositoryUpdateLatency(float64(time.Since(start).Microseconds()) / 1000)
}

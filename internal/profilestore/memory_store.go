package profilestore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/huangsam/teamdisc/internal/contract"
	"github.com/huangsam/teamdisc/schema"
)

// MemoryStore keeps profiles in process memory. It backs the memory backend and tests.
type MemoryStore struct {
	mu       sync.RWMutex
	profiles map[string]schema.Profile
	order    []string
}

var _ contract.ProfileRepository = &MemoryStore{} // Compile-time check

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{profiles: make(map[string]schema.Profile)}
}

// CreateProfile stores a copy of p.
func (m *MemoryStore) CreateProfile(_ context.Context, p schema.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.profiles[p.ID]; ok {
		return fmt.Errorf("%w: %s", contract.ErrDuplicateProfile, p.ID)
	}
	m.profiles[p.ID] = cloneProfile(p)
	m.order = append(m.order, p.ID)
	return nil
}

// GetProfile returns a copy of the stored profile.
func (m *MemoryStore) GetProfile(_ context.Context, id string) (schema.Profile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.profiles[id]
	if !ok {
		return schema.Profile{}, fmt.Errorf("%w: %s", contract.ErrProfileNotFound, id)
	}
	return cloneProfile(p), nil
}

// ListProfiles returns copies of the matching profiles ordered by createdAt then id.
func (m *MemoryStore) ListProfiles(_ context.Context, filter schema.ProfileFilter) ([]schema.Profile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]schema.Profile, 0, len(m.order))
	for _, id := range m.order {
		if p := m.profiles[id]; filter.Matches(p) {
			out = append(out, cloneProfile(p))
		}
	}
	sortProfiles(out)
	return out, nil
}

// Revision returns the profile count and the latest createdAt.
func (m *MemoryStore) Revision(_ context.Context) (schema.StoreRevision, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rev := schema.StoreRevision{Count: int64(len(m.order))}
	for _, p := range m.profiles {
		if p.CreatedAt.After(rev.LatestAt) {
			rev.LatestAt = p.CreatedAt
		}
	}
	return rev, nil
}

// GetStatus returns status information about the in-memory store.
func (m *MemoryStore) GetStatus() (schema.StoreStatus, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	status := schema.StoreStatus{
		Backend:       string(schema.MemoryBackend),
		Connected:     true,
		Target:        "process memory",
		TotalProfiles: int64(len(m.order)),
	}
	depts := make(map[string]struct{})
	for _, p := range m.profiles {
		depts[schema.NormalizeDepartment(p.Department)] = struct{}{}
		if status.OldestProfileAt.IsZero() || p.CreatedAt.Before(status.OldestProfileAt) {
			status.OldestProfileAt = p.CreatedAt
		}
		if p.CreatedAt.After(status.LatestProfileAt) {
			status.LatestProfileAt = p.CreatedAt
		}
	}
	status.Departments = int64(len(depts))
	return status, nil
}

// Clear removes every profile.
func (m *MemoryStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles = make(map[string]schema.Profile)
	m.order = nil
}

// Close is a no-op.
func (m *MemoryStore) Close() error { return nil }

// sortProfiles orders profiles by createdAt then id.
func sortProfiles(profiles []schema.Profile) {
	sort.SliceStable(profiles, func(i, j int) bool {
		a, b := profiles[i], profiles[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})
}

// cloneProfile copies the pointer fields so stored profiles cannot be changed by callers.
func cloneProfile(p schema.Profile) schema.Profile {
	if p.Natural != nil {
		v := *p.Natural
		p.Natural = &v
	}
	if p.Adaptive != nil {
		v := *p.Adaptive
		p.Adaptive = &v
	}
	if p.DrivingForces != nil {
		v := *p.DrivingForces
		p.DrivingForces = &v
	}
	return p
}

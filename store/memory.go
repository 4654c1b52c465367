// path: store/memory.go
package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"lostid/models"
)

// Memory is an in-memory ReportStore/UserStore with the same contract as the
// Mongo implementation, including id-number uniqueness on insert. Used in
// tests and local runs without a database.
type Memory struct {
	mu       sync.RWMutex
	reports  []models.LostIDReport
	byNumber map[string]struct{}
	users    map[string]models.User
}

func NewMemory() *Memory {
	return &Memory{
		byNumber: make(map[string]struct{}),
		users:    make(map[string]models.User),
	}
}

func (s *Memory) Insert(_ context.Context, r *models.LostIDReport) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byNumber[r.IDNumber]; exists {
		return "", ErrDuplicateIDNumber
	}
	rec := *r
	rec.ID = uuid.NewString()
	s.reports = append(s.reports, rec)
	s.byNumber[rec.IDNumber] = struct{}{}
	r.ID = rec.ID
	return rec.ID, nil
}

func (s *Memory) HasReport(_ context.Context, idNumber string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.byNumber[idNumber]
	return ok, nil
}

func (s *Memory) List(_ context.Context, q ListQuery) ([]models.LostIDReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.LostIDReport, 0, len(s.reports))
	term := strings.ToLower(q.Search)
	for _, r := range s.reports {
		if term != "" &&
			!strings.Contains(strings.ToLower(r.Name), term) &&
			!strings.Contains(r.IDNumber, q.Search) {
			continue
		}
		out = append(out, r)
	}
	// newest first, matching the Mongo sort
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func (s *Memory) Count(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.reports)), nil
}

func (s *Memory) Upsert(_ context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = *u
	return nil
}

func (s *Memory) Get(_ context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := u
	return &out, nil
}

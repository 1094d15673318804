package memory

import (
	"context"
	"sync"
	"time"

	"github.com/BharatAnkh/borrower-insight-hub/internal/domain/model"
	"github.com/BharatAnkh/borrower-insight-hub/internal/domain/valueobject"
)

type storedSubmission struct {
	sub       model.PendingSubmission
	expiresAt time.Time
}

// SubmissionStore implements port.SubmissionStore with a TTL per entry.
// Expired entries are dropped lazily on access.
type SubmissionStore struct {
	mu    sync.Mutex
	items map[string]storedSubmission
	ttl   time.Duration
	now   func() time.Time
}

// NewSubmissionStore returns a store whose entries live for ttl after their
// last save. A non-positive ttl keeps entries forever.
func NewSubmissionStore(ttl time.Duration) *SubmissionStore {
	return &SubmissionStore{
		items: make(map[string]storedSubmission),
		ttl:   ttl,
		now:   time.Now,
	}
}

func (s *SubmissionStore) Save(_ context.Context, sub model.PendingSubmission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.put(sub)
	return nil
}

func (s *SubmissionStore) put(sub model.PendingSubmission) {
	var expiresAt time.Time
	if s.ttl > 0 {
		expiresAt = s.now().Add(s.ttl)
	}
	s.items[sub.Handle()] = storedSubmission{sub: sub.ClearEvents(), expiresAt: expiresAt}
}

func (s *SubmissionStore) Find(_ context.Context, handle string) (model.PendingSubmission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.live(handle)
}

// Update swaps in sub only if the stored status is still expected. The check
// and the write happen under one lock.
func (s *SubmissionStore) Update(_ context.Context, sub model.PendingSubmission, expected valueobject.SubmissionStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.live(sub.Handle())
	if err != nil {
		return err
	}
	if !current.Status().Equal(expected) {
		return valueobject.ErrInvalidStatusTransition
	}
	s.put(sub)
	return nil
}

// live returns the unexpired entry for handle. Callers hold mu.
func (s *SubmissionStore) live(handle string) (model.PendingSubmission, error) {
	item, ok := s.items[handle]
	if !ok {
		return model.PendingSubmission{}, valueobject.ErrSubmissionNotFound
	}
	if !item.expiresAt.IsZero() && !s.now().Before(item.expiresAt) {
		delete(s.items, handle)
		return model.PendingSubmission{}, valueobject.ErrSubmissionNotFound
	}
	return item.sub, nil
}

// Len reports the number of live entries.
func (s *SubmissionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	now := s.now()
	for _, item := range s.items {
		if item.expiresAt.IsZero() || now.Before(item.expiresAt) {
			n++
		}
	}
	return n
}

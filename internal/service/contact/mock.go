package contact

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MockService implements Service in memory for unit tests.
type MockService struct {
	mu          sync.RWMutex
	submissions map[string]*Submission

	// Err, when set, is returned by every operation to simulate an
	// unreachable store.
	Err error

	// NowFunc overrides the creation timestamp source, letting tests
	// control listing order.
	NowFunc func() time.Time
}

// NewMockService creates an empty mock service.
func NewMockService() *MockService {
	return &MockService{
		submissions: make(map[string]*Submission),
	}
}

func (m *MockService) now() time.Time {
	if m.NowFunc != nil {
		return m.NowFunc()
	}
	return time.Now().UTC()
}

func (m *MockService) Create(_ context.Context, params CreateParams) (*Submission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}

	sub := &Submission{
		ID:        uuid.NewString(),
		Name:      params.Name,
		Email:     params.Email,
		Company:   params.Company,
		Message:   params.Message,
		CreatedAt: m.now(),
		Source:    Source,
		Status:    StatusNew,
		IPAddress: params.IPAddress,
		UserAgent: params.UserAgent,
	}
	m.submissions[sub.ID] = sub

	cp := *sub
	return &cp, nil
}

func (m *MockService) List(_ context.Context, limit int) ([]Submission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.Err != nil {
		return nil, m.Err
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}

	subs := make([]Submission, 0, len(m.submissions))
	for _, sub := range m.submissions {
		subs = append(subs, *sub)
	}
	sort.Slice(subs, func(i, j int) bool {
		return subs[i].CreatedAt.After(subs[j].CreatedAt)
	})
	if len(subs) > limit {
		subs = subs[:limit]
	}
	return subs, nil
}

func (m *MockService) UpdateStatus(_ context.Context, id string, status Status) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}
	if !status.Valid() {
		return ErrInvalidStatus
	}
	sub, exists := m.submissions[id]
	if !exists {
		return ErrNotFound
	}
	sub.Status = status
	return nil
}

// Get returns a stored submission by id (test helper).
func (m *MockService) Get(id string) (*Submission, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sub, exists := m.submissions[id]
	if !exists {
		return nil, false
	}
	cp := *sub
	return &cp, true
}

// Clear removes all submissions (useful for test cleanup).
func (m *MockService) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.submissions = make(map[string]*Submission)
}

// Compile-time interface check
var _ Service = (*MockService)(nil)

package portfolio

import (
	"context"
	"sync"
)

// MockService implements Service in memory for unit tests.
type MockService struct {
	mu        sync.RWMutex
	portfolio *Portfolio

	// Err, when set, is returned by every operation to simulate an
	// unreachable store.
	Err error
}

// NewMockService creates an empty mock service.
func NewMockService() *MockService {
	return &MockService{}
}

func (m *MockService) Get(_ context.Context) (*Portfolio, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.Err != nil {
		return nil, m.Err
	}
	if m.portfolio == nil {
		return nil, ErrNotFound
	}
	p := *m.portfolio
	return &p, nil
}

func (m *MockService) Upsert(_ context.Context, p *Portfolio) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}
	cp := *p
	m.portfolio = &cp
	return nil
}

// Clear removes the stored portfolio (useful for test cleanup).
func (m *MockService) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.portfolio = nil
}

// Compile-time interface check
var _ Service = (*MockService)(nil)

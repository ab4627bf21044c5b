package analytics

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MockService implements Service in memory for unit tests.
type MockService struct {
	mu           sync.RWMutex
	views        []PageView
	contactTimes []time.Time

	// Err, when set, is returned by every operation to simulate an
	// unreachable store.
	Err error

	// NowFunc overrides the timestamp source for deterministic windows.
	NowFunc func() time.Time
}

// NewMockService creates an empty mock service.
func NewMockService() *MockService {
	return &MockService{}
}

func (m *MockService) now() time.Time {
	if m.NowFunc != nil {
		return m.NowFunc()
	}
	return time.Now().UTC()
}

func (m *MockService) Record(_ context.Context, params RecordParams) (*PageView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}

	pv := PageView{
		ID:        uuid.NewString(),
		Page:      params.Page,
		CreatedAt: m.now(),
		IPAddress: params.IPAddress,
		UserAgent: params.UserAgent,
		Referrer:  params.Referrer,
	}
	m.views = append(m.views, pv)

	cp := pv
	return &cp, nil
}

func (m *MockService) Summarize(_ context.Context, days int) (*Summary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.Err != nil {
		return nil, m.Err
	}
	if days <= 0 {
		days = DefaultWindowDays
	}
	cutoff := m.now().AddDate(0, 0, -days)

	counts := make(map[string]int64)
	var totalViews int64
	for _, pv := range m.views {
		if pv.CreatedAt.Before(cutoff) {
			continue
		}
		totalViews++
		counts[pv.Page]++
	}

	var totalContacts int64
	for _, t := range m.contactTimes {
		if !t.Before(cutoff) {
			totalContacts++
		}
	}

	return &Summary{
		TotalViews:    totalViews,
		TotalContacts: totalContacts,
		TopPages:      rankPages(counts),
		Period:        fmt.Sprintf("Last %d days", days),
	}, nil
}

// AddView injects a view with an explicit timestamp (test helper).
func (m *MockService) AddView(page string, at time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.views = append(m.views, PageView{
		ID:        uuid.NewString(),
		Page:      page,
		CreatedAt: at,
	})
}

// AddContact injects a contact submission timestamp (test helper).
func (m *MockService) AddContact(at time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.contactTimes = append(m.contactTimes, at)
}

// Clear removes all recorded activity (useful for test cleanup).
func (m *MockService) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.views = nil
	m.contactTimes = nil
}

// Compile-time interface check
var _ Service = (*MockService)(nil)

package analytics

import (
	"context"
	"time"
)

// PageView is one recorded visit. Immutable once stored; only aggregated.
type PageView struct {
	ID        string
	Page      string
	CreatedAt time.Time
	IPAddress string
	UserAgent string
	Referrer  string
}

// RecordParams for logging a page view. Page and Referrer come from the
// client; IPAddress and UserAgent are captured by the HTTP boundary.
type RecordParams struct {
	Page      string
	Referrer  string
	IPAddress string
	UserAgent string
}

// PageCount is one entry in the top-pages ranking.
type PageCount struct {
	Page  string
	Views int64
}

// Summary aggregates activity over a trailing day window.
type Summary struct {
	TotalViews    int64
	TotalContacts int64
	TopPages      []PageCount
	Period        string
}

const (
	// DefaultWindowDays is the summary window when the caller does not
	// ask for one.
	DefaultWindowDays = 30

	// TopPagesLimit caps the top-pages ranking.
	TopPagesLimit = 10
)

// Service defines analytics operations. Summarize counts page views and
// contact submissions created inside the window and ranks pages by view
// count descending.
type Service interface {
	Record(ctx context.Context, params RecordParams) (*PageView, error)
	Summarize(ctx context.Context, days int) (*Summary, error)
}

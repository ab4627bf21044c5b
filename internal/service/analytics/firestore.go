package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/firestore/apiv1/firestorepb"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"github.com/sudhanshu-jha/portfolio-api/internal/middleware"
	"github.com/sudhanshu-jha/portfolio-api/internal/service/contact"
)

const pageViewCollection = "page_views"

// firestorePageView maps a PageView to the stored document structure. The
// document key carries the id.
type firestorePageView struct {
	Page      string    `firestore:"page"`
	CreatedAt time.Time `firestore:"createdAt"`
	IPAddress string    `firestore:"ipAddress"`
	UserAgent string    `firestore:"userAgent"`
	Referrer  string    `firestore:"referrer"`
}

// FirestoreStore implements Service backed by Cloud Firestore.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore creates a new Firestore-backed store.
func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

// Record stores one page view under a generated id.
func (s *FirestoreStore) Record(ctx context.Context, params RecordParams) (*PageView, error) {
	pv := &PageView{
		ID:        uuid.NewString(),
		Page:      params.Page,
		CreatedAt: time.Now().UTC(),
		IPAddress: params.IPAddress,
		UserAgent: params.UserAgent,
		Referrer:  params.Referrer,
	}

	_, err := s.client.Collection(pageViewCollection).Doc(pv.ID).Create(ctx, &firestorePageView{
		Page:      pv.Page,
		CreatedAt: pv.CreatedAt,
		IPAddress: pv.IPAddress,
		UserAgent: pv.UserAgent,
		Referrer:  pv.Referrer,
	})
	if err != nil {
		middleware.LogError(ctx, "record page view failed", err)
		return nil, fmt.Errorf("record page view: %w", err)
	}
	return pv, nil
}

// Summarize aggregates page views and contact submissions created on or
// after now minus the day window. Counting runs server-side; the top-pages
// ranking reads only the page field of views inside the window and tallies
// in memory, since Firestore has no group-by aggregation.
func (s *FirestoreStore) Summarize(ctx context.Context, days int) (*Summary, error) {
	if days <= 0 {
		days = DefaultWindowDays
	}
	cutoff := time.Now().UTC().AddDate(0, 0, -days)

	totalViews, err := s.countSince(ctx, pageViewCollection, cutoff)
	if err != nil {
		middleware.LogError(ctx, "count page views failed", err)
		return nil, fmt.Errorf("count page views: %w", err)
	}

	totalContacts, err := s.countSince(ctx, contact.Collection, cutoff)
	if err != nil {
		middleware.LogError(ctx, "count contact submissions failed", err)
		return nil, fmt.Errorf("count submissions: %w", err)
	}

	topPages, err := s.topPages(ctx, cutoff)
	if err != nil {
		middleware.LogError(ctx, "rank top pages failed", err)
		return nil, fmt.Errorf("rank top pages: %w", err)
	}

	return &Summary{
		TotalViews:    totalViews,
		TotalContacts: totalContacts,
		TopPages:      topPages,
		Period:        fmt.Sprintf("Last %d days", days),
	}, nil
}

func (s *FirestoreStore) countSince(ctx context.Context, collection string, cutoff time.Time) (int64, error) {
	query := s.client.Collection(collection).
		Where("createdAt", ">=", cutoff)
	results, err := query.
		NewAggregationQuery().
		WithCount("total").
		Get(ctx)
	if err != nil {
		return 0, err
	}
	v, ok := results["total"].(*firestorepb.Value)
	if !ok {
		return 0, fmt.Errorf("unexpected aggregation result for %s", collection)
	}
	return v.GetIntegerValue(), nil
}

func (s *FirestoreStore) topPages(ctx context.Context, cutoff time.Time) ([]PageCount, error) {
	iter := s.client.Collection(pageViewCollection).
		Where("createdAt", ">=", cutoff).
		Select("page").
		Documents(ctx)
	defer iter.Stop()

	counts := make(map[string]int64)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		page, err := doc.DataAt("page")
		if err != nil {
			return nil, err
		}
		if p, ok := page.(string); ok {
			counts[p]++
		}
	}
	return rankPages(counts), nil
}

// rankPages orders pages by view count descending, truncated to the top-ten
// cap. Ties break on page path so repeated summaries are stable.
func rankPages(counts map[string]int64) []PageCount {
	ranked := make([]PageCount, 0, len(counts))
	for page, views := range counts {
		ranked = append(ranked, PageCount{Page: page, Views: views})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Views != ranked[j].Views {
			return ranked[i].Views > ranked[j].Views
		}
		return ranked[i].Page < ranked[j].Page
	})
	if len(ranked) > TopPagesLimit {
		ranked = ranked[:TopPagesLimit]
	}
	return ranked
}

// Compile-time interface check
var _ Service = (*FirestoreStore)(nil)

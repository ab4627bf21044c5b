package analytics

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	appmiddleware "github.com/sudhanshu-jha/portfolio-api/internal/middleware"
	analyticssvc "github.com/sudhanshu-jha/portfolio-api/internal/service/analytics"
)

// Register registers analytics endpoints.
func Register(api huma.API, svc analyticssvc.Service) {
	huma.Register(api, huma.Operation{
		OperationID: "record-page-view",
		Method:      http.MethodPost,
		Path:        "/analytics/page-view",
		Summary:     "Record a page view",
		Tags:        []string{"Analytics"},
	}, func(ctx context.Context, input *RecordInput) (*RecordOutput, error) {
		client := appmiddleware.ClientFromContext(ctx)

		_, err := svc.Record(ctx, analyticssvc.RecordParams{
			Page:      input.Body.Page,
			Referrer:  input.Body.Referrer,
			IPAddress: client.IPAddress,
			UserAgent: client.UserAgent,
		})
		if err != nil {
			return nil, huma.Error500InternalServerError("failed to log page view")
		}
		return &RecordOutput{Body: RecordData{
			Success: true,
			Message: "Page view logged",
		}}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-analytics-summary",
		Method:      http.MethodGet,
		Path:        "/analytics/summary",
		Summary:     "Summarize recent site activity",
		Description: "Counts page views and contact submissions inside a trailing day window and ranks the most viewed pages.",
		Tags:        []string{"Analytics"},
	}, func(ctx context.Context, input *SummaryInput) (*SummaryOutput, error) {
		summary, err := svc.Summarize(ctx, input.Days)
		if err != nil {
			return nil, huma.Error500InternalServerError("internal server error")
		}

		out := SummaryData{
			TotalViews:    summary.TotalViews,
			TotalContacts: summary.TotalContacts,
			TopPages:      make([]PageCount, 0, len(summary.TopPages)),
			Period:        summary.Period,
		}
		for _, pc := range summary.TopPages {
			out.TopPages = append(out.TopPages, PageCount(pc))
		}
		return &SummaryOutput{Body: out}, nil
	})
}

package analytics

// RecordData confirms a logged page view.
type RecordData struct {
	Success bool   `json:"success" doc:"Whether the page view was stored"`
	Message string `json:"message" doc:"Result message" example:"Page view logged"`
}

// RecordOutput for POST /analytics/page-view
type RecordOutput struct {
	Body RecordData
}

// PageCount is one entry in the top-pages ranking.
type PageCount struct {
	Page  string `json:"page"  doc:"Page path"  example:"/projects"`
	Views int64  `json:"views" doc:"View count" example:"42"`
}

// SummaryData aggregates activity over the requested window.
type SummaryData struct {
	TotalViews    int64       `json:"totalViews"    doc:"Page views inside the window"`
	TotalContacts int64       `json:"totalContacts" doc:"Contact submissions inside the window"`
	TopPages      []PageCount `json:"topPages"      doc:"Top pages by view count, descending"`
	Period        string      `json:"period"        doc:"Human-readable window label" example:"Last 30 days"`
}

// SummaryOutput for GET /analytics/summary
type SummaryOutput struct {
	Body SummaryData
}

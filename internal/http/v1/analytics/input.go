package analytics

// RecordInput for POST /analytics/page-view. Client metadata is captured
// server-side, never taken from the payload.
type RecordInput struct {
	Body struct {
		Page     string `json:"page"               minLength:"1" maxLength:"200" required:"true" doc:"Visited page path" example:"/projects"`
		Referrer string `json:"referrer,omitempty"               maxLength:"500"                 doc:"Referrer URL"`
	}
}

// SummaryInput for GET /analytics/summary.
type SummaryInput struct {
	Days int `query:"days" doc:"Trailing window in days" default:"30" minimum:"1" maximum:"365"`
}

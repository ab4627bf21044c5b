package contact

// SubmitData is the contact-form response body. Message is one of two fixed
// user-facing strings; SubmissionID is present only on success.
type SubmitData struct {
	Success      bool   `json:"success"                doc:"Whether the submission was stored"`
	Message      string `json:"message"                doc:"User-facing result message"`
	SubmissionID string `json:"submissionId,omitempty" doc:"Identifier of the stored submission"`
}

// SubmitOutput for POST /contact
type SubmitOutput struct {
	Body SubmitData
}

// ListData is the admin listing response body.
type ListData struct {
	Submissions []Submission `json:"submissions" doc:"Submissions, newest first"`
	Count       int          `json:"count"       doc:"Number of submissions returned" example:"1"`
}

// ListOutput for GET /contact/submissions
type ListOutput struct {
	Body ListData
}

// UpdateStatusData confirms a status change.
type UpdateStatusData struct {
	Success bool   `json:"success" doc:"Whether the status was updated"`
	Status  string `json:"status"  doc:"Status now stored"              example:"read"`
}

// UpdateStatusOutput for PATCH /contact/submissions/{id}
type UpdateStatusOutput struct {
	Body UpdateStatusData
}

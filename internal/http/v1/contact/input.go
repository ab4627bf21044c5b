package contact

// SubmitInput for POST /contact. Only the four form fields are accepted;
// ids, status and client metadata are assigned server-side.
type SubmitInput struct {
	Body struct {
		Name    string `json:"name"              minLength:"1"  maxLength:"100"  required:"true" doc:"Sender name"          example:"John Smith"`
		Email   string `json:"email"             format:"email"                  required:"true" doc:"Sender email address" example:"john.smith@techcorp.com"`
		Company string `json:"company,omitempty"                maxLength:"100"                  doc:"Sender company"       example:"TechCorp"`
		Message string `json:"message"           minLength:"10" maxLength:"2000" required:"true" doc:"Message body"`
	}
}

// ListInput for GET /contact/submissions.
type ListInput struct {
	Limit int `query:"limit" doc:"Maximum submissions to return" default:"50" minimum:"1" maximum:"100"`
}

// UpdateStatusInput for PATCH /contact/submissions/{id}.
type UpdateStatusInput struct {
	ID   string `path:"id" doc:"Submission identifier" example:"8b2f7c4e-3c6d-4a5b-9f1e-2d8c7b6a5f4e"`
	Body struct {
		Status string `json:"status" required:"true" enum:"new,read,responded,archived" doc:"New handling status" example:"read"`
	}
}

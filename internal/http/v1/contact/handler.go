package contact

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	"github.com/sudhanshu-jha/portfolio-api/internal/common"
	appmiddleware "github.com/sudhanshu-jha/portfolio-api/internal/middleware"
	contactsvc "github.com/sudhanshu-jha/portfolio-api/internal/service/contact"
)

// Fixed user-facing messages for the public form. Internal failure detail
// never reaches the anonymous caller.
const (
	msgSubmitted    = "Thank you for your message! I'll get back to you within 24 hours."
	msgSubmitFailed = "There was an error submitting your message. Please try again later."
)

// Register registers contact endpoints.
func Register(api huma.API, svc contactsvc.Service) {
	huma.Register(api, huma.Operation{
		OperationID: "submit-contact-form",
		Method:      http.MethodPost,
		Path:        "/contact",
		Summary:     "Submit the contact form",
		Description: "Stores a contact-form message with server-captured client metadata.",
		Tags:        []string{"Contact"},
	}, func(ctx context.Context, input *SubmitInput) (*SubmitOutput, error) {
		client := appmiddleware.ClientFromContext(ctx)

		sub, err := svc.Create(ctx, contactsvc.CreateParams{
			Name:      input.Body.Name,
			Email:     input.Body.Email,
			Company:   input.Body.Company,
			Message:   input.Body.Message,
			IPAddress: client.IPAddress,
			UserAgent: client.UserAgent,
		})
		if err != nil {
			return &SubmitOutput{Body: SubmitData{
				Success: false,
				Message: msgSubmitFailed,
			}}, nil
		}

		appmiddleware.LogInfo(ctx, "contact form submitted", zap.String("email", sub.Email))
		return &SubmitOutput{Body: SubmitData{
			Success:      true,
			Message:      msgSubmitted,
			SubmissionID: sub.ID,
		}}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-contact-submissions",
		Method:      http.MethodGet,
		Path:        "/contact/submissions",
		Summary:     "List recent contact submissions",
		Description: "Returns stored submissions newest first, for admin review.",
		Tags:        []string{"Contact"},
	}, func(ctx context.Context, input *ListInput) (*ListOutput, error) {
		subs, err := svc.List(ctx, input.Limit)
		if err != nil {
			return nil, huma.Error500InternalServerError("internal server error")
		}

		out := ListData{
			Submissions: make([]Submission, 0, len(subs)),
			Count:       len(subs),
		}
		for i := range subs {
			out.Submissions = append(out.Submissions, toHTTPSubmission(&subs[i]))
		}
		return &ListOutput{Body: out}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "update-submission-status",
		Method:      http.MethodPatch,
		Path:        "/contact/submissions/{id}",
		Summary:     "Update a submission's handling status",
		Tags:        []string{"Contact"},
	}, func(ctx context.Context, input *UpdateStatusInput) (*UpdateStatusOutput, error) {
		status := contactsvc.Status(input.Body.Status)

		if err := svc.UpdateStatus(ctx, input.ID, status); err != nil {
			switch {
			case errors.Is(err, contactsvc.ErrNotFound):
				return nil, huma.Error404NotFound("submission not found")
			case errors.Is(err, contactsvc.ErrInvalidStatus):
				return nil, huma.Error422UnprocessableEntity("invalid status")
			default:
				return nil, huma.Error500InternalServerError("internal server error")
			}
		}
		return &UpdateStatusOutput{Body: UpdateStatusData{
			Success: true,
			Status:  string(status),
		}}, nil
	})
}

func toHTTPSubmission(sub *contactsvc.Submission) Submission {
	return Submission{
		ID:        sub.ID,
		Name:      sub.Name,
		Email:     sub.Email,
		Company:   sub.Company,
		Message:   sub.Message,
		CreatedAt: common.NewTime(sub.CreatedAt),
		Source:    sub.Source,
		Status:    string(sub.Status),
		IPAddress: sub.IPAddress,
		UserAgent: sub.UserAgent,
	}
}

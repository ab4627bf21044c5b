package contact

import (
	"context"
	"errors"
	"time"
)

// Service errors
var (
	ErrNotFound      = errors.New("submission not found")
	ErrInvalidStatus = errors.New("invalid submission status")
)

// Source tags every submission with the channel it arrived through.
const Source = "portfolio_website"

// Status is the handling state of a submission. Every submission starts as
// StatusNew; any status may follow any other.
type Status string

const (
	StatusNew       Status = "new"
	StatusRead      Status = "read"
	StatusResponded Status = "responded"
	StatusArchived  Status = "archived"
)

// Valid reports whether s is one of the defined statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusRead, StatusResponded, StatusArchived:
		return true
	}
	return false
}

// Submission is one stored contact-form message. ID, CreatedAt, Source and
// the captured client metadata are server-assigned; Status is the only field
// that changes after creation.
type Submission struct {
	ID        string
	Name      string
	Email     string
	Company   string
	Message   string
	CreatedAt time.Time
	Source    string
	Status    Status
	IPAddress string
	UserAgent string
}

// CreateParams for storing a new submission. Name, Email, Company and
// Message come from the form body; IPAddress and UserAgent are captured by
// the HTTP boundary, never by the caller.
type CreateParams struct {
	Name      string
	Email     string
	Company   string
	Message   string
	IPAddress string
	UserAgent string
}

// DefaultListLimit bounds listings when the caller does not ask for a limit.
const DefaultListLimit = 50

// Service defines contact submission operations.
//
// List returns submissions newest first, at most limit entries (the default
// applies when limit <= 0). UpdateStatus returns ErrNotFound when no
// submission matches id and ErrInvalidStatus for a status outside the enum.
type Service interface {
	Create(ctx context.Context, params CreateParams) (*Submission, error)
	List(ctx context.Context, limit int) ([]Submission, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
}

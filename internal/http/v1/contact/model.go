package contact

import (
	"github.com/sudhanshu-jha/portfolio-api/internal/common"
)

// Submission is one stored contact-form message as returned to the admin
// listing.
type Submission struct {
	ID        string      `json:"id"                  doc:"Unique identifier"`
	Name      string      `json:"name"                doc:"Sender name"           example:"John Smith"`
	Email     string      `json:"email"               doc:"Sender email address"  example:"john.smith@techcorp.com"`
	Company   string      `json:"company,omitempty"   doc:"Sender company"`
	Message   string      `json:"message"             doc:"Message body"`
	CreatedAt common.Time `json:"createdAt"           doc:"Submission timestamp"  example:"2025-03-10T08:15:00.000Z"`
	Source    string      `json:"source"              doc:"Submission channel"    example:"portfolio_website"`
	Status    string      `json:"status"              doc:"Handling status"       example:"new" enum:"new,read,responded,archived"`
	IPAddress string      `json:"ipAddress,omitempty" doc:"Captured client IP"`
	UserAgent string      `json:"userAgent,omitempty" doc:"Captured client user-agent"`
}

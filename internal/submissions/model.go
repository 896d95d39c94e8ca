package submissions

import (
	"strings"
	"time"
)

const (
	// StatusNew is assigned to every submission at creation. Status
	// transitions, if any, happen in external tooling (CRM).
	StatusNew = "new"

	// SourceWebsiteForm identifies leads captured through the site's
	// contact form.
	SourceWebsiteForm = "website_form"
)

// Submission represents one lead captured from a contact form.
type Submission struct {
	ID           string    `json:"id"`
	BusinessName string    `json:"business_name"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	ServiceType  string    `json:"service_type,omitempty"`
	ZipCode      string    `json:"zip_code"`
	Message      string    `json:"message,omitempty"`
	Status       string    `json:"status"`
	Source       string    `json:"source"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreateSubmissionRequest represents the request body for the contact endpoint
type CreateSubmissionRequest struct {
	BusinessName string `json:"business_name"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	ServiceType  string `json:"service_type"`
	ZipCode      string `json:"zip_code"`
	Message      string `json:"message"`
}

// Validate applies presence-only checks at the trust boundary. Field
// formats are enforced by the client-facing strict validator; a request
// that reaches the server with garbage in a present field is tolerated.
func (r *CreateSubmissionRequest) Validate() error {
	if strings.TrimSpace(r.BusinessName) == "" ||
		strings.TrimSpace(r.Name) == "" ||
		strings.TrimSpace(r.Email) == "" ||
		strings.TrimSpace(r.Phone) == "" ||
		strings.TrimSpace(r.ZipCode) == "" {
		return ErrMissingFields
	}
	return nil
}

package submissions

import (
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	zipPattern   = regexp.MustCompile(`^\d{5}$`)
	nonDigits    = regexp.MustCompile(`\D`)
)

// ValidateStrict applies the field-format rules the contact form enforces
// before submitting. It returns a map from field name to a human-readable
// message for every violated field, or nil when the request is clean.
func ValidateStrict(req *CreateSubmissionRequest) map[string]string {
	errs := map[string]string{}

	if len(strings.TrimSpace(req.Name)) < 2 {
		errs["name"] = "Name must be at least 2 characters"
	}
	if !emailPattern.MatchString(req.Email) {
		errs["email"] = "Please enter a valid email address"
	}
	if len(nonDigits.ReplaceAllString(req.Phone, "")) < 10 {
		errs["phone"] = "Please enter a valid phone number"
	}
	if !zipPattern.MatchString(req.ZipCode) {
		errs["zip_code"] = "Please enter a valid 5-digit zip code"
	}
	if len(strings.TrimSpace(req.Message)) < 10 {
		errs["message"] = "Message must be at least 10 characters"
	}
	// service_type is a free-form select value; any string is accepted.

	if len(errs) == 0 {
		return nil
	}
	return errs
}

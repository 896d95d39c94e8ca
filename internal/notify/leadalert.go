package notify

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/reppreps/homesite/internal/observability/metrics"
	"github.com/reppreps/homesite/internal/submissions"
	"github.com/reppreps/homesite/pkg/logging"
)

const leadAlertHTML = `<!DOCTYPE html>
<html>
  <body style="font-family: Arial, sans-serif; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <div style="background: #0066CC; color: white; padding: 20px; border-radius: 8px 8px 0 0; text-align: center;">
      <h1 style="margin: 0; font-size: 24px;">New Lead Received</h1>
      <div style="display: inline-block; background: #FF6B35; color: white; padding: 4px 12px; border-radius: 4px; font-weight: bold; margin-top: 5px;">{{.BusinessName}}</div>
    </div>
    <div style="background: #f9f9f9; padding: 30px; border: 1px solid #e0e0e0; border-top: none; border-radius: 0 0 8px 8px;">
      {{range .Fields}}
      <div style="margin-bottom: 20px; padding: 15px; background: white; border-radius: 6px; border-left: 4px solid #0066CC;">
        <div style="font-weight: bold; color: #0066CC; font-size: 12px; text-transform: uppercase;">{{.Label}}</div>
        <div style="font-size: 16px; color: #333; white-space: pre-wrap;">{{.Value}}</div>
      </div>
      {{end}}
      <div style="margin-top: 20px; padding-top: 20px; border-top: 2px solid #e0e0e0; font-size: 12px; color: #666; text-align: center;">
        <p>This lead was submitted via {{.BusinessName}}'s website contact form.</p>
        <p>Received: {{.Received}}</p>
      </div>
    </div>
  </body>
</html>`

var leadAlertTmpl = template.Must(template.New("leadalert").Parse(leadAlertHTML))

type leadField struct {
	Label string
	Value string
}

// LeadAlerter emails the business owner about each new submission. It is
// the detached half of the contact pipeline: the HTTP handler launches
// Dispatch and never waits for or learns about the outcome.
type LeadAlerter struct {
	sender    EmailSender
	recipient string
	metrics   *metrics.FormMetrics
	logger    *logging.Logger
}

// NewLeadAlerter creates a lead alerter. sender may be nil and recipient
// may be empty; both disable delivery without being an error.
func NewLeadAlerter(sender EmailSender, recipient string, m *metrics.FormMetrics, logger *logging.Logger) *LeadAlerter {
	if logger == nil {
		logger = logging.Default()
	}
	return &LeadAlerter{
		sender:    sender,
		recipient: recipient,
		metrics:   m,
		logger:    logger,
	}
}

// Enabled reports whether both a delivery channel and a recipient are
// configured.
func (a *LeadAlerter) Enabled() bool {
	return a != nil && a.sender != nil && a.recipient != ""
}

// Dispatch sends the notification on its own goroutine. Errors and panics
// are funneled to the log and metrics sinks only; the submission already
// succeeded and its response must not depend on email delivery.
func (a *LeadAlerter) Dispatch(sub *submissions.Submission) {
	if !a.Enabled() {
		return
	}
	go func() {
		defer func() {
			if rec := recover(); rec != nil {
				a.logger.Error("lead alert panicked", "panic", rec, "submission_id", sub.ID)
				a.metrics.ObserveNotification("panic")
			}
		}()
		// The request context is gone by the time this runs; the alert
		// completes or fails on its own regardless of client disconnect.
		if err := a.Notify(context.Background(), sub); err != nil {
			a.logger.Error("lead alert failed (non-critical)", "error", err, "submission_id", sub.ID)
			a.metrics.ObserveNotification("error")
			return
		}
		a.metrics.ObserveNotification("ok")
	}()
}

// Notify renders and sends one alert email for a persisted submission.
func (a *LeadAlerter) Notify(ctx context.Context, sub *submissions.Submission) error {
	if !a.Enabled() {
		return nil
	}

	subject := fmt.Sprintf("New Lead: %s", sub.BusinessName)

	fields := []leadField{
		{Label: "Customer Name", Value: sub.Name},
		{Label: "Email", Value: sub.Email},
		{Label: "Phone", Value: sub.Phone},
	}
	if sub.ServiceType != "" {
		fields = append(fields, leadField{Label: "Service Type", Value: sub.ServiceType})
	}
	if sub.ZipCode != "" {
		fields = append(fields, leadField{Label: "Zip Code", Value: sub.ZipCode})
	}
	if sub.Message != "" {
		fields = append(fields, leadField{Label: "Message", Value: sub.Message})
	}

	received := sub.CreatedAt
	if received.IsZero() {
		received = time.Now().UTC()
	}

	var buf bytes.Buffer
	if err := leadAlertTmpl.Execute(&buf, struct {
		BusinessName string
		Fields       []leadField
		Received     string
	}{
		BusinessName: sub.BusinessName,
		Fields:       fields,
		Received:     received.Format("Monday, January 2, 2006 at 3:04 PM MST"),
	}); err != nil {
		return fmt.Errorf("notify: render lead alert: %w", err)
	}

	var text strings.Builder
	fmt.Fprintf(&text, "New lead for %s\n\n", sub.BusinessName)
	for _, f := range fields {
		fmt.Fprintf(&text, "%s: %s\n", f.Label, f.Value)
	}

	if err := a.sender.Send(ctx, EmailMessage{
		To:      a.recipient,
		Subject: subject,
		Body:    text.String(),
		HTML:    buf.String(),
	}); err != nil {
		return fmt.Errorf("notify: send lead alert: %w", err)
	}

	a.logger.Info("lead alert sent", "submission_id", sub.ID, "to", a.recipient)
	return nil
}

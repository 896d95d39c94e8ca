package notify

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/reppreps/homesite/internal/submissions"
)

type recordingSender struct {
	err  error
	sent chan EmailMessage
}

func newRecordingSender(err error) *recordingSender {
	return &recordingSender{err: err, sent: make(chan EmailMessage, 1)}
}

func (s *recordingSender) Send(ctx context.Context, msg EmailMessage) error {
	s.sent <- msg
	return s.err
}

func testSubmission() *submissions.Submission {
	return &submissions.Submission{
		ID:           "sub-1",
		BusinessName: "ABC Plumbing",
		Name:         "Jo Smith",
		Email:        "jo@example.com",
		Phone:        "5551234567",
		ServiceType:  "drain-cleaning",
		ZipCode:      "12345",
		Message:      "Kitchen sink is backing up.",
		Status:       submissions.StatusNew,
		Source:       submissions.SourceWebsiteForm,
		CreatedAt:    time.Date(2026, 3, 14, 15, 9, 0, 0, time.UTC),
	}
}

func TestLeadAlerter_Enabled(t *testing.T) {
	sender := newRecordingSender(nil)

	if NewLeadAlerter(nil, "owner@example.com", nil, nil).Enabled() {
		t.Error("expected disabled without sender")
	}
	if NewLeadAlerter(sender, "", nil, nil).Enabled() {
		t.Error("expected disabled without recipient")
	}
	if !NewLeadAlerter(sender, "owner@example.com", nil, nil).Enabled() {
		t.Error("expected enabled with sender and recipient")
	}
	var nilAlerter *LeadAlerter
	if nilAlerter.Enabled() {
		t.Error("expected nil alerter to report disabled")
	}
}

func TestLeadAlerter_Notify_RendersAllFields(t *testing.T) {
	sender := newRecordingSender(nil)
	alerter := NewLeadAlerter(sender, "owner@example.com", nil, nil)

	if err := alerter.Notify(context.Background(), testSubmission()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	msg := <-sender.sent
	if msg.To != "owner@example.com" {
		t.Errorf("expected recipient owner@example.com, got %s", msg.To)
	}
	if msg.Subject != "New Lead: ABC Plumbing" {
		t.Errorf("unexpected subject %q", msg.Subject)
	}
	for _, want := range []string{"Jo Smith", "jo@example.com", "5551234567", "drain-cleaning", "12345", "Kitchen sink is backing up."} {
		if !strings.Contains(msg.HTML, want) {
			t.Errorf("expected HTML body to contain %q", want)
		}
		if !strings.Contains(msg.Body, want) {
			t.Errorf("expected text body to contain %q", want)
		}
	}
}

func TestLeadAlerter_Notify_OmitsAbsentOptionalFields(t *testing.T) {
	sender := newRecordingSender(nil)
	alerter := NewLeadAlerter(sender, "owner@example.com", nil, nil)

	sub := testSubmission()
	sub.ServiceType = ""
	sub.Message = ""

	if err := alerter.Notify(context.Background(), sub); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	msg := <-sender.sent
	if strings.Contains(msg.HTML, "Service Type") {
		t.Error("expected Service Type block to be omitted")
	}
	if strings.Contains(msg.Body, "Message:") {
		t.Error("expected Message line to be omitted")
	}
}

func TestLeadAlerter_Notify_DisabledIsNoop(t *testing.T) {
	alerter := NewLeadAlerter(nil, "", nil, nil)
	if err := alerter.Notify(context.Background(), testSubmission()); err != nil {
		t.Errorf("expected nil error from disabled alerter, got %v", err)
	}
}

func TestLeadAlerter_Dispatch_SwallowsSendError(t *testing.T) {
	sender := newRecordingSender(errors.New("provider outage"))
	alerter := NewLeadAlerter(sender, "owner@example.com", nil, nil)

	alerter.Dispatch(testSubmission())

	select {
	case <-sender.sent:
	case <-time.After(2 * time.Second):
		t.Fatal("expected dispatch to attempt a send")
	}
}

func TestLeadAlerter_Dispatch_DisabledSendsNothing(t *testing.T) {
	sender := newRecordingSender(nil)
	alerter := NewLeadAlerter(sender, "", nil, nil)

	alerter.Dispatch(testSubmission())

	select {
	case <-sender.sent:
		t.Fatal("expected no send when disabled")
	case <-time.After(50 * time.Millisecond):
	}
}

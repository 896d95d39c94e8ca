package submissions

import (
	"context"
	"testing"
)

func TestInMemoryRepository_Create(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	req := &CreateSubmissionRequest{
		BusinessName: "ABC Plumbing",
		Name:         "Jane Smith",
		Email:        "jane@example.com",
		Phone:        "5559876543",
		ZipCode:      "54321",
		Message:      "Water heater replacement quote",
	}

	sub, err := repo.Create(ctx, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sub.ID == "" {
		t.Error("expected submission ID to be set")
	}
	if sub.Status != StatusNew {
		t.Errorf("expected status %q, got %q", StatusNew, sub.Status)
	}
	if sub.Source != SourceWebsiteForm {
		t.Errorf("expected source %q, got %q", SourceWebsiteForm, sub.Source)
	}
	if sub.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
	if repo.Len() != 1 {
		t.Errorf("expected one stored submission, got %d", repo.Len())
	}
}

func TestInMemoryRepository_Create_MissingFields(t *testing.T) {
	repo := NewInMemoryRepository()

	_, err := repo.Create(context.Background(), &CreateSubmissionRequest{
		Name:  "Jane Smith",
		Email: "jane@example.com",
	})
	if err != ErrMissingFields {
		t.Errorf("expected ErrMissingFields, got %v", err)
	}
	if repo.Len() != 0 {
		t.Errorf("expected no stored submissions, got %d", repo.Len())
	}
}

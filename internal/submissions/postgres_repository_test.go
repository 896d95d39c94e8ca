package submissions

import (
	"context"
	"errors"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
)

func TestPostgresRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	createdAt := time.Date(2026, 3, 14, 15, 9, 0, 0, time.UTC)
	mock.ExpectQuery("INSERT INTO contact_submissions").
		WithArgs(pgxmock.AnyArg(), "Acme", "Jo", "jo@x.com", "5551234567", "", "12345", "need a repair", StatusNew, SourceWebsiteForm).
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(createdAt))

	repo := NewPostgresRepository(mock)
	sub, err := repo.Create(context.Background(), &CreateSubmissionRequest{
		BusinessName: "Acme",
		Name:         "Jo",
		Email:        "jo@x.com",
		Phone:        "5551234567",
		ZipCode:      "12345",
		Message:      "need a repair",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sub.ID == "" {
		t.Error("expected generated ID")
	}
	if !sub.CreatedAt.Equal(createdAt) {
		t.Errorf("expected store-assigned created_at %v, got %v", createdAt, sub.CreatedAt)
	}
	if sub.Status != StatusNew || sub.Source != SourceWebsiteForm {
		t.Errorf("unexpected status/source %q/%q", sub.Status, sub.Source)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresRepository_Create_InsertError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery("INSERT INTO contact_submissions").
		WillReturnError(errors.New("connection refused"))

	repo := NewPostgresRepository(mock)
	_, err = repo.Create(context.Background(), &CreateSubmissionRequest{
		BusinessName: "Acme",
		Name:         "Jo",
		Email:        "jo@x.com",
		Phone:        "5551234567",
		ZipCode:      "12345",
	})
	if err == nil {
		t.Fatal("expected insert error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresRepository_Create_ValidatesBeforeInsert(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	repo := NewPostgresRepository(mock)
	_, err = repo.Create(context.Background(), &CreateSubmissionRequest{Name: "Jo"})
	if err != ErrMissingFields {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}

	// No query expectation was set; a write attempt would fail here.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expected no store write: %v", err)
	}
}

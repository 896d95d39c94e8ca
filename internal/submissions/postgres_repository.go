package submissions

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// db is the subset of pgxpool.Pool the repository needs. pgxmock
// satisfies it in tests.
type db interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresRepository stores submissions in the relational database.
type PostgresRepository struct {
	pool db
}

// NewPostgresRepository initializes a repo backed by pgxpool.
func NewPostgresRepository(pool db) *PostgresRepository {
	if pool == nil {
		panic("submissions: pgx pool required")
	}
	return &PostgresRepository{pool: pool}
}

// Create inserts a new row. Single attempt; the caller decides what a
// failure means.
func (r *PostgresRepository) Create(ctx context.Context, req *CreateSubmissionRequest) (*Submission, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	id := uuid.New()
	query := `
		INSERT INTO contact_submissions (id, business_name, name, email, phone, service_type, zip_code, message, status, source)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at
	`
	var createdAt time.Time
	if err := r.pool.QueryRow(ctx, query,
		id,
		req.BusinessName,
		req.Name,
		req.Email,
		req.Phone,
		req.ServiceType,
		req.ZipCode,
		req.Message,
		StatusNew,
		SourceWebsiteForm,
	).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("submissions: insert failed: %w", err)
	}

	return &Submission{
		ID:           id.String(),
		BusinessName: req.BusinessName,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		ServiceType:  req.ServiceType,
		ZipCode:      req.ZipCode,
		Message:      req.Message,
		Status:       StatusNew,
		Source:       SourceWebsiteForm,
		CreatedAt:    createdAt,
	}, nil
}

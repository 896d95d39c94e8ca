package submissions

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Repository defines the interface for submission storage
type Repository interface {
	Create(ctx context.Context, req *CreateSubmissionRequest) (*Submission, error)
}

// InMemoryRepository is a stub implementation of Repository using in-memory storage
type InMemoryRepository struct {
	mu   sync.RWMutex
	subs map[string]*Submission
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		subs: make(map[string]*Submission),
	}
}

// Create creates a new submission in memory
func (r *InMemoryRepository) Create(ctx context.Context, req *CreateSubmissionRequest) (*Submission, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	sub := &Submission{
		ID:           uuid.New().String(),
		BusinessName: req.BusinessName,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		ServiceType:  req.ServiceType,
		ZipCode:      req.ZipCode,
		Message:      req.Message,
		Status:       StatusNew,
		Source:       SourceWebsiteForm,
		CreatedAt:    time.Now().UTC(),
	}

	r.mu.Lock()
	r.subs[sub.ID] = sub
	r.mu.Unlock()

	return sub, nil
}

// Len reports the number of stored submissions.
func (r *InMemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.subs)
}

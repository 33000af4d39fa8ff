package contact

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/openpitch/playerpage/internal/store"
)

// Repository defines the persistence operations for contact submissions.
type Repository interface {
	Create(ctx context.Context, s *Submission) error
}

type contactRepository struct {
	db *store.Store
}

// NewRepository creates a MongoDB-backed contact submission repository.
func NewRepository(db *store.Store) Repository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(ctx context.Context, s *Submission) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	_, err := r.db.Collection(store.KindContactSubmission).InsertOne(ctx, s)
	if err != nil {
		return fmt.Errorf("failed to insert contact submission: %w", err)
	}
	return nil
}

package testimonial

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/openpitch/playerpage/internal/store"
)

// Repository defines the persistence operations for testimonials.
type Repository interface {
	Create(ctx context.Context, t *Testimonial) error
	ListBySlug(ctx context.Context, slug string) ([]Testimonial, error)
}

type testimonialRepository struct {
	db *store.Store
}

// NewRepository creates a MongoDB-backed testimonial repository.
func NewRepository(db *store.Store) Repository {
	return &testimonialRepository{db: db}
}

func (r *testimonialRepository) Create(ctx context.Context, t *Testimonial) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	_, err := r.db.Collection(store.KindTestimonial).InsertOne(ctx, t)
	if err != nil {
		return fmt.Errorf("failed to insert testimonial: %w", err)
	}
	return nil
}

// ListBySlug returns every testimonial referencing the slug, in store
// order. Always returns a non-nil slice so the endpoint serializes an
// empty JSON array rather than null.
func (r *testimonialRepository) ListBySlug(ctx context.Context, slug string) ([]Testimonial, error) {
	cursor, err := r.db.Collection(store.KindTestimonial).Find(ctx, bson.M{"player_slug": slug})
	if err != nil {
		return nil, fmt.Errorf("failed to query testimonials: %w", err)
	}

	result := []Testimonial{}
	if err := cursor.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("failed to decode testimonials: %w", err)
	}
	return result, nil
}

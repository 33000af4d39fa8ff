package player

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/openpitch/playerpage/internal/store"
)

// Repository defines the persistence operations for player profiles.
type Repository interface {
	Create(ctx context.Context, p *Player) error
	GetBySlug(ctx context.Context, slug string) (*Player, error)
}

type playerRepository struct {
	db *store.Store
}

// NewRepository creates a MongoDB-backed player repository.
func NewRepository(db *store.Store) Repository {
	return &playerRepository{db: db}
}

// Create inserts a new profile. Returns store.ErrDuplicate when the
// unique slug index rejects the insert.
func (r *playerRepository) Create(ctx context.Context, p *Player) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	_, err := r.db.Collection(store.KindPlayer).InsertOne(ctx, p)
	if err != nil {
		if store.IsDuplicate(err) {
			return store.ErrDuplicate
		}
		return fmt.Errorf("failed to insert player: %w", err)
	}
	return nil
}

// GetBySlug fetches a profile by its slug, store.ErrNotFound on miss.
func (r *playerRepository) GetBySlug(ctx context.Context, slug string) (*Player, error) {
	var p Player
	err := r.db.Collection(store.KindPlayer).FindOne(ctx, bson.M{"slug": slug}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find player: %w", err)
	}
	return &p, nil
}

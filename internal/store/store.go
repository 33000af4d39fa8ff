package store

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Kind identifies a stored entity type. Collection names are resolved
// through an explicit table rather than derived from type names, so the
// mapping is visible in one place and survives renames.
type Kind string

const (
	KindPlayer            Kind = "player"
	KindTestimonial       Kind = "testimonial"
	KindContactSubmission Kind = "contactsubmission"
)

var collections = map[Kind]string{
	KindPlayer:            "player",
	KindTestimonial:       "testimonial",
	KindContactSubmission: "contactsubmission",
}

// CollectionName returns the MongoDB collection name for a kind.
func CollectionName(kind Kind) string {
	return collections[kind]
}

// Config holds connection settings for the document store.
type Config struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
}

// Store wraps a MongoDB client and the application database. It is
// constructed once in main and injected into the repositories.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect establishes and verifies a connection to the document store.
func Connect(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to document store: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		// Best effort cleanup, the ping failure is the error that matters.
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping document store: %w", err)
	}

	slog.Info("connected to document store", "database", cfg.Database)
	return &Store{client: client, db: client.Database(cfg.Database)}, nil
}

// Collection returns the handle for the given entity kind.
func (s *Store) Collection(kind Kind) *mongo.Collection {
	return s.db.Collection(CollectionName(kind))
}

// EnsureIndexes creates the indexes the service relies on. The unique
// index on player.slug makes concurrent creations with the same slug
// collide at insert time instead of racing past the existence check.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.Collection(KindPlayer).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create unique slug index: %w", err)
	}
	return nil
}

// Ping verifies the connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// ListCollections returns the names of the collections currently
// present in the database. Used by the diagnostics endpoint.
func (s *Store) ListCollections(ctx context.Context) ([]string, error) {
	names, err := s.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	return names, nil
}

// Close disconnects from the document store.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

package contact

import "time"

// Submission is a contact/trial request, stored append-only in the
// "contactsubmission" collection. Immutable once created; there is no
// read endpoint, the collection exists for later retrieval by other
// tooling.
type Submission struct {
	ID         string `bson:"_id,omitempty" json:"-"`
	PlayerSlug string `bson:"player_slug" json:"player_slug" binding:"required"`
	Name       string `bson:"name" json:"name" binding:"required"`
	Role       string `bson:"role" json:"role" binding:"required"` // coach / scout / agent / club
	ClubName   string `bson:"club_name,omitempty" json:"club_name,omitempty"`
	Email      string `bson:"email,omitempty" json:"email,omitempty" binding:"omitempty,email"`
	WhatsApp   string `bson:"whatsapp,omitempty" json:"whatsapp,omitempty"`
	Country    string `bson:"country,omitempty" json:"country,omitempty"`
	Message    string `bson:"message,omitempty" json:"message,omitempty"`

	// SubmittedAt is assigned server-side in UTC when the submission
	// is received.
	SubmittedAt time.Time `bson:"submitted_at" json:"submitted_at"`
}

package testimonial

// Testimonial is a quote about a player, stored in the "testimonial"
// collection. PlayerSlug is a weak reference: the testimonial is kept
// even if the player document later changes.
type Testimonial struct {
	ID         string `bson:"_id,omitempty" json:"-"`
	PlayerSlug string `bson:"player_slug" json:"player_slug" binding:"required"`
	Author     string `bson:"author,omitempty" json:"author,omitempty"`
	Role       string `bson:"role,omitempty" json:"role,omitempty"`
	Quote      string `bson:"quote" json:"quote" binding:"required"`
}

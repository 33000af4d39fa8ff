package player

import "regexp"

// slugPattern: lowercase alphanumeric segments joined by single dashes,
// no leading/trailing/double dashes.
var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// ValidSlug reports whether s is an acceptable player slug. Enforced at
// creation time only; references elsewhere trust the stored value.
func ValidSlug(s string) bool {
	return slugPattern.MatchString(s)
}

// LinkItem is a custom external link shown on the landing page.
type LinkItem struct {
	Title string `bson:"title" json:"title" binding:"required"`
	URL   string `bson:"url" json:"url" binding:"required"`
	Icon  string `bson:"icon,omitempty" json:"icon,omitempty"` // Lucide icon name, e.g. "Youtube"
}

// SeasonStats is one season line in the player's stats table.
type SeasonStats struct {
	Season      string `bson:"season" json:"season" binding:"required"` // e.g. "2023/24"
	Club        string `bson:"club,omitempty" json:"club,omitempty"`
	League      string `bson:"league,omitempty" json:"league,omitempty"`
	Games       int    `bson:"games" json:"games"`
	Goals       int    `bson:"goals" json:"goals"`
	Assists     int    `bson:"assists" json:"assists"`
	CleanSheets int    `bson:"clean_sheets" json:"clean_sheets"`
	Minutes     int    `bson:"minutes" json:"minutes"`
}

// Player is a landing page profile, stored in the "player" collection.
// The slug is the public identifier and is immutable after creation.
type Player struct {
	ID   string `bson:"_id,omitempty" json:"-"`
	Slug string `bson:"slug" json:"slug" binding:"required"`

	Name        string `bson:"name" json:"name" binding:"required"`
	Position    string `bson:"position" json:"position" binding:"required"`
	Age         int    `bson:"age,omitempty" json:"age,omitempty"`
	Country     string `bson:"country,omitempty" json:"country,omitempty"`
	CurrentClub string `bson:"current_club,omitempty" json:"current_club,omitempty"`
	League      string `bson:"league,omitempty" json:"league,omitempty"`

	PhotoURL             string `bson:"photo_url,omitempty" json:"photo_url,omitempty"`
	HighlightTitle       string `bson:"highlight_title,omitempty" json:"highlight_title,omitempty"`
	HighlightURL         string `bson:"highlight_url,omitempty" json:"highlight_url,omitempty"`
	HighlightDescription string `bson:"highlight_description,omitempty" json:"highlight_description,omitempty"`

	HeightCm           int      `bson:"height_cm,omitempty" json:"height_cm,omitempty"`
	WeightKg           int      `bson:"weight_kg,omitempty" json:"weight_kg,omitempty"`
	DominantFoot       string   `bson:"dominant_foot,omitempty" json:"dominant_foot,omitempty"`
	MainPosition       string   `bson:"main_position,omitempty" json:"main_position,omitempty"`
	SecondaryPositions []string `bson:"secondary_positions,omitempty" json:"secondary_positions,omitempty"`
	PastClubs          []string `bson:"past_clubs,omitempty" json:"past_clubs,omitempty"`

	Bio string `bson:"bio,omitempty" json:"bio,omitempty"`

	Links []LinkItem    `bson:"links,omitempty" json:"links,omitempty"`
	Stats []SeasonStats `bson:"stats,omitempty" json:"stats,omitempty"`

	// ContactEmail is where contact/trial requests are forwarded.
	// Optional: without it submissions are stored but not emailed.
	ContactEmail string `bson:"contact_email,omitempty" json:"contact_email,omitempty" binding:"omitempty,email"`
}

// DefaultHighlightTitle is applied when a profile is created without one.
const DefaultHighlightTitle = "Best Highlights"

package contact

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/openpitch/playerpage/internal/mailer"
	"github.com/openpitch/playerpage/internal/player"
	"github.com/openpitch/playerpage/internal/store"
	"github.com/openpitch/playerpage/pkg/responses"
	"github.com/openpitch/playerpage/pkg/validator"
)

// Notifier schedules an email for background delivery. The return value
// only says whether the message was queued; delivery outcome is never
// observable from the request path.
type Notifier interface {
	Enqueue(msg mailer.Message) bool
}

// Controller orchestrates contact submissions: validate against the
// target player, persist, then schedule a best-effort notification.
type Controller struct {
	repo    Repository
	players player.Repository
	mail    Notifier
}

// NewController creates a new contact controller.
func NewController(repo Repository, players player.Repository, mail Notifier) *Controller {
	return &Controller{repo: repo, players: players, mail: mail}
}

// SubmitContact godoc
// @Summary Submit a contact/trial request for a player
// @Description Stores the submission and, when the player has a contact email configured, schedules a notification email after the response is returned. Notification delivery is best-effort and never fails the request.
// @Tags Contact
// @Accept json
// @Produce json
// @Param slug path string true "Player slug"
// @Param submission body Submission true "Contact submission"
// @Success 200 {object} map[string]string "{\"status\": \"ok\"}"
// @Failure 400 {object} responses.ErrorResponse "player_slug mismatch or invalid payload"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /players/{slug}/contact [post]
func (cc *Controller) SubmitContact(c *gin.Context) {
	slug := c.Param("slug")

	var sub Submission
	if err := c.ShouldBindJSON(&sub); err != nil {
		responses.ValidationError(c, "Validation failed", validator.ParseError(err))
		return
	}

	// Consistency check before any side effect.
	if sub.PlayerSlug != slug {
		responses.BadRequest(c, "player_slug mismatch")
		return
	}

	sub.SubmittedAt = time.Now().UTC()

	// The write is unconditional once validation passes. A failure here
	// is fatal for the request; there is no partial-success state.
	if err := cc.repo.Create(c.Request.Context(), &sub); err != nil {
		slog.Error("failed to store contact submission", "slug", slug, "error", err)
		responses.InternalError(c)
		return
	}

	// Notification is best-effort. A missing player or a player without
	// a contact email is not an error: the submission stands either way.
	p, err := cc.players.GetBySlug(c.Request.Context(), slug)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		slog.Warn("skipping notification, player lookup failed", "slug", slug, "error", err)
	}
	if p != nil && p.ContactEmail != "" {
		cc.mail.Enqueue(mailer.Message{
			To:      p.ContactEmail,
			Subject: fmt.Sprintf("New Contact/Trial Request for %s", p.Name),
			Body:    notificationBody(sub),
		})
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// notificationBody renders the fixed plain-text email for a submission.
// Absent optional fields show as "-".
func notificationBody(sub Submission) string {
	lines := []string{
		"Name: " + sub.Name,
		"Role: " + sub.Role,
		"Club: " + orDash(sub.ClubName),
		"Email: " + orDash(sub.Email),
		"WhatsApp: " + orDash(sub.WhatsApp),
		"Country: " + orDash(sub.Country),
		"",
		"Message:\n" + orDash(sub.Message),
		"",
		"Submitted at: " + sub.SubmittedAt.Format("2006-01-02T15:04:05") + " UTC",
	}
	return strings.Join(lines, "\n")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

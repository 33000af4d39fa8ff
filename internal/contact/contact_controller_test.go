package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openpitch/playerpage/internal/mailer"
	"github.com/openpitch/playerpage/internal/player"
	"github.com/openpitch/playerpage/internal/store"
)

type fakeRepository struct {
	items     []Submission
	createErr error
}

func (f *fakeRepository) Create(_ context.Context, s *Submission) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.items = append(f.items, *s)
	return nil
}

type fakePlayerRepository struct {
	players map[string]*player.Player
}

func (f *fakePlayerRepository) Create(_ context.Context, _ *player.Player) error {
	return errors.New("not implemented")
}

func (f *fakePlayerRepository) GetBySlug(_ context.Context, slug string) (*player.Player, error) {
	p, ok := f.players[slug]
	if !ok {
		return nil, store.ErrNotFound
	}
	return p, nil
}

// recordingNotifier captures enqueued messages instead of sending.
type recordingNotifier struct {
	messages []mailer.Message
}

func (r *recordingNotifier) Enqueue(msg mailer.Message) bool {
	r.messages = append(r.messages, msg)
	return true
}

func setupContactRouter(repo Repository, players player.Repository, mail Notifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	controller := NewController(repo, players, mail)
	r.POST("/api/players/:slug/contact", controller.SubmitContact)
	return r
}

func postContact(t *testing.T, r *gin.Engine, slug string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/players/"+slug+"/contact", bytes.NewBuffer(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitContact(t *testing.T) {
	t.Run("SlugMismatch", func(t *testing.T) {
		repo := &fakeRepository{}
		mail := &recordingNotifier{}
		r := setupContactRouter(repo, &fakePlayerRepository{}, mail)

		w := postContact(t, r, "john-doe", Submission{
			PlayerSlug: "someone-else",
			Name:       "Scout A",
			Role:       "scout",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, repo.items, "mismatched submission must not be written")
		assert.Empty(t, mail.messages)
	})

	t.Run("PlayerWithoutContactEmail", func(t *testing.T) {
		repo := &fakeRepository{}
		players := &fakePlayerRepository{players: map[string]*player.Player{
			"john-doe": {Slug: "john-doe", Name: "John Doe", Position: "Forward"},
		}}
		mail := &recordingNotifier{}
		r := setupContactRouter(repo, players, mail)

		w := postContact(t, r, "john-doe", Submission{
			PlayerSlug: "john-doe",
			Name:       "Scout A",
			Role:       "scout",
			Message:    "Interested",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
		require.Len(t, repo.items, 1)
		assert.Empty(t, mail.messages, "no notification without a contact email")
	})

	t.Run("PlayerMissing", func(t *testing.T) {
		// The target player not existing is not an error: the
		// submission is still received.
		repo := &fakeRepository{}
		mail := &recordingNotifier{}
		r := setupContactRouter(repo, &fakePlayerRepository{}, mail)

		w := postContact(t, r, "ghost", Submission{
			PlayerSlug: "ghost",
			Name:       "Scout A",
			Role:       "scout",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		require.Len(t, repo.items, 1)
		assert.Empty(t, mail.messages)
	})

	t.Run("PlayerWithContactEmail", func(t *testing.T) {
		repo := &fakeRepository{}
		players := &fakePlayerRepository{players: map[string]*player.Player{
			"john-doe": {Slug: "john-doe", Name: "John Doe", Position: "Forward", ContactEmail: "coach@example.com"},
		}}
		mail := &recordingNotifier{}
		r := setupContactRouter(repo, players, mail)

		before := time.Now().UTC()
		w := postContact(t, r, "john-doe", Submission{
			PlayerSlug: "john-doe",
			Name:       "Scout A",
			Role:       "scout",
			Country:    "Spain",
			Message:    "Interested",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

		require.Len(t, repo.items, 1)
		stored := repo.items[0]
		assert.Equal(t, "Scout A", stored.Name)
		assert.False(t, stored.SubmittedAt.Before(before.Truncate(time.Second)))

		require.Len(t, mail.messages, 1)
		msg := mail.messages[0]
		assert.Equal(t, "coach@example.com", msg.To)
		assert.Equal(t, "New Contact/Trial Request for John Doe", msg.Subject)
		assert.Contains(t, msg.Body, "Name: Scout A")
		assert.Contains(t, msg.Body, "Role: scout")
		assert.Contains(t, msg.Body, "Club: -")
		assert.Contains(t, msg.Body, "Email: -")
		assert.Contains(t, msg.Body, "WhatsApp: -")
		assert.Contains(t, msg.Body, "Country: Spain")
		assert.Contains(t, msg.Body, "Message:\nInterested")
		assert.Contains(t, msg.Body, "Submitted at: ")
		assert.Contains(t, msg.Body, " UTC")
	})

	t.Run("StoreFailure", func(t *testing.T) {
		repo := &fakeRepository{createErr: errors.New("store unavailable")}
		players := &fakePlayerRepository{players: map[string]*player.Player{
			"john-doe": {Slug: "john-doe", Name: "John Doe", ContactEmail: "coach@example.com"},
		}}
		mail := &recordingNotifier{}
		r := setupContactRouter(repo, players, mail)

		w := postContact(t, r, "john-doe", Submission{
			PlayerSlug: "john-doe",
			Name:       "Scout A",
			Role:       "scout",
		})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Empty(t, mail.messages, "no notification when persistence fails")
	})

	t.Run("InvalidEmail", func(t *testing.T) {
		repo := &fakeRepository{}
		mail := &recordingNotifier{}
		r := setupContactRouter(repo, &fakePlayerRepository{}, mail)

		w := postContact(t, r, "john-doe", map[string]string{
			"player_slug": "john-doe",
			"name":        "Scout A",
			"role":        "scout",
			"email":       "not-an-email",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, repo.items)
	})
}

func TestNotificationBody(t *testing.T) {
	sub := Submission{
		PlayerSlug:  "john-doe",
		Name:        "Scout A",
		Role:        "scout",
		ClubName:    "FC Example",
		Email:       "scout@example.com",
		WhatsApp:    "+34123456789",
		Country:     "Spain",
		Message:     "Interested in a trial.",
		SubmittedAt: time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC),
	}

	body := notificationBody(sub)

	expected := "Name: Scout A\n" +
		"Role: scout\n" +
		"Club: FC Example\n" +
		"Email: scout@example.com\n" +
		"WhatsApp: +34123456789\n" +
		"Country: Spain\n" +
		"\n" +
		"Message:\nInterested in a trial.\n" +
		"\n" +
		"Submitted at: 2024-05-01T12:30:00 UTC"
	assert.Equal(t, expected, body)
}

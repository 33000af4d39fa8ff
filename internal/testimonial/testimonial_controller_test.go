package testimonial

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepository struct {
	items []Testimonial
}

func (f *fakeRepository) Create(_ context.Context, t *Testimonial) error {
	f.items = append(f.items, *t)
	return nil
}

func (f *fakeRepository) ListBySlug(_ context.Context, slug string) ([]Testimonial, error) {
	result := []Testimonial{}
	for _, t := range f.items {
		if t.PlayerSlug == slug {
			result = append(result, t)
		}
	}
	return result, nil
}

func setupTestimonialRouter(repo Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	controller := NewController(repo)
	r.GET("/api/players/:slug/testimonials", controller.ListTestimonials)
	r.POST("/api/players/:slug/testimonials", controller.AddTestimonial)
	return r
}

func TestAddTestimonial(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo := &fakeRepository{}
		r := setupTestimonialRouter(repo)

		body, _ := json.Marshal(Testimonial{
			PlayerSlug: "john-doe",
			Author:     "Coach B",
			Role:       "coach",
			Quote:      "Great attitude.",
		})
		req := httptest.NewRequest(http.MethodPost, "/api/players/john-doe/testimonials", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp Testimonial
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Great attitude.", resp.Quote)
		require.Len(t, repo.items, 1)
	})

	t.Run("SlugMismatch", func(t *testing.T) {
		repo := &fakeRepository{}
		r := setupTestimonialRouter(repo)

		body, _ := json.Marshal(Testimonial{
			PlayerSlug: "someone-else",
			Quote:      "Should not be stored.",
		})
		req := httptest.NewRequest(http.MethodPost, "/api/players/john-doe/testimonials", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, repo.items, "mismatched testimonial must not be written")
	})

	t.Run("MissingQuote", func(t *testing.T) {
		repo := &fakeRepository{}
		r := setupTestimonialRouter(repo)

		body, _ := json.Marshal(map[string]string{"player_slug": "john-doe"})
		req := httptest.NewRequest(http.MethodPost, "/api/players/john-doe/testimonials", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, repo.items)
	})
}

func TestListTestimonials(t *testing.T) {
	repo := &fakeRepository{items: []Testimonial{
		{PlayerSlug: "john-doe", Author: "Coach B", Quote: "Great attitude."},
		{PlayerSlug: "other", Author: "Scout C", Quote: "Quick feet."},
	}}
	r := setupTestimonialRouter(repo)

	t.Run("FiltersBySlug", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/players/john-doe/testimonials", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp []Testimonial
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp, 1)
		assert.Equal(t, "Coach B", resp[0].Author)
	})

	t.Run("EmptyIsArray", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/players/nobody/testimonials", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})
}

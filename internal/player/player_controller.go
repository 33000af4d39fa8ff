package player

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openpitch/playerpage/internal/store"
	"github.com/openpitch/playerpage/pkg/responses"
	"github.com/openpitch/playerpage/pkg/validator"
)

// Controller handles player profile HTTP requests.
type Controller struct {
	repo Repository
}

// NewController creates a new player controller.
func NewController(repo Repository) *Controller {
	return &Controller{repo: repo}
}

// CreatePlayer godoc
// @Summary Create a player profile
// @Description Creates a landing page profile. The slug must be lowercase letters, numbers and dashes, and unique.
// @Tags Players
// @Accept json
// @Produce json
// @Param player body Player true "Player profile"
// @Success 201 {object} Player
// @Failure 400 {object} responses.ErrorResponse "Invalid slug or payload"
// @Failure 409 {object} responses.ErrorResponse "Slug already exists"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /players [post]
func (pc *Controller) CreatePlayer(c *gin.Context) {
	var p Player
	if err := c.ShouldBindJSON(&p); err != nil {
		responses.ValidationError(c, "Validation failed", validator.ParseError(err))
		return
	}

	if !ValidSlug(p.Slug) {
		responses.BadRequest(c, "Invalid slug. Use lowercase letters, numbers and dashes.")
		return
	}

	if p.HighlightTitle == "" {
		p.HighlightTitle = DefaultHighlightTitle
	}

	// Friendly conflict on the common path. Concurrent creations that
	// slip past this check still collide on the unique slug index below.
	existing, err := pc.repo.GetBySlug(c.Request.Context(), p.Slug)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		slog.Error("failed to check slug uniqueness", "slug", p.Slug, "error", err)
		responses.InternalError(c)
		return
	}
	if existing != nil {
		responses.Conflict(c, "Slug already exists")
		return
	}

	if err := pc.repo.Create(c.Request.Context(), &p); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			responses.Conflict(c, "Slug already exists")
			return
		}
		slog.Error("failed to create player", "slug", p.Slug, "error", err)
		responses.InternalError(c)
		return
	}

	c.JSON(http.StatusCreated, p)
}

// GetPlayer godoc
// @Summary Get a player profile
// @Description Returns the profile for the given slug.
// @Tags Players
// @Produce json
// @Param slug path string true "Player slug"
// @Success 200 {object} Player
// @Failure 404 {object} responses.ErrorResponse "Player not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /players/{slug} [get]
func (pc *Controller) GetPlayer(c *gin.Context) {
	slug := c.Param("slug")

	p, err := pc.repo.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			responses.NotFound(c, "Player")
			return
		}
		slog.Error("failed to fetch player", "slug", slug, "error", err)
		responses.InternalError(c)
		return
	}

	c.JSON(http.StatusOK, p)
}

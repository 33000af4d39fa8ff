package testimonial

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openpitch/playerpage/pkg/responses"
	"github.com/openpitch/playerpage/pkg/validator"
)

// Controller handles testimonial HTTP requests.
type Controller struct {
	repo Repository
}

// NewController creates a new testimonial controller.
func NewController(repo Repository) *Controller {
	return &Controller{repo: repo}
}

// ListTestimonials godoc
// @Summary List testimonials for a player
// @Description Returns every testimonial referencing the player slug, possibly empty.
// @Tags Testimonials
// @Produce json
// @Param slug path string true "Player slug"
// @Success 200 {array} Testimonial
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /players/{slug}/testimonials [get]
func (tc *Controller) ListTestimonials(c *gin.Context) {
	slug := c.Param("slug")

	list, err := tc.repo.ListBySlug(c.Request.Context(), slug)
	if err != nil {
		slog.Error("failed to list testimonials", "slug", slug, "error", err)
		responses.InternalError(c)
		return
	}

	c.JSON(http.StatusOK, list)
}

// AddTestimonial godoc
// @Summary Add a testimonial for a player
// @Description Stores a testimonial. The body's player_slug must match the path slug.
// @Tags Testimonials
// @Accept json
// @Produce json
// @Param slug path string true "Player slug"
// @Param testimonial body Testimonial true "Testimonial"
// @Success 200 {object} Testimonial
// @Failure 400 {object} responses.ErrorResponse "player_slug mismatch or invalid payload"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /players/{slug}/testimonials [post]
func (tc *Controller) AddTestimonial(c *gin.Context) {
	slug := c.Param("slug")

	var t Testimonial
	if err := c.ShouldBindJSON(&t); err != nil {
		responses.ValidationError(c, "Validation failed", validator.ParseError(err))
		return
	}

	// Request-time consistency check; nothing has been written yet.
	if t.PlayerSlug != slug {
		responses.BadRequest(c, "player_slug mismatch")
		return
	}

	if err := tc.repo.Create(c.Request.Context(), &t); err != nil {
		slog.Error("failed to store testimonial", "slug", slug, "error", err)
		responses.InternalError(c)
		return
	}

	c.JSON(http.StatusOK, t)
}

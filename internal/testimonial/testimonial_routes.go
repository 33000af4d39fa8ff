package testimonial

import (
	"github.com/gin-gonic/gin"

	"github.com/openpitch/playerpage/internal/store"
)

// RegisterRoutes wires the testimonial endpoints onto the API group.
func RegisterRoutes(api *gin.RouterGroup, db *store.Store) {
	repo := NewRepository(db)
	controller := NewController(repo)

	api.GET("/players/:slug/testimonials", controller.ListTestimonials)
	api.POST("/players/:slug/testimonials", controller.AddTestimonial)
}

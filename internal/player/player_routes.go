package player

import (
	"github.com/gin-gonic/gin"

	"github.com/openpitch/playerpage/internal/store"
)

// RegisterRoutes wires the player endpoints onto the API group.
func RegisterRoutes(api *gin.RouterGroup, db *store.Store) {
	repo := NewRepository(db)
	controller := NewController(repo)

	api.POST("/players", controller.CreatePlayer)
	api.GET("/players/:slug", controller.GetPlayer)
}

package contact

import (
	"github.com/gin-gonic/gin"

	"github.com/openpitch/playerpage/internal/player"
	"github.com/openpitch/playerpage/internal/store"
)

// RegisterRoutes wires the contact endpoint onto the API group.
func RegisterRoutes(api *gin.RouterGroup, db *store.Store, mail Notifier) {
	repo := NewRepository(db)
	players := player.NewRepository(db)
	controller := NewController(repo, players, mail)

	api.POST("/players/:slug/contact", controller.SubmitContact)
}

package routes

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/openpitch/playerpage/internal/contact"
	"github.com/openpitch/playerpage/internal/middleware"
	"github.com/openpitch/playerpage/internal/player"
	"github.com/openpitch/playerpage/internal/store"
	"github.com/openpitch/playerpage/internal/testimonial"
)

// SetupRoutes builds the gin engine with all endpoints registered.
func SetupRoutes(db *store.Store, mail contact.Notifier) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default()) // allows all origins, GET/POST/PUT
	r.Use(middleware.RequestID())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Player Landing Backend running"})
	})

	r.GET("/test", testDatabase(db))

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := r.Group("/api")
	player.RegisterRoutes(api, db)
	testimonial.RegisterRoutes(api, db)
	contact.RegisterRoutes(api, db, mail)

	return r
}

// testDatabase reports whether the document store is reachable, which
// connection env vars are present, and a sample of collection names.
func testDatabase(db *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp := gin.H{
			"backend":           "running",
			"database":          "not available",
			"database_url":      envPresence("DATABASE_URL"),
			"database_name":     envPresence("DATABASE_NAME"),
			"connection_status": "not connected",
			"collections":       []string{},
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			resp["database"] = "error: " + err.Error()
			c.JSON(http.StatusOK, resp)
			return
		}

		resp["database"] = "connected"
		resp["connection_status"] = "connected"

		if names, err := db.ListCollections(ctx); err == nil {
			if len(names) > 10 {
				names = names[:10]
			}
			resp["collections"] = names
		}

		c.JSON(http.StatusOK, resp)
	}
}

func envPresence(key string) string {
	if os.Getenv(key) != "" {
		return "set"
	}
	return "not set"
}

package router

import (
	"github.com/gin-gonic/gin"

	"refbase.app/api-server/internal/http/handler"
	"refbase.app/api-server/internal/store"
)

// SetupRoutes mounts the health endpoint and the uniform resource surface.
func SetupRoutes(router *gin.Engine, stores *store.Stores) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	handler.Countries(stores.Countries()).Register(router.Group("/countries"))
	handler.Currencies(stores.Currencies()).Register(router.Group("/currencies"))
	handler.Languages(stores.Languages()).Register(router.Group("/languages"))
	handler.Cities(stores.Cities()).Register(router.Group("/cities"))
	handler.Locations(stores.Locations()).Register(router.Group("/locations"))
	handler.Organizations(stores.Organizations()).Register(router.Group("/organizations"))
	handler.Contacts(stores.Contacts()).Register(router.Group("/contacts"))
	handler.Users(stores.Users()).Register(router.Group("/users"))
}

package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	JoinQueue(c *ginext.Context)
	GetQueue(c *ginext.Context)
	AdvanceEntry(c *ginext.Context)
	CancelEntry(c *ginext.Context)
	ListShops(c *ginext.Context)
	GetShop(c *ginext.Context)
	CreateShop(c *ginext.Context)
	UpdateShop(c *ginext.Context)
	ListServices(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Catalog
		api.GET("/shops", h.ListShops)
		api.GET("/shops/:id", h.GetShop)
		api.POST("/shops", h.CreateShop)
		api.PUT("/shops/:id", h.UpdateShop)
		api.GET("/services", h.ListServices)

		// Queue
		api.POST("/shops/:id/queue", h.JoinQueue)
		api.GET("/shops/:id/queue", h.GetQueue)
		api.POST("/shops/:id/queue/:entry_id/advance", h.AdvanceEntry)
		api.POST("/shops/:id/queue/:entry_id/cancel", h.CancelEntry)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}

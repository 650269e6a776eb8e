package router

import (
	"github.com/wb-go/wbf/ginext"

	"github.com/aliskhannn/task-notifier/internal/api/handlers/notification"
	"github.com/aliskhannn/task-notifier/internal/middlewares"
)

func New(handler *notification.Handler, allowedOrigins []string) *ginext.Engine {
	e := ginext.New()
	e.Use(middlewares.CORSMiddleware(allowedOrigins))
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	api := e.Group("/api/notifications", middlewares.Identity())
	{
		api.GET("", handler.GetAll)
		api.PATCH("/:id/read", handler.MarkAsRead)
	}

	// creation comes from other backend services and names the target user in the body
	e.POST("/api/notifications", handler.Create)

	e.GET("/ws/notifications", middlewares.Identity(), handler.Subscribe)

	return e
}

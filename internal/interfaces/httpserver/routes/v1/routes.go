package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/oshaneheath-star/Poster-collection-app/internal/interfaces/httpserver/handlers"
)

// Routes encapsulates API route registration.
type Routes struct {
	handlers *handlers.Provider
}

func NewRoutes(provider *handlers.Provider) *Routes {
	return &Routes{handlers: provider}
}

// Register attaches all poster routes under the /api prefix.
func (r *Routes) Register(router gin.IRouter) {
	group := router.Group("/api")
	group.GET("", r.handlers.Poster.Root)
	group.GET("/", r.handlers.Poster.Root)

	group.POST("/posters", r.handlers.Poster.Create)
	group.GET("/posters", r.handlers.Poster.List)
	group.GET("/posters/:id", r.handlers.Poster.Get)
	group.PUT("/posters/:id", r.handlers.Poster.Update)
	group.DELETE("/posters/:id", r.handlers.Poster.Delete)

	group.POST("/extract-date", r.handlers.Poster.ExtractDate)
}

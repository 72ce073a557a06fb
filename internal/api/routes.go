package api

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, h *Handler) {
	api := r.Group("/api")
	{
		api.GET("/health", health)
		api.POST("/render", h.render)
		api.GET("/qr", qrHandler)
	}
}

// NewEngine returns a gin engine with recovery, request logging and the menucard routes.
func NewEngine(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(h.log))
	RegisterRoutes(r, h)
	return r
}

package http

import "github.com/gin-gonic/gin"

// Register mounts the job routes on rg. admin guards every mutation.
func (h *Handler) Register(rg *gin.RouterGroup, admin gin.HandlerFunc) {
	rg.POST("", admin, h.create)
	rg.GET("", h.list)
	rg.GET("/:id", h.get)
	rg.PATCH("/:id", admin, h.update)
	rg.DELETE("/:id", admin, h.delete)
}

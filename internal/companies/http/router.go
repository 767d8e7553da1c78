package http

import "github.com/gin-gonic/gin"

// Register mounts the company routes on rg. admin guards every mutation.
func (h *Handler) Register(rg *gin.RouterGroup, admin gin.HandlerFunc) {
	rg.POST("", admin, h.create)
	rg.GET("", h.list)
	rg.GET("/:handle", h.get)
	rg.PATCH("/:handle", admin, h.update)
	rg.DELETE("/:handle", admin, h.delete)
}

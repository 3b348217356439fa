package auth

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterPublicRoutes(api *gin.RouterGroup) {
	api.POST("/register", h.Register)
	api.POST("/login", h.Login)
}

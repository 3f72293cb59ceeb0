package wishlist

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	wishlists := r.Group("/wishlist")
	{
		wishlists.GET("", handler.List)
		wishlists.POST("/items/:productId/toggle", handler.Toggle)
	}
}

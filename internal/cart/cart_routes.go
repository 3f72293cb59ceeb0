package cart

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	carts := r.Group("/cart")
	{
		carts.GET("", handler.Detail)
		carts.DELETE("", handler.Clear)

		items := carts.Group("/items/:productId")
		{
			items.POST("", handler.AddItem)
			items.PATCH("", handler.UpdateQuantity)
			items.DELETE("", handler.RemoveItem)
		}
	}
}

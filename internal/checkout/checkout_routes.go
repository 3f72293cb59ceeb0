package checkout

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	checkout := r.Group("/checkout")
	{
		checkout.GET("", handler.State)
		checkout.GET("/summary", handler.Summary)

		checkout.POST("/address", handler.SubmitAddress)
		checkout.POST("/address/change", handler.ChangeAddress)

		checkout.POST("/coupon", handler.ApplyCoupon)
		checkout.DELETE("/coupon", handler.RemoveCoupon)

		checkout.POST("/order", handler.PlaceOrder)
	}
}

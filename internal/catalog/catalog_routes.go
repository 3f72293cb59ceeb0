package catalog

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	products := r.Group("/products")
	{
		products.GET("", handler.List)
		products.GET("/:id", handler.Detail)
	}

	r.GET("/categories", handler.Categories)
	r.GET("/banners", handler.Banners)
}

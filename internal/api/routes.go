package api

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.GET("/health", health)
		api.POST("/login", login)

		auth := api.Group("", requireAuth())
		{
			auth.GET("/detect", detectHandler)
			auth.POST("/generate", generateHandler)
			auth.GET("/download/:name", downloadHandler)
		}
	}
}

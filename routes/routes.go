package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vikalpis/scroll-app/handlers"
)

func InitRouter(h *handlers.Handler) *gin.Engine {
	r := gin.Default()

	// CORS first, before any route.
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	r.MaxMultipartMemory = 100 << 20

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.POST("/auth/register", h.Register)
		api.POST("/auth/login", h.Login)

		api.GET("/videos", h.ListVideos)
		api.POST("/videos", h.RequireSession(), h.CreateVideo)

		api.POST("/media/upload", h.RequireSession(), h.UploadMedia)
	}

	return r
}

package router

import (
	"huffman_go/internal/handler"

	"github.com/gin-gonic/gin"
)

type Dependencies struct {
	ArtifactHandler *handler.ArtifactHandler
}

func Register(r *gin.Engine, d Dependencies) {
	// 공용 라우트
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	// v1 그룹
	v1 := r.Group("/api/v1")
	{
		artifacts := v1.Group("/artifacts")
		{
			artifacts.POST("", d.ArtifactHandler.Create)
			artifacts.GET("", d.ArtifactHandler.List)
			artifacts.GET("/:id", d.ArtifactHandler.GetByID)
			artifacts.GET("/:id/codes", d.ArtifactHandler.Codes)
			artifacts.GET("/:id/content", d.ArtifactHandler.Content)
		}
		v1.POST("/decode", d.ArtifactHandler.Decode)
		v1.POST("/stats", d.ArtifactHandler.Stats)
	}
}

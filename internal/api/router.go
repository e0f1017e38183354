package api

import (
	"github.com/gin-gonic/gin"

	"go-debate/internal/config"
	"go-debate/internal/debate"
)

func SetupRouter(cfg *config.Config, engine *debate.Engine) *gin.Engine {
	r := gin.Default()

	group := r.Group(cfg.Server.Subpath)
	{
		group.GET("/health", healthHandler)
		group.GET("/config", configHandler(cfg))
		group.POST("/chat", ChatHandler(engine))
	}
	return r
}

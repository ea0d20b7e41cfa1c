package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RouterConfig はルーターの構築に必要なハンドラーと設定です。
type RouterConfig struct {
	UISpecHandler *UISpecHandler
	AllowOrigins  []string
}

// NewRouter は CORS とルーティングを設定した gin エンジンを作成します。
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	corsCfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "X-Requested-With"},
	}
	if len(cfg.AllowOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowOrigins
	}
	router.Use(cors.New(corsCfg))

	router.GET("/healthcheck", HealthCheck)

	api := router.Group("/api")
	{
		api.POST("/ui-spec", cfg.UISpecHandler.Generate)
		api.GET("/icons", ListIcons)
		api.GET("/icons/:name", GetIcon)
	}

	return router
}

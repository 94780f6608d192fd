package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"rentscope/server/internal/engine"
)

func SetupRoutes(router *gin.Engine, eng *engine.Engine, logger *logrus.Logger) {
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "OPTIONS"},
		AllowHeaders:    []string{"*"},
	}))

	handler := NewHandler(eng, logger)

	api := router.Group("/api")
	{
		api.GET("/options", handler.GetFormOptions)
		api.GET("/search", handler.Search)
		api.GET("/search/geojson", handler.SearchGeoJSON)
		api.GET("/regions", handler.GetRegions)
		api.GET("/health", handler.Health)
	}
}

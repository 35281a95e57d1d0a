package handlers

import "github.com/gin-gonic/gin"

type Router struct {
	handler *Handler
}

func NewRouter(handler *Handler) *Router {
	return &Router{handler: handler}
}

func (r *Router) RegisterRoutes(engine *gin.Engine) {
	engine.GET("/healthz", r.handler.health)

	api := engine.Group("/api")
	dictators := api.Group("/dictators")
	dictators.GET("", r.handler.listDictators)
	dictators.GET("/:id", r.handler.getDictator)
	api.GET("/achievements", r.handler.listAchievements)

	seed := api.Group("/init")
	seed.POST("/dictator", r.handler.createDictator)
	seed.POST("/dictator/:id/achievement", r.handler.createAchievement)
	seed.POST("/sample-data", r.handler.initSampleData)
}

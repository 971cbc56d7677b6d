package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mindease/mindease/internal"
	"github.com/mindease/mindease/internal/storage"
)

type App interface {
	Logger() internal.Logger
	MoodRepo() storage.MoodRepository
	UserRepo() storage.UserRepository
}

// NewRouter wires middleware and the journal routes.
func NewRouter(app App) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.Default())
	r.Use(RequestIDMiddleware(app.Logger()))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.POST("/api/auth/login", PostLogin(app))
	r.PUT("/api/user", PutUser(app))
	r.GET("/api/moods", GetMoods(app))
	r.POST("/api/moods", PostMood(app))

	return r
}

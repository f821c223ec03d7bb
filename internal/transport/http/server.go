package http

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/bidchat/bidchat-server/internal/auth"
	"github.com/bidchat/bidchat-server/internal/config"
	"github.com/bidchat/bidchat-server/internal/core"
	"github.com/bidchat/bidchat-server/internal/store"
)

// NewServer builds the HTTP server: REST API, uploads, and the WebSocket
// endpoint feeding the hub.
func NewServer(hub *core.Hub, authService *auth.Service, st store.Store, cfg *config.Config, logger *zerolog.Logger) *stdhttp.Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), LoggerMiddleware(logger))

	apiHandlers := NewAPIHandlers(authService, st, logger)
	postHandlers := NewPostHandlers(st, cfg.UploadDir, logger)

	router.GET("/health", healthHandler)

	api := router.Group("/api")
	{
		api.POST("/register", apiHandlers.Register)
		api.POST("/login", apiHandlers.Login)
		api.GET("/posts", postHandlers.ListPosts)
		api.GET("/posts/:id", postHandlers.GetPost)

		authorized := api.Group("", AuthMiddleware(authService, logger))
		{
			authorized.GET("/users", apiHandlers.ListUsers)
			authorized.POST("/posts", postHandlers.CreatePost)
		}
	}

	if cfg.UploadDir != "" {
		router.Static("/uploads", cfg.UploadDir)
	}

	router.GET("/ws", gin.WrapH(NewWSHandler(hub, cfg.WSMessageLimit, logger)))

	return &stdhttp.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}

func healthHandler(c *gin.Context) {
	c.String(stdhttp.StatusOK, "ok")
}

package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cellarhub/winestore/internal/config"
)

// RegisterHandlerFn receives the /api/v1 router group and attaches the
// application routes to it.
type RegisterHandlerFn func(router *gin.RouterGroup)

type Server struct {
	cfg    *config.Configuration
	router *gin.Engine
	srv    *http.Server
}

func NewServer(cfg *config.Configuration, registerHandlers RegisterHandlerFn) *Server {
	if cfg.Server.Mode == "prod" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.Use(ginzap.Ginzap(zap.L().Named("http"), time.RFC3339, true))
	router.Use(ginzap.RecoveryWithZap(zap.L().Named("http"), true))

	registerHandlers(router.Group("/api/v1"))

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})

	return &Server{
		cfg:    cfg,
		router: router,
	}
}

// Start runs the HTTP listener and blocks until the server is stopped
// or fails. A clean shutdown returns nil.
func (s *Server) Start(ctx context.Context) error {
	s.srv = &http.Server{
		Addr:        fmt.Sprintf(":%d", s.cfg.Server.HTTPPort),
		Handler:     s.router,
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	zap.S().Named("server").Infow("starting http server", "port", s.cfg.Server.HTTPPort, "mode", s.cfg.Server.Mode)
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Stop drains in-flight requests and shuts the listener down.
func (s *Server) Stop(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	zap.S().Named("server").Info("stopping http server")
	return s.srv.Shutdown(ctx)
}

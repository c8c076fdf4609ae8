// Package server provides the HTTP server of the wine collection
// manager.
//
// The server uses the Gin web framework and exposes the shell-facing
// API under /api/v1. It supports two modes: development and production.
//
// # Architecture Overview
//
//	┌───────────────────────────────────────────────────────────────┐
//	│                         HTTP Server                           │
//	├───────────────────────────────────────────────────────────────┤
//	│                       Middleware Stack                        │
//	│  ┌─────────────────────────────────────────────────────────┐  │
//	│  │  Logger (request/response logging via zap)              │  │
//	│  │  Recovery (panic recovery with zap logging)             │  │
//	│  └─────────────────────────────────────────────────────────┘  │
//	├───────────────────────────────────────────────────────────────┤
//	│                       Router (/api/v1)                        │
//	│  ┌─────────────────────────────────────────────────────────┐  │
//	│  │  Handlers (registered via callback)                     │  │
//	│  └─────────────────────────────────────────────────────────┘  │
//	└───────────────────────────────────────────────────────────────┘
//
// # Server Modes
//
// Development Mode (Mode = "dev"):
//   - Gin runs in debug mode
//
// Production Mode (Mode = "prod"):
//   - Gin runs in release mode
//
// # Server Lifecycle
//
// Creation:
//
//	srv := server.NewServer(cfg, func(router *gin.RouterGroup) {
//	    handler.Register(router)
//	})
//
// The callback receives a RouterGroup prefixed with /api/v1.
//
// Starting:
//
//	// Blocks until error or shutdown
//	err := srv.Start(ctx)
//
// Stopping:
//
//	srv.Stop(ctx)
//
// Performs graceful shutdown, waiting for in-flight requests to
// complete.
//
// # Middleware
//
// The server applies two middleware to all routes:
//
// Logger Middleware (ginzap.Ginzap):
//   - Logs method, path, query, IP, user-agent, latency, status code
//   - Uses zap structured logging with the "http" logger name
//
// Recovery Middleware (ginzap.RecoveryWithZap):
//   - Recovers from panics in handlers
//   - Logs panic details with stack trace
//   - Returns 500 Internal Server Error
//
// Unknown routes answer a JSON 404 body, never an empty response.
package server

// Learning Path Advisor Pro - Course Path Search and Recommendation Engine
// Copyright 2026 NeoAstra (neoastra303)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/neoastra303/learning-path-advisor-pro

// Package main is the entry point for the Learning Path Advisor server.
//
// The advisor models a course catalog as a prerequisite DAG and serves
// multi-criteria learning path searches, next-course recommendations and
// catalog browsing over a REST API.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: Load settings from environment variables and config files (Koanf v2)
//  2. Catalog: Load the course catalog (embedded seed or CATALOG_PATH file)
//  3. Graph: Build and validate the prerequisite DAG (cycles and dangling refs are fatal)
//  4. Engines: Path search and recommendation engines over the immutable graph
//  5. Cache: Single-flight TTL result cache with background sweeping
//  6. HTTP Server: Chi-routed REST API with CORS, rate limiting and Prometheus metrics
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest priority wins):
//   - Environment variables (HTTP_PORT, CATALOG_PATH, CACHE_TTL, LOG_LEVEL, ...)
//   - Config file (config.yaml, or CONFIG_PATH)
//   - Built-in defaults
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM:
//   - Stops accepting new connections
//   - Waits for in-flight requests to complete (configurable timeout)
//   - Stops the cache sweeper
//
// # Example Usage
//
// Run with the embedded catalog:
//
//	./advisor
//
// Run with a custom catalog and debug logging:
//
//	export CATALOG_PATH=/data/catalog.json
//	export LOG_LEVEL=debug
//	./advisor
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/neoastra303/learning-path-advisor-pro/internal/api"
	"github.com/neoastra303/learning-path-advisor-pro/internal/cache"
	"github.com/neoastra303/learning-path-advisor-pro/internal/catalog"
	"github.com/neoastra303/learning-path-advisor-pro/internal/config"
	"github.com/neoastra303/learning-path-advisor-pro/internal/cost"
	"github.com/neoastra303/learning-path-advisor-pro/internal/decision"
	"github.com/neoastra303/learning-path-advisor-pro/internal/graph"
	"github.com/neoastra303/learning-path-advisor-pro/internal/logging"
	"github.com/neoastra303/learning-path-advisor-pro/internal/metrics"
	"github.com/neoastra303/learning-path-advisor-pro/internal/pathfind"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		// Use default logger for config errors (config not yet available)
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize zerolog with configuration
	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("catalog_path", cfg.Catalog.Path).
		Dur("cache_ttl", cfg.Cache.TTL).
		Msg("Starting Learning Path Advisor")

	// Load the course catalog (embedded seed when no path configured)
	courses, err := catalog.LoadFile(cfg.Catalog.Path)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load course catalog")
	}

	// Build the prerequisite graph. A cyclic or inconsistent catalog is a
	// deployment error, not something to limp along with.
	g, err := graph.Build(courses)
	if err != nil {
		logging.Fatal().Err(err).Msg("Invalid course catalog")
	}
	logging.Info().
		Int("courses", g.Len()).
		Int("categories", len(g.Categories())).
		Msg("Course catalog loaded")

	metrics.AppInfo.WithLabelValues(api.Version, runtime.Version()).Set(1)
	metrics.CatalogCourses.Set(float64(g.Len()))

	// Engines share the immutable graph and are safe for concurrent use.
	logger := logging.Logger()
	pathEngine := pathfind.NewEngine(g, cost.NewModel(g), logger)
	decisionEngine := decision.NewEngine(g, logger)

	resultCache := cache.New(cfg.Cache.TTL, cfg.Cache.SweepInterval)
	defer resultCache.Close()

	handler := api.NewHandler(g, pathEngine, decisionEngine, resultCache, cfg)
	router := api.NewRouter(handler, api.NewChiMiddleware(&api.ChiMiddlewareConfig{
		CORSAllowedOrigins:   cfg.API.CORSOrigins,
		CORSAllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		CORSAllowedHeaders:   []string{"Content-Type", "X-Request-ID"},
		CORSAllowCredentials: false,
		CORSMaxAge:           86400,
		RateLimitRequests:    cfg.API.RateLimitReqs,
		RateLimitWindow:      cfg.API.RateLimitWindow,
		RequestTimeout:       cfg.API.RequestTimeout,
	}))

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	// Track uptime for the /metrics endpoint
	startTime := time.Now()
	uptimeDone := make(chan struct{})
	go func() {
		ticker := time.NewTicker(15 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				metrics.AppUptime.Set(time.Since(startTime).Seconds())
			case <-uptimeDone:
				return
			}
		}
	}()

	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case sig := <-sigCh:
		logging.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
	case err := <-errCh:
		logging.Error().Err(err).Msg("HTTP server failed")
	}

	close(uptimeDone)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("Graceful shutdown failed")
	} else {
		logging.Info().Msg("Server stopped cleanly")
	}
}

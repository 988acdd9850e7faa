// Copyright (c) 2024-2026 IT Help San Diego Inc.
// Licensed under BUSL-1.1 — See LICENSE for terms.
package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/pip-install-python/dash-improve-my-llms/internal/config"
	"github.com/pip-install-python/dash-improve-my-llms/internal/handlers"
	"github.com/pip-install-python/dash-improve-my-llms/internal/middleware"
	"github.com/pip-install-python/dash-improve-my-llms/internal/pagegraph"
	"github.com/pip-install-python/dash-improve-my-llms/internal/telemetry"
	"github.com/pip-install-python/dash-improve-my-llms/internal/visitstore"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	store, err := openVisitStore(cfg)
	if err != nil {
		slog.Error("Failed to open visit store", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	graph := pagegraph.Build(demoPages())
	slog.Info("Page graph built", "pages", len(graph.Pages()), "hidden", len(graph.HiddenPaths()))
	graphFn := func() *pagegraph.Graph { return graph }

	metrics := telemetry.NewMetrics()
	negotiator := middleware.NewNegotiator(cfg.Policy, graphFn, metrics)
	collector := middleware.NewVisitCollector(store)
	defer collector.Close()

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(gzip.Gzip(gzip.DefaultCompression))
	router.Use(middleware.RequestContext())
	router.Use(middleware.SecurityHeaders())
	router.Use(collector.Middleware())
	router.Use(negotiator.Handler())

	artifactsHandler := handlers.NewArtifactsHandler(graphFn, cfg.Policy, cfg.BaseURL, cfg.SiteName)
	healthHandler := handlers.NewHealthHandler(cfg.AppVersion, metrics, artifactsHandler.Cache)
	analyticsHandler := handlers.NewAnalyticsHandler(store)

	router.GET("/robots.txt", artifactsHandler.RobotsTxt)
	router.GET("/sitemap.xml", artifactsHandler.SitemapXML)
	router.GET("/llms.txt", artifactsHandler.LLMSTxt)
	router.GET("/llms-full.txt", artifactsHandler.LLMSFullTxt)
	router.GET("/page.json", artifactsHandler.PageJSON)
	router.GET("/architecture.txt", artifactsHandler.ArchitectureTxt)

	router.GET("/go/health", healthHandler.HealthCheck)
	router.GET("/api/analytics", analyticsHandler.Analytics)

	registerPageRoutes(router, graph, cfg.SiteName)

	addr := fmt.Sprintf("0.0.0.0:%s", cfg.Port)
	slog.Info("Starting server", "address", addr, "version", cfg.AppVersion, "site", cfg.SiteName)

	if err := router.Run(addr); err != nil {
		slog.Error("Server failed to start", "error", err)
		os.Exit(1)
	}
}

func openVisitStore(cfg *config.Config) (visitstore.Store, error) {
	if cfg.DatabaseURL != "" {
		return visitstore.NewPostgresStore(cfg.DatabaseURL)
	}
	slog.Info("Visit store using file backend", "path", cfg.VisitLogPath)
	return visitstore.NewFileStore(cfg.VisitLogPath)
}

// registerPageRoutes serves a minimal HTML rendering of each declared
// page so the demo is browsable without a frontend build.
func registerPageRoutes(router *gin.Engine, graph *pagegraph.Graph, siteName string) {
	for _, page := range graph.Pages() {
		if page.BuildErr != nil {
			slog.Warn("Skipping route for degraded page", "path", page.Path, "error", page.BuildErr)
			continue
		}
		p := page
		router.GET(p.Path, func(c *gin.Context) {
			c.Header("Content-Type", "text/html; charset=utf-8")
			c.String(http.StatusOK, renderPageHTML(p, siteName))
		})
	}
}

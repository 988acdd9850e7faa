// Copyright (c) 2024-2026 IT Help San Diego Inc.
// Licensed under BUSL-1.1 — See LICENSE for terms.
package handlers

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pip-install-python/dash-improve-my-llms/internal/telemetry"
)

type HealthHandler struct {
	StartTime  time.Time
	AppVersion string
	Metrics    *telemetry.Metrics
	Caches     []*telemetry.TTLCache[string]
}

func NewHealthHandler(appVersion string, metrics *telemetry.Metrics, caches ...*telemetry.TTLCache[string]) *HealthHandler {
	return &HealthHandler{
		StartTime:  time.Now(),
		AppVersion: appVersion,
		Metrics:    metrics,
		Caches:     caches,
	}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	cacheStats := make([]telemetry.CacheStats, 0, len(h.Caches))
	for _, cache := range h.Caches {
		cacheStats = append(cacheStats, cache.Stats())
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"runtime": "go",
		"version": h.AppVersion,
		"uptime":  time.Since(h.StartTime).String(),
		"memory": gin.H{
			"alloc_mb":       memStats.Alloc / 1024 / 1024,
			"sys_mb":         memStats.Sys / 1024 / 1024,
			"num_goroutines": runtime.NumGoroutine(),
		},
		"negotiation": h.Metrics.Snapshot(),
		"caches":      cacheStats,
	})
}

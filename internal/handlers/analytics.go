// Copyright (c) 2024-2026 IT Help San Diego Inc.
// Licensed under BUSL-1.1 — See LICENSE for terms.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pip-install-python/dash-improve-my-llms/internal/models"
	"github.com/pip-install-python/dash-improve-my-llms/internal/visitstore"
)

type AnalyticsHandler struct {
	Store visitstore.Store
}

func NewAnalyticsHandler(store visitstore.Store) *AnalyticsHandler {
	return &AnalyticsHandler{Store: store}
}

// Analytics reports aggregate visit stats plus the most recent visits.
// ?limit= bounds the recent list, defaulting to 50, capped at 500.
func (h *AnalyticsHandler) Analytics(c *gin.Context) {
	ctx := c.Request.Context()

	limit := 50
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = n
	}
	if limit > 500 {
		limit = 500
	}

	stats, err := h.Store.Stats(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch visit stats"})
		return
	}

	recent, err := h.Store.Recent(ctx, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recent visits"})
		return
	}
	if recent == nil {
		recent = []models.Visit{}
	}

	c.JSON(http.StatusOK, gin.H{
		"stats":  stats,
		"recent": recent,
	})
}

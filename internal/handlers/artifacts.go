// Copyright (c) 2024-2026 IT Help San Diego Inc.
// Licensed under BUSL-1.1 — See LICENSE for terms.

// Package handlers serves the machine-readable artifact surface plus
// the health and analytics APIs.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pip-install-python/dash-improve-my-llms/internal/artifacts"
	"github.com/pip-install-python/dash-improve-my-llms/internal/pagegraph"
	"github.com/pip-install-python/dash-improve-my-llms/internal/telemetry"
)

const (
	contentTypeText = "text/plain; charset=utf-8"
	contentTypeXML  = "application/xml; charset=utf-8"
)

type ArtifactsHandler struct {
	Graph    func() *pagegraph.Graph
	Policy   artifacts.Policy
	BaseURL  string
	SiteName string
	Cache    *telemetry.TTLCache[string]
}

func NewArtifactsHandler(graph func() *pagegraph.Graph, policy artifacts.Policy, baseURL, siteName string) *ArtifactsHandler {
	return &ArtifactsHandler{
		Graph:    graph,
		Policy:   policy,
		BaseURL:  baseURL,
		SiteName: siteName,
		Cache:    telemetry.NewTTLCache[string]("artifacts", 256, 5*time.Minute),
	}
}

// cached renders an artifact through the TTL cache. The sitemap is the
// only artifact whose output varies with time, and only via lastmod, so
// caching whole rendered bodies is safe.
func (h *ArtifactsHandler) cached(key string, render func() string) string {
	if body, ok := h.Cache.Get(key); ok {
		return body
	}
	body := render()
	h.Cache.Set(key, body)
	return body
}

func (h *ArtifactsHandler) RobotsTxt(c *gin.Context) {
	body := h.cached("robots", func() string {
		return artifacts.Robots(h.Graph(), h.Policy, h.BaseURL)
	})
	c.Data(http.StatusOK, contentTypeText, []byte(body))
}

func (h *ArtifactsHandler) SitemapXML(c *gin.Context) {
	body := h.cached("sitemap", func() string {
		return artifacts.Sitemap(h.Graph(), h.BaseURL, time.Now().UTC())
	})
	c.Data(http.StatusOK, contentTypeXML, []byte(body))
}

// LLMSTxt serves the artifact for one page. The page defaults to the
// root and can be selected with ?path=/some/page.
func (h *ArtifactsHandler) LLMSTxt(c *gin.Context) {
	path := c.DefaultQuery("path", "/")

	body := h.cached("llms:"+path, func() string {
		graph := h.Graph()
		page := graph.Page(path)
		if page == nil {
			return ""
		}
		text, err := artifacts.LLMSTxt(graph, page)
		if err != nil {
			return ""
		}
		return text
	})
	if body == "" {
		c.String(http.StatusNotFound, "no such page: %s", path)
		return
	}
	c.Data(http.StatusOK, contentTypeText, []byte(body))
}

func (h *ArtifactsHandler) LLMSFullTxt(c *gin.Context) {
	body := h.cached("llms-full", func() string {
		return artifacts.LLMSFullTxt(h.Graph(), h.SiteName)
	})
	c.Data(http.StatusOK, contentTypeText, []byte(body))
}

// PageJSON serves the structured description of one page, selected
// with ?path= and defaulting to the root.
func (h *ArtifactsHandler) PageJSON(c *gin.Context) {
	path := c.DefaultQuery("path", "/")

	page := h.Graph().Page(path)
	if page == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no such page", "path": path})
		return
	}
	doc, err := artifacts.PageJSON(page)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error(), "path": path})
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h *ArtifactsHandler) ArchitectureTxt(c *gin.Context) {
	body := h.cached("architecture", func() string {
		return artifacts.Architecture(h.Graph(), h.SiteName)
	})
	c.Data(http.StatusOK, contentTypeText, []byte(body))
}

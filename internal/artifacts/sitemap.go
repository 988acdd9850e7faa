// Copyright (c) 2024-2026 IT Help San Diego Inc.
// Licensed under BUSL-1.1 — See LICENSE for terms.
package artifacts

import (
	"fmt"
	"strings"
	"time"

	"github.com/pip-install-python/dash-improve-my-llms/internal/pagegraph"
)

type sitemapPage struct {
	Loc        string
	LastMod    string
	ChangeFreq string
	Priority   float64
}

// Sitemap renders sitemap.xml over the graph's visible pages, ordered
// by priority descending. An empty graph still yields a valid urlset
// envelope.
func Sitemap(g *pagegraph.Graph, baseURL string, now time.Time) string {
	base := strings.TrimRight(baseURL, "/")
	lastMod := now.Format("2006-01-02")

	var entries []sitemapPage
	for _, p := range g.VisiblePages() {
		entries = append(entries, sitemapPage{
			Loc:        base + p.Path,
			LastMod:    lastMod,
			ChangeFreq: p.ChangeFreq,
			Priority:   p.Priority,
		})
	}

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")
	for _, e := range entries {
		b.WriteString("  <url>\n")
		fmt.Fprintf(&b, "    <loc>%s</loc>\n", xmlEscape(e.Loc))
		fmt.Fprintf(&b, "    <lastmod>%s</lastmod>\n", e.LastMod)
		fmt.Fprintf(&b, "    <changefreq>%s</changefreq>\n", e.ChangeFreq)
		fmt.Fprintf(&b, "    <priority>%s</priority>\n", formatPriority(e.Priority))
		b.WriteString("  </url>\n")
	}
	b.WriteString("</urlset>\n")
	return b.String()
}

// formatPriority renders a priority with minimal decimals, matching the
// conventional sitemap style (1.0, 0.8, 0.55).
func formatPriority(p float64) string {
	s := fmt.Sprintf("%.2f", p)
	if strings.HasSuffix(s, "0") {
		s = s[:len(s)-1]
	}
	return s
}

func xmlEscape(s string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
	)
	return r.Replace(s)
}

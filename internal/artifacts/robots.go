// Copyright (c) 2024-2026 IT Help San Diego Inc.
// Licensed under BUSL-1.1 — See LICENSE for terms.
package artifacts

import (
	"fmt"
	"strings"

	"github.com/pip-install-python/dash-improve-my-llms/internal/botdetect"
	"github.com/pip-install-python/dash-improve-my-llms/internal/pagegraph"
)

// Robots renders robots.txt from the policy and the page graph. Each
// registered crawler gets its own User-agent stanza grouped by
// category; hidden pages are disallowed in every stanza regardless of
// the category allow flags.
func Robots(g *pagegraph.Graph, policy Policy, baseURL string) string {
	var b strings.Builder
	hidden := g.HiddenPaths()

	b.WriteString("# robots.txt — generated from the page graph\n\n")

	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	writeDisallows(&b, hidden, policy.DisallowedPaths)
	if policy.CrawlDelay > 0 {
		fmt.Fprintf(&b, "Crawl-delay: %d\n", policy.CrawlDelay)
	}
	b.WriteString("\n")

	registry := botdetect.Signatures()

	b.WriteString("# AI training crawlers\n")
	writeStanzas(&b, registry[botdetect.CategoryTraining], !policy.BlockAITraining, hidden, policy.DisallowedPaths)

	b.WriteString("# AI search crawlers\n")
	writeStanzas(&b, registry[botdetect.CategorySearch], policy.AllowAISearch, hidden, policy.DisallowedPaths)

	b.WriteString("# Traditional search crawlers\n")
	writeStanzas(&b, registry[botdetect.CategoryTraditional], policy.AllowTraditional, hidden, policy.DisallowedPaths)

	for _, rule := range policy.CustomRules {
		b.WriteString(rule)
		b.WriteString("\n")
	}
	if len(policy.CustomRules) > 0 {
		b.WriteString("\n")
	}

	if baseURL != "" {
		fmt.Fprintf(&b, "Sitemap: %s/sitemap.xml\n", strings.TrimRight(baseURL, "/"))
	}

	return b.String()
}

func writeStanzas(b *strings.Builder, sigs []botdetect.Signature, allowed bool, hidden, disallowed []string) {
	for _, sig := range sigs {
		fmt.Fprintf(b, "User-agent: %s\n", sig.Name)
		if allowed {
			b.WriteString("Allow: /\n")
			writeDisallows(b, hidden, disallowed)
		} else {
			b.WriteString("Disallow: /\n")
		}
		b.WriteString("\n")
	}
}

func writeDisallows(b *strings.Builder, hidden, disallowed []string) {
	for _, path := range hidden {
		fmt.Fprintf(b, "Disallow: %s\n", path)
	}
	for _, pattern := range disallowed {
		fmt.Fprintf(b, "Disallow: %s\n", pattern)
	}
}

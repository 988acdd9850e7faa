// Copyright (c) 2024-2026 IT Help San Diego Inc.
// Licensed under BUSL-1.1 — See LICENSE for terms.
package artifacts

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/pip-install-python/dash-improve-my-llms/internal/pagegraph"
)

// Architecture renders the aggregate architecture.txt report: per-page
// summaries plus app-wide component and callback statistics.
func Architecture(g *pagegraph.Graph, siteName string) string {
	var b strings.Builder
	header := fmt.Sprintf("%s — Application Architecture", siteName)
	b.WriteString(header + "\n")
	b.WriteString(strings.Repeat("=", utf8.RuneCountInString(header)) + "\n\n")

	pages := g.Pages()
	if len(pages) == 0 {
		b.WriteString("No pages registered.\n")
		return b.String()
	}

	typeCounts := make(map[string]int)
	callbacksByModule := make(map[string]int)
	totalComponents := 0
	totalCallbacks := 0

	b.WriteString("Pages\n-----\n\n")
	for _, page := range pages {
		name := page.Name
		if name == "" {
			name = page.Path
		}
		fmt.Fprintf(&b, "%s (%s)\n", name, page.Path)
		if page.BuildErr != nil {
			fmt.Fprintf(&b, "  [degraded: %v]\n\n", page.BuildErr)
			continue
		}
		if page.Hidden {
			b.WriteString("  [hidden from crawlers]\n")
		}
		if page.Description != "" {
			fmt.Fprintf(&b, "  %s\n", page.Description)
		}
		fmt.Fprintf(&b, "  Purpose: %s, %d components, %d callbacks, depth %d\n\n",
			page.Purpose, len(page.Components), len(page.Callbacks), page.MaxDepth)

		totalComponents += len(page.Components)
		totalCallbacks += len(page.Callbacks)
		for _, c := range page.Components {
			typeCounts[c.Type]++
		}
		for range page.Callbacks {
			callbacksByModule[modulesOf(page)]++
		}
	}

	b.WriteString("Component Types\n---------------\n\n")
	for _, line := range sortedCounts(typeCounts) {
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")

	if totalCallbacks > 0 {
		b.WriteString("Callbacks by Module\n-------------------\n\n")
		for _, line := range sortedCounts(callbacksByModule) {
			b.WriteString(line + "\n")
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Totals: %d pages, %d components, %d callbacks\n",
		len(pages), totalComponents, totalCallbacks)
	return b.String()
}

// modulesOf names the dominant component module of a page, used to
// attribute its callbacks in the module breakdown.
func modulesOf(page *pagegraph.Page) string {
	counts := make(map[string]int)
	for _, c := range page.Components {
		counts[c.Module]++
	}
	best, bestCount := "unknown", 0
	for module, count := range counts {
		if count > bestCount || (count == bestCount && module < best) {
			best, bestCount = module, count
		}
	}
	return best
}

// sortedCounts formats a count map as "name: n" lines, highest first,
// name ascending on ties, for deterministic report output.
func sortedCounts(counts map[string]int) []string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})
	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%s: %d", k, counts[k]))
	}
	return lines
}

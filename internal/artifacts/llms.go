// Copyright (c) 2024-2026 IT Help San Diego Inc.
// Licensed under BUSL-1.1 — See LICENSE for terms.
package artifacts

import (
	"fmt"
	"strings"

	"github.com/pip-install-python/dash-improve-my-llms/internal/pagegraph"
)

// LLMSTxt renders the llms.txt document for one page: purpose,
// component inventory, navigation and data-flow, in plain markdown
// readable without script execution.
func LLMSTxt(g *pagegraph.Graph, page *pagegraph.Page) (string, error) {
	if page == nil {
		return "", fmt.Errorf("page not registered")
	}
	if page.Hidden {
		return "", fmt.Errorf("page %s is hidden", page.Path)
	}
	if page.BuildErr != nil {
		return "", fmt.Errorf("page %s is degraded: %w", page.Path, page.BuildErr)
	}

	var b strings.Builder
	title := page.Name
	if title == "" {
		title = page.Path
	}
	fmt.Fprintf(&b, "# %s\n\n", title)
	if page.Description != "" {
		fmt.Fprintf(&b, "> %s\n\n", page.Description)
	}
	fmt.Fprintf(&b, "Path: %s\n", page.Path)
	fmt.Fprintf(&b, "Purpose: %s\n\n", page.Purpose)

	if len(page.Texts) > 0 {
		b.WriteString("## Key Content\n\n")
		for _, text := range page.Texts {
			fmt.Fprintf(&b, "- %s\n", text)
		}
		b.WriteString("\n")
	}

	writeComponentInventory(&b, page)
	writeNavigation(&b, page)
	writeDataFlow(&b, page)
	writeAppContext(&b, g, page)

	return b.String(), nil
}

// LLMSFullTxt concatenates the llms.txt of every visible page into the
// aggregate /llms-full.txt document.
func LLMSFullTxt(g *pagegraph.Graph, siteName string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s — full site reference\n\n", siteName)

	pages := g.VisiblePages()
	if len(pages) == 0 {
		b.WriteString("No pages registered.\n")
		return b.String()
	}

	for i, page := range pages {
		if i > 0 {
			b.WriteString("\n---\n\n")
		}
		section, err := LLMSTxt(g, page)
		if err != nil {
			continue
		}
		b.WriteString(section)
	}
	return b.String()
}

func writeComponentInventory(b *strings.Builder, page *pagegraph.Page) {
	if len(page.Components) == 0 {
		return
	}

	counts := make(map[string]int)
	var order []string
	for _, c := range page.Components {
		key := c.Module + "." + c.Type
		if counts[key] == 0 {
			order = append(order, key)
		}
		counts[key]++
	}

	b.WriteString("## Components\n\n")
	fmt.Fprintf(b, "%d components in total.\n\n", len(page.Components))
	for _, key := range order {
		fmt.Fprintf(b, "- %s ×%d\n", key, counts[key])
	}
	b.WriteString("\n")
}

func writeNavigation(b *strings.Builder, page *pagegraph.Page) {
	if len(page.NavLinks) == 0 {
		return
	}
	b.WriteString("## Navigation\n\n")
	for _, link := range page.NavLinks {
		fmt.Fprintf(b, "- [%s](%s)\n", link.Label, link.Href)
	}
	b.WriteString("\n")
}

func writeDataFlow(b *strings.Builder, page *pagegraph.Page) {
	if len(page.Callbacks) == 0 {
		return
	}
	b.WriteString("## Data Flow\n\n")
	fmt.Fprintf(b, "%d callbacks drive this page.\n\n", len(page.Callbacks))
	for _, edge := range page.Edges {
		fmt.Fprintf(b, "- %s -> %s\n", edge.From, edge.To)
	}
	b.WriteString("\n")
}

func writeAppContext(b *strings.Builder, g *pagegraph.Graph, page *pagegraph.Page) {
	b.WriteString("## Application Context\n\n")
	b.WriteString("Other pages in this application:\n\n")
	for _, other := range g.VisiblePages() {
		if other.Path == page.Path {
			continue
		}
		name := other.Name
		if name == "" {
			name = other.Path
		}
		fmt.Fprintf(b, "- %s (%s)\n", name, other.Path)
	}
}

// Copyright (c) 2024-2026 IT Help San Diego Inc.
// Licensed under BUSL-1.1 — See LICENSE for terms.
package pagegraph

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
)

// maxWalkDepth bounds the layout walk so a cyclic or pathological
// declaration cannot hang the build.
const maxWalkDepth = 25

// Sitemap priority constants, one per path-shape band.
const (
	priorityRoot      = 1.0
	priorityImportant = 0.8
	priorityDynamic   = 0.55
	priorityReports   = 0.5
	priorityDocs      = 0.45
	priorityDefault   = 0.4
)

// Page purposes inferred from the dominant role distribution.
const (
	PurposeInteractive   = "Interactive"
	PurposeDataInput     = "Data Input"
	PurposeVisualization = "Visualization"
	PurposeNavigation    = "Navigation"
	PurposeContent       = "Content"
)

// Build walks every declaration and produces the immutable page graph.
// A declaration that fails validation (duplicate component id, callback
// referencing an unknown component) yields a degraded page; the
// remaining pages build normally. Identical declarations always produce
// structurally identical graphs.
func Build(decls []Declaration) *Graph {
	g := &Graph{pages: make(map[string]*Page, len(decls))}

	for _, decl := range decls {
		page := buildPage(decl)
		if page.BuildErr != nil {
			slog.Warn("Page build degraded",
				"path", decl.Path,
				"error", page.BuildErr.Error(),
			)
		}
		if _, exists := g.pages[decl.Path]; exists {
			slog.Warn("Duplicate page path, keeping first declaration", "path", decl.Path)
			continue
		}
		g.pages[decl.Path] = page
		g.order = append(g.order, decl.Path)
	}

	sort.Strings(g.order)
	return g
}

func buildPage(decl Declaration) *Page {
	page := &Page{
		Path:        decl.Path,
		Name:        decl.Name,
		Description: decl.Description,
		Hidden:      decl.Hidden,
		Important:   decl.Important,
		Callbacks:   decl.Callbacks,
	}

	w := &walker{seen: make(map[string]bool)}
	if decl.Layout != nil {
		w.walk(decl.Layout, 0, false)
	}
	page.Components = w.components
	page.NavLinks = w.navLinks
	page.Texts = w.texts
	page.HiddenIDs = w.hiddenIDs
	page.MaxDepth = w.maxDepth

	if w.err != nil {
		page.BuildErr = w.err
		return page
	}

	if err := validateCallbacks(decl.Callbacks, w.seen); err != nil {
		page.BuildErr = err
		return page
	}

	page.Edges = deriveEdges(decl.Callbacks)
	page.Purpose = inferPurpose(page.Components, decl.Callbacks)
	page.Priority = inferPriority(decl.Path, decl.Important || hasImportantComponent(page.Components))
	page.ChangeFreq = inferChangeFreq(decl.Path)
	return page
}

type walker struct {
	components []Component
	navLinks   []NavLink
	texts      []string
	hiddenIDs  []string
	seen       map[string]bool
	maxDepth   int
	err        error
}

// walk visits the declaration tree depth-first, normalizing each node
// through the capability interfaces. Importance cascades downward.
func (w *walker) walk(n Node, depth int, important bool) {
	if w.err != nil || n == nil || depth > maxWalkDepth {
		return
	}
	if depth > w.maxDepth {
		w.maxDepth = depth
	}

	if m, ok := n.(importanceMarker); ok && m.important() {
		important = true
	}

	// Hidden subtrees are dropped from artifacts entirely; only the
	// root id stays registered so callback validation still works.
	if h, ok := n.(hiddenMarker); ok && h.hidden() {
		if ident, ok := n.(Identifiable); ok && ident.ID() != "" {
			w.seen[ident.ID()] = true
			w.hiddenIDs = append(w.hiddenIDs, ident.ID())
		}
		return
	}

	comp := Component{
		Type:      n.Type(),
		Module:    n.Module(),
		Important: important,
		Depth:     depth,
	}

	var children []Node
	if c, ok := n.(Container); ok {
		children = c.Children()
	}
	comp.Role = classifyRole(comp.Type, len(children) > 0)

	if ident, ok := n.(Identifiable); ok && ident.ID() != "" {
		comp.ID = ident.ID()
		if w.seen[comp.ID] {
			w.err = fmt.Errorf("duplicate component id %q", comp.ID)
			return
		}
		w.seen[comp.ID] = true
	}

	if ph, ok := n.(PropertyHolder); ok && len(ph.Properties()) > 0 {
		comp.Properties = ph.Properties()
	}

	if th, ok := n.(TextHolder); ok {
		comp.Text = th.Text()
	}

	w.components = append(w.components, comp)
	w.collectText(comp)
	w.collectNavLink(comp)

	for _, child := range children {
		w.walk(child, depth+1, important)
	}
}

func (w *walker) collectText(comp Component) {
	text := strings.TrimSpace(comp.Text)
	if text == "" {
		return
	}
	if comp.Important {
		text = "[IMPORTANT] " + text
	}
	w.texts = append(w.texts, text)
}

func (w *walker) collectNavLink(comp Component) {
	if comp.Role != RoleNavigation {
		return
	}
	href, _ := comp.Properties["href"].(string)
	if href == "" {
		return
	}
	label := strings.TrimSpace(comp.Text)
	if label == "" {
		label = href
	}
	w.navLinks = append(w.navLinks, NavLink{Label: label, Href: href})
}

func validateCallbacks(callbacks []Callback, known map[string]bool) error {
	for i, cb := range callbacks {
		deps := make([]Dependency, 0, len(cb.Inputs)+len(cb.Outputs)+len(cb.States))
		deps = append(deps, cb.Inputs...)
		deps = append(deps, cb.Outputs...)
		deps = append(deps, cb.States...)
		for _, dep := range deps {
			if !known[dep.ComponentID] {
				return fmt.Errorf("callback %d references unknown component %q", i, dep.ComponentID)
			}
		}
	}
	return nil
}

// deriveEdges produces one edge per distinct (input, output) component
// pair across all callbacks.
func deriveEdges(callbacks []Callback) []Edge {
	seen := make(map[Edge]bool)
	var edges []Edge
	for _, cb := range callbacks {
		for _, in := range cb.Inputs {
			for _, out := range cb.Outputs {
				e := Edge{From: in.ComponentID, To: out.ComponentID}
				if seen[e] {
					continue
				}
				seen[e] = true
				edges = append(edges, e)
			}
		}
	}
	return edges
}

// inferPurpose picks the page purpose from the role distribution.
// Callbacks spanning mixed roles dominate; ties between the remaining
// purposes resolve as Data Input > Visualization > Navigation.
func inferPurpose(components []Component, callbacks []Callback) string {
	counts := make(map[Role]int)
	for _, c := range components {
		counts[c.Role]++
	}

	if len(callbacks) > 0 && mixedRoles(counts) {
		return PurposeInteractive
	}

	inputs := counts[RoleInput]
	displays := counts[RoleDisplay]
	navs := counts[RoleNavigation]

	best := inputs
	if displays > best {
		best = displays
	}
	if navs > best {
		best = navs
	}
	if best == 0 {
		return PurposeContent
	}

	switch best {
	case inputs:
		return PurposeDataInput
	case displays:
		return PurposeVisualization
	default:
		return PurposeNavigation
	}
}

func mixedRoles(counts map[Role]int) bool {
	distinct := 0
	for _, role := range []Role{RoleInput, RoleDisplay, RoleNavigation, RoleInteractive} {
		if counts[role] > 0 {
			distinct++
		}
	}
	return distinct >= 2
}

func hasImportantComponent(components []Component) bool {
	for _, c := range components {
		if c.Important {
			return true
		}
	}
	return false
}

// inferPriority maps path shape to a fixed sitemap priority band:
// root 1.0, important pages 0.8, dynamic paths 0.55, everything else a
// keyword tier inside [0.4, 0.5].
func inferPriority(path string, important bool) float64 {
	if path == "/" {
		return priorityRoot
	}
	if important {
		return priorityImportant
	}
	if isDynamicPath(path) {
		return priorityDynamic
	}

	lower := strings.ToLower(path)
	for _, kw := range []string{"report", "analytic", "data", "stats"} {
		if strings.Contains(lower, kw) {
			return priorityReports
		}
	}
	for _, kw := range []string{"docs", "help", "api", "guide"} {
		if strings.Contains(lower, kw) {
			return priorityDocs
		}
	}
	return priorityDefault
}

func isDynamicPath(path string) bool {
	for _, segment := range strings.Split(path, "/") {
		if strings.HasPrefix(segment, ":") || strings.HasPrefix(segment, "*") {
			return true
		}
		if strings.HasPrefix(segment, "<") && strings.HasSuffix(segment, ">") {
			return true
		}
	}
	return false
}

// inferChangeFreq estimates how often a page's content changes based on
// its path keywords.
func inferChangeFreq(path string) string {
	lower := strings.ToLower(path)
	for _, kw := range []string{"dashboard", "live", "real-time", "realtime"} {
		if strings.Contains(lower, kw) {
			return "daily"
		}
	}
	for _, kw := range []string{"report", "analytic", "stats"} {
		if strings.Contains(lower, kw) {
			return "weekly"
		}
	}
	for _, kw := range []string{"docs", "help", "api"} {
		if strings.Contains(lower, kw) {
			return "monthly"
		}
	}
	for _, kw := range []string{"about", "contact", "terms", "privacy"} {
		if strings.Contains(lower, kw) {
			return "yearly"
		}
	}
	return "weekly"
}

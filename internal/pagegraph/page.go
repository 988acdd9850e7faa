// Copyright (c) 2024-2026 IT Help San Diego Inc.
// Licensed under BUSL-1.1 — See LICENSE for terms.
package pagegraph

import "sort"

// Dependency names one end of a callback wire: a component id plus the
// property read or written on it.
type Dependency struct {
	ComponentID string `json:"component_id"`
	Property    string `json:"property"`
}

// Callback declares a reactive relation between components. Every
// referenced component id must exist on the owning page.
type Callback struct {
	Inputs  []Dependency `json:"inputs"`
	Outputs []Dependency `json:"outputs"`
	States  []Dependency `json:"states,omitempty"`
}

// Edge is one derived data-flow edge: the From component's change
// drives the To component.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Component is a normalized component discovered during the layout walk.
type Component struct {
	ID         string         `json:"id,omitempty"`
	Type       string         `json:"type"`
	Module     string         `json:"module"`
	Properties map[string]any `json:"properties,omitempty"`
	Role       Role           `json:"role"`
	Important  bool           `json:"important,omitempty"`
	Text       string         `json:"-"`
	Depth      int            `json:"-"`
}

// NavLink is a navigation target discovered on a page.
type NavLink struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// Declaration is the application-supplied description of one page.
type Declaration struct {
	Path        string
	Name        string
	Description string
	Layout      Node
	Callbacks   []Callback
	Hidden      bool
	Important   bool
}

// Page is the built, immutable form of a declaration. When BuildErr is
// non-nil the page is degraded: it stays in the graph so robots rules
// and diagnostics can see it, but content artifacts are withheld.
type Page struct {
	Path        string
	Name        string
	Description string
	Hidden      bool
	Important   bool

	Components []Component
	Callbacks  []Callback
	Edges      []Edge
	NavLinks   []NavLink
	Texts      []string

	// HiddenIDs are ids of components excluded from artifacts via
	// MarkHidden, in discovery order.
	HiddenIDs []string

	Purpose    string
	Priority   float64
	ChangeFreq string
	MaxDepth   int

	BuildErr error
}

// InteractiveIDs returns the ids of components referenced as callback
// inputs, in first-seen order.
func (p *Page) InteractiveIDs() []string {
	seen := make(map[string]bool)
	var ids []string
	for _, cb := range p.Callbacks {
		for _, dep := range cb.Inputs {
			if !seen[dep.ComponentID] {
				seen[dep.ComponentID] = true
				ids = append(ids, dep.ComponentID)
			}
		}
	}
	return ids
}

// Graph holds every built page. It is immutable after Build returns;
// concurrent readers need no coordination.
type Graph struct {
	pages map[string]*Page
	order []string
}

// Page returns the built page for a path, or nil when unregistered.
func (g *Graph) Page(path string) *Page {
	return g.pages[path]
}

// Pages returns all pages sorted by path, degraded and hidden included.
func (g *Graph) Pages() []*Page {
	out := make([]*Page, 0, len(g.order))
	for _, path := range g.order {
		out = append(out, g.pages[path])
	}
	return out
}

// VisiblePages returns non-hidden, successfully built pages sorted by
// sitemap priority descending, path ascending on ties.
func (g *Graph) VisiblePages() []*Page {
	var out []*Page
	for _, path := range g.order {
		p := g.pages[path]
		if p.Hidden || p.BuildErr != nil {
			continue
		}
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Priority != out[j].Priority {
			return out[i].Priority > out[j].Priority
		}
		return out[i].Path < out[j].Path
	})
	return out
}

// HiddenPaths returns the paths of hidden pages sorted ascending.
func (g *Graph) HiddenPaths() []string {
	var out []string
	for _, path := range g.order {
		if g.pages[path].Hidden {
			out = append(out, path)
		}
	}
	return out
}

// Copyright (c) 2024-2026 IT Help San Diego Inc.
// Licensed under BUSL-1.1 — See LICENSE for terms.
package artifacts

import (
	"fmt"

	"github.com/pip-install-python/dash-improve-my-llms/internal/pagegraph"
)

// PageDocument is the page.json payload: the structured counterpart of
// llms.txt, carrying the full component inventory and callback graph.
type PageDocument struct {
	Path          string                `json:"path"`
	Name          string                `json:"name,omitempty"`
	Description   string                `json:"description,omitempty"`
	Purpose       string                `json:"purpose"`
	Components    []pagegraph.Component `json:"components"`
	Counts        ComponentCounts       `json:"counts"`
	Navigation    []pagegraph.NavLink   `json:"navigation"`
	Interactivity Interactivity         `json:"interactivity"`
	CallbackGraph CallbackGraph         `json:"callback_graph"`
	MaxDepth      int                   `json:"max_depth"`
}

type ComponentCounts struct {
	Total  int            `json:"total"`
	ByType map[string]int `json:"by_type"`
	ByRole map[string]int `json:"by_role"`
}

type Interactivity struct {
	HasCallbacks   bool     `json:"has_callbacks"`
	CallbackCount  int      `json:"callback_count"`
	InteractiveIDs []string `json:"interactive_component_ids"`
}

type CallbackGraph struct {
	Callbacks []pagegraph.Callback `json:"callbacks"`
	Edges     []pagegraph.Edge     `json:"edges"`
}

// PageJSON assembles the structured document for one page. The callback
// graph here is the same graph llms.txt describes; both read the built
// page verbatim.
func PageJSON(page *pagegraph.Page) (*PageDocument, error) {
	if page == nil {
		return nil, fmt.Errorf("page not registered")
	}
	if page.Hidden {
		return nil, fmt.Errorf("page %s is hidden", page.Path)
	}
	if page.BuildErr != nil {
		return nil, fmt.Errorf("page %s is degraded: %w", page.Path, page.BuildErr)
	}

	byType := make(map[string]int)
	byRole := make(map[string]int)
	for _, c := range page.Components {
		byType[c.Type]++
		byRole[string(c.Role)]++
	}

	components := page.Components
	if components == nil {
		components = []pagegraph.Component{}
	}
	navigation := page.NavLinks
	if navigation == nil {
		navigation = []pagegraph.NavLink{}
	}
	edges := page.Edges
	if edges == nil {
		edges = []pagegraph.Edge{}
	}
	callbacks := page.Callbacks
	if callbacks == nil {
		callbacks = []pagegraph.Callback{}
	}
	interactiveIDs := page.InteractiveIDs()
	if interactiveIDs == nil {
		interactiveIDs = []string{}
	}

	return &PageDocument{
		Path:        page.Path,
		Name:        page.Name,
		Description: page.Description,
		Purpose:     page.Purpose,
		Components:  components,
		Counts: ComponentCounts{
			Total:  len(page.Components),
			ByType: byType,
			ByRole: byRole,
		},
		Navigation: navigation,
		Interactivity: Interactivity{
			HasCallbacks:   len(page.Callbacks) > 0,
			CallbackCount:  len(page.Callbacks),
			InteractiveIDs: interactiveIDs,
		},
		CallbackGraph: CallbackGraph{
			Callbacks: callbacks,
			Edges:     edges,
		},
		MaxDepth: page.MaxDepth,
	}, nil
}

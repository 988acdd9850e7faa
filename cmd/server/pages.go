// Copyright (c) 2024-2026 IT Help San Diego Inc.
// Licensed under BUSL-1.1 — See LICENSE for terms.
package main

import (
	"github.com/pip-install-python/dash-improve-my-llms/internal/pagegraph"
)

// demoPages declares the bundled equipment-management demo: three
// public pages plus a hidden admin dashboard that never appears in the
// sitemap or the generated artifacts.
func demoPages() []pagegraph.Declaration {
	return []pagegraph.Declaration{homePage(), equipmentPage(), analyticsPage(), adminPage()}
}

func homePage() pagegraph.Declaration {
	return pagegraph.Declaration{
		Path:        "/",
		Name:        "Home",
		Description: "Welcome page for the Equipment Management System with navigation and overview",
		Layout: pagegraph.New("Div", "html",
			pagegraph.New("H1", "html").WithText("Welcome to Equipment Management System"),
			pagegraph.New("P", "html").WithText("This system helps you track and manage your equipment inventory."),
			pagegraph.New("Div", "html",
				pagegraph.New("H2", "html").WithText("Quick Links"),
				pagegraph.New("Ul", "html",
					pagegraph.New("Li", "html",
						pagegraph.New("Link", "dcc").WithText("View Equipment Catalog").WithProperty("href", "/equipment"),
					),
					pagegraph.New("Li", "html",
						pagegraph.New("Link", "dcc").WithText("View Analytics Dashboard").WithProperty("href", "/analytics"),
					),
				),
			).WithID("quick-links").MarkImportant(),
			pagegraph.New("Div", "html",
				pagegraph.New("H3", "html").WithText("Features"),
				pagegraph.New("Ul", "html",
					pagegraph.New("Li", "html").WithText("Real-time equipment tracking"),
					pagegraph.New("Li", "html").WithText("Usage analytics and reporting"),
					pagegraph.New("Li", "html").WithText("Maintenance scheduling"),
					pagegraph.New("Li", "html").WithText("Cost analysis"),
				),
			),
		),
	}
}

func equipmentPage() pagegraph.Declaration {
	return pagegraph.Declaration{
		Path:        "/equipment",
		Name:        "Equipment Catalog",
		Description: "Browse and filter the complete equipment catalog with search and category filters",
		Layout: pagegraph.New("Div", "html",
			pagegraph.New("H1", "html").WithText("Equipment Catalog"),
			pagegraph.New("Div", "html",
				pagegraph.New("H2", "html").WithText("Filters"),
				pagegraph.New("TextInput", "dmc").WithID("equipment-search").WithProperty("placeholder", "Search equipment..."),
				pagegraph.New("Select", "dmc").WithID("equipment-category").WithProperty("placeholder", "Select category"),
			).WithID("filters").MarkImportant(),
			pagegraph.New("Div", "html",
				pagegraph.New("H2", "html").WithText("Equipment List"),
				pagegraph.New("Div", "html").WithID("equipment-list"),
			),
			pagegraph.New("Div", "html",
				pagegraph.New("H3", "html").WithText("Statistics"),
				pagegraph.New("P", "html").WithID("equipment-stats").WithText("Loading statistics..."),
			),
			pagegraph.New("Div", "html",
				pagegraph.New("Link", "dcc").WithText("Back to Home").WithProperty("href", "/"),
				pagegraph.New("Link", "dcc").WithText("View Analytics").WithProperty("href", "/analytics"),
			),
		),
		Callbacks: []pagegraph.Callback{
			{
				Inputs: []pagegraph.Dependency{
					{ComponentID: "equipment-search", Property: "value"},
					{ComponentID: "equipment-category", Property: "value"},
				},
				Outputs: []pagegraph.Dependency{
					{ComponentID: "equipment-list", Property: "children"},
					{ComponentID: "equipment-stats", Property: "children"},
				},
			},
		},
	}
}

func analyticsPage() pagegraph.Declaration {
	return pagegraph.Declaration{
		Path:        "/analytics",
		Name:        "Analytics Dashboard",
		Description: "Real-time analytics and usage statistics for equipment tracking",
		Layout: pagegraph.New("Div", "html",
			pagegraph.New("H1", "html").WithText("Analytics Dashboard"),
			pagegraph.New("Div", "html",
				pagegraph.New("H2", "html").WithText("Key Metrics"),
				pagegraph.New("P", "html").WithText("Utilization Rate"),
				pagegraph.New("P", "html").WithText("Active Items"),
				pagegraph.New("P", "html").WithText("Monthly Savings"),
			).WithID("key-metrics").MarkImportant(),
			pagegraph.New("Div", "html",
				pagegraph.New("H2", "html").WithText("Usage Over Time"),
				pagegraph.New("Dropdown", "dcc").WithID("time-range").WithProperty("placeholder", "Select time range"),
				pagegraph.New("Graph", "dcc").WithID("usage-chart"),
			),
			pagegraph.New("Div", "html",
				pagegraph.New("Link", "dcc").WithText("Back to Home").WithProperty("href", "/"),
				pagegraph.New("Link", "dcc").WithText("View Equipment").WithProperty("href", "/equipment"),
			),
		),
		Callbacks: []pagegraph.Callback{
			{
				Inputs: []pagegraph.Dependency{
					{ComponentID: "time-range", Property: "value"},
				},
				Outputs: []pagegraph.Dependency{
					{ComponentID: "usage-chart", Property: "figure"},
				},
			},
		},
	}
}

func adminPage() pagegraph.Declaration {
	return pagegraph.Declaration{
		Path:        "/admin",
		Name:        "Admin Dashboard",
		Description: "Visitor analytics dashboard with device and bot tracking",
		Hidden:      true,
		Layout: pagegraph.New("Div", "html",
			pagegraph.New("H1", "html").WithText("Admin Dashboard"),
			pagegraph.New("Div", "html",
				pagegraph.New("H2", "html").WithText("Visitor Analytics"),
				pagegraph.New("Graph", "dcc").WithID("device-chart"),
				pagegraph.New("Graph", "dcc").WithID("bot-chart"),
			),
			pagegraph.New("Button", "html").WithID("refresh-button").WithText("Refresh"),
		),
		Callbacks: []pagegraph.Callback{
			{
				Inputs: []pagegraph.Dependency{
					{ComponentID: "refresh-button", Property: "n_clicks"},
				},
				Outputs: []pagegraph.Dependency{
					{ComponentID: "device-chart", Property: "figure"},
					{ComponentID: "bot-chart", Property: "figure"},
				},
			},
		},
	}
}

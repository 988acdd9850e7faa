// Copyright (c) 2024-2026 IT Help San Diego Inc.
// Licensed under BUSL-1.1 — See LICENSE for terms.
package pagegraph_test

import (
	"reflect"
	"testing"

	"github.com/pip-install-python/dash-improve-my-llms/internal/pagegraph"
)

func equipmentDecl() pagegraph.Declaration {
	return pagegraph.Declaration{
		Path:        "/equipment",
		Name:        "Equipment Catalog",
		Description: "Browse and filter the equipment catalog",
		Layout: pagegraph.New("Div", "html",
			pagegraph.New("H1", "html").WithText("Equipment Catalog"),
			pagegraph.New("Div", "html",
				pagegraph.New("TextInput", "dmc").WithID("equipment-search").WithProperty("placeholder", "Search equipment..."),
				pagegraph.New("Select", "dmc").WithID("equipment-category").WithProperty("value", "all"),
			).WithID("filters").MarkImportant(),
			pagegraph.New("Div", "html").WithID("equipment-list"),
			pagegraph.New("P", "html").WithID("equipment-stats").WithText("Loading statistics..."),
			pagegraph.New("Link", "dcc").WithText("Back to Home").WithProperty("href", "/"),
		),
		Callbacks: []pagegraph.Callback{{
			Inputs: []pagegraph.Dependency{
				{ComponentID: "equipment-search", Property: "value"},
				{ComponentID: "equipment-category", Property: "value"},
			},
			Outputs: []pagegraph.Dependency{
				{ComponentID: "equipment-list", Property: "children"},
				{ComponentID: "equipment-stats", Property: "children"},
			},
		}},
	}
}

func TestBuildCollectsComponents(t *testing.T) {
	g := pagegraph.Build([]pagegraph.Declaration{equipmentDecl()})
	page := g.Page("/equipment")
	if page == nil {
		t.Fatal("page not built")
	}
	if page.BuildErr != nil {
		t.Fatalf("unexpected build error: %v", page.BuildErr)
	}

	if len(page.Components) != 8 {
		t.Errorf("component count = %d, want 8", len(page.Components))
	}

	// DFS order: the root Div comes first, the H1 second.
	if page.Components[0].Type != "Div" || page.Components[0].Role != pagegraph.RoleContainer {
		t.Errorf("root component = %+v, want container Div", page.Components[0])
	}
	if page.Components[1].Type != "H1" {
		t.Errorf("second component = %s, want H1", page.Components[1].Type)
	}
}

func TestBuildRoleAssignment(t *testing.T) {
	g := pagegraph.Build([]pagegraph.Declaration{equipmentDecl()})
	page := g.Page("/equipment")

	roles := make(map[string]pagegraph.Role)
	for _, c := range page.Components {
		if c.ID != "" {
			roles[c.ID] = c.Role
		}
	}

	want := map[string]pagegraph.Role{
		"equipment-search":   pagegraph.RoleInput,
		"equipment-category": pagegraph.RoleInput,
		"filters":            pagegraph.RoleContainer,
		"equipment-stats":    pagegraph.RoleDisplay,
	}
	for id, role := range want {
		if roles[id] != role {
			t.Errorf("role of %s = %s, want %s", id, roles[id], role)
		}
	}
}

func TestBuildImportanceCascades(t *testing.T) {
	g := pagegraph.Build([]pagegraph.Declaration{equipmentDecl()})
	page := g.Page("/equipment")

	var search, heading *pagegraph.Component
	for i := range page.Components {
		switch page.Components[i].ID {
		case "equipment-search":
			search = &page.Components[i]
		}
		if page.Components[i].Type == "H1" {
			heading = &page.Components[i]
		}
	}
	if search == nil || heading == nil {
		t.Fatal("expected components not found")
	}
	if !search.Important {
		t.Error("child of important container should inherit importance")
	}
	if heading.Important {
		t.Error("sibling outside important container should not be important")
	}
}

func TestBuildCallbackEdges(t *testing.T) {
	g := pagegraph.Build([]pagegraph.Declaration{equipmentDecl()})
	page := g.Page("/equipment")

	// 2 inputs x 2 outputs, all distinct pairs.
	if len(page.Edges) != 4 {
		t.Fatalf("edge count = %d, want 4", len(page.Edges))
	}
	seen := make(map[pagegraph.Edge]bool)
	for _, e := range page.Edges {
		if seen[e] {
			t.Errorf("duplicate edge %+v", e)
		}
		seen[e] = true
	}
}

func TestBuildDuplicateComponentID(t *testing.T) {
	g := pagegraph.Build([]pagegraph.Declaration{
		{
			Path: "/bad",
			Layout: pagegraph.New("Div", "html",
				pagegraph.New("P", "html").WithID("dup"),
				pagegraph.New("Span", "html").WithID("dup"),
			),
		},
		equipmentDecl(),
	})

	bad := g.Page("/bad")
	if bad == nil || bad.BuildErr == nil {
		t.Fatal("expected build error for duplicate component id")
	}

	// Fault isolation: the other page still builds.
	good := g.Page("/equipment")
	if good == nil || good.BuildErr != nil {
		t.Fatalf("unrelated page affected by bad page: %v", good.BuildErr)
	}
}

func TestBuildDanglingCallbackReference(t *testing.T) {
	g := pagegraph.Build([]pagegraph.Declaration{{
		Path:   "/bad",
		Layout: pagegraph.New("Div", "html", pagegraph.New("Input", "dcc").WithID("in")),
		Callbacks: []pagegraph.Callback{{
			Inputs:  []pagegraph.Dependency{{ComponentID: "in", Property: "value"}},
			Outputs: []pagegraph.Dependency{{ComponentID: "ghost", Property: "children"}},
		}},
	}})

	page := g.Page("/bad")
	if page.BuildErr == nil {
		t.Fatal("expected build error for dangling callback reference")
	}
}

func TestBuildDeterministic(t *testing.T) {
	decls := []pagegraph.Declaration{
		equipmentDecl(),
		{Path: "/", Name: "Home", Layout: pagegraph.New("Div", "html")},
	}

	first := pagegraph.Build(decls)
	second := pagegraph.Build(decls)

	firstPages := first.Pages()
	secondPages := second.Pages()
	if len(firstPages) != len(secondPages) {
		t.Fatalf("page counts differ: %d vs %d", len(firstPages), len(secondPages))
	}
	for i := range firstPages {
		a, b := firstPages[i], secondPages[i]
		if a.Path != b.Path || a.Purpose != b.Purpose || a.Priority != b.Priority {
			t.Errorf("page %s differs between builds", a.Path)
		}
		if !reflect.DeepEqual(a.Components, b.Components) {
			t.Errorf("components of %s differ between builds", a.Path)
		}
		if !reflect.DeepEqual(a.Edges, b.Edges) {
			t.Errorf("edges of %s differ between builds", a.Path)
		}
	}
}

func TestPurposeInference(t *testing.T) {
	cases := []struct {
		name string
		decl pagegraph.Declaration
		want string
	}{
		{
			name: "interactive",
			decl: equipmentDecl(),
			want: pagegraph.PurposeInteractive,
		},
		{
			name: "data input",
			decl: pagegraph.Declaration{
				Path: "/form",
				Layout: pagegraph.New("Form", "html",
					pagegraph.New("Input", "dcc").WithID("f1"),
					pagegraph.New("Input", "dcc").WithID("f2"),
					pagegraph.New("Textarea", "dcc").WithID("f3"),
				),
			},
			want: pagegraph.PurposeDataInput,
		},
		{
			name: "visualization",
			decl: pagegraph.Declaration{
				Path: "/charts",
				Layout: pagegraph.New("Div", "html",
					pagegraph.New("Graph", "dcc").WithID("g1"),
					pagegraph.New("Graph", "dcc").WithID("g2"),
				),
			},
			want: pagegraph.PurposeVisualization,
		},
		{
			name: "navigation",
			decl: pagegraph.Declaration{
				Path: "/nav",
				Layout: pagegraph.New("Nav", "html",
					pagegraph.New("Link", "dcc").WithProperty("href", "/a"),
					pagegraph.New("Link", "dcc").WithProperty("href", "/b"),
					pagegraph.New("Link", "dcc").WithProperty("href", "/c"),
				),
			},
			want: pagegraph.PurposeNavigation,
		},
	}

	for _, tc := range cases {
		g := pagegraph.Build([]pagegraph.Declaration{tc.decl})
		page := g.Page(tc.decl.Path)
		if page.Purpose != tc.want {
			t.Errorf("%s: purpose = %s, want %s", tc.name, page.Purpose, tc.want)
		}
	}
}

func TestPriorityBands(t *testing.T) {
	decls := []pagegraph.Declaration{
		{Path: "/", Layout: pagegraph.New("Div", "html")},
		{Path: "/item/:id", Layout: pagegraph.New("Div", "html")},
		{Path: "/settings", Layout: pagegraph.New("Div", "html")},
		{Path: "/reports", Layout: pagegraph.New("Div", "html")},
		{Path: "/flagged", Important: true, Layout: pagegraph.New("Div", "html")},
	}
	g := pagegraph.Build(decls)

	if p := g.Page("/").Priority; p < 0.9 {
		t.Errorf("root priority = %v, want >= 0.9", p)
	}
	if p := g.Page("/item/:id").Priority; p < 0.5 || p > 0.6 {
		t.Errorf("dynamic path priority = %v, want within [0.5, 0.6]", p)
	}
	if p := g.Page("/flagged").Priority; p < 0.7 || p > 0.8 {
		t.Errorf("important page priority = %v, want within [0.7, 0.8]", p)
	}
	if p := g.Page("/settings").Priority; p < 0.3 || p > 0.5 {
		t.Errorf("utility page priority = %v, want within [0.3, 0.5]", p)
	}
	if p := g.Page("/reports").Priority; p < 0.3 || p > 0.5 {
		t.Errorf("reports page priority = %v, want within [0.3, 0.5]", p)
	}
}

func TestNavLinksCollected(t *testing.T) {
	g := pagegraph.Build([]pagegraph.Declaration{{
		Path: "/",
		Layout: pagegraph.New("Div", "html",
			pagegraph.New("Link", "dcc").WithText("Equipment").WithProperty("href", "/equipment"),
			pagegraph.New("A", "html").WithProperty("href", "/llms.txt"),
		),
	}})

	page := g.Page("/")
	if len(page.NavLinks) != 2 {
		t.Fatalf("nav link count = %d, want 2", len(page.NavLinks))
	}
	if page.NavLinks[0].Label != "Equipment" || page.NavLinks[0].Href != "/equipment" {
		t.Errorf("first link = %+v", page.NavLinks[0])
	}
	// A link without text falls back to its href as label.
	if page.NavLinks[1].Label != "/llms.txt" {
		t.Errorf("second link label = %q, want href fallback", page.NavLinks[1].Label)
	}
}

func TestWalkDepthBounded(t *testing.T) {
	deep := pagegraph.New("P", "html").WithText("bottom")
	node := deep
	for i := 0; i < 60; i++ {
		node = pagegraph.New("Div", "html", node)
	}

	g := pagegraph.Build([]pagegraph.Declaration{{Path: "/deep", Layout: node}})
	page := g.Page("/deep")
	if page.BuildErr != nil {
		t.Fatalf("deep layout should not fail: %v", page.BuildErr)
	}
	if page.MaxDepth > 25 {
		t.Errorf("max depth = %d, walk should stop at 25", page.MaxDepth)
	}
}

func TestHiddenComponentsExcluded(t *testing.T) {
	g := pagegraph.Build([]pagegraph.Declaration{{
		Path: "/",
		Layout: pagegraph.New("Div", "html",
			pagegraph.New("P", "html").WithText("Public"),
			pagegraph.New("Div", "html",
				pagegraph.New("P", "html").WithText("Secret API key"),
			).WithID("secrets").MarkHidden(),
		),
	}})

	page := g.Page("/")
	if page.BuildErr != nil {
		t.Fatalf("unexpected build error: %v", page.BuildErr)
	}
	for _, c := range page.Components {
		if c.ID == "secrets" {
			t.Error("hidden component present in component set")
		}
	}
	for _, text := range page.Texts {
		if text == "Secret API key" {
			t.Error("hidden subtree text leaked into artifacts")
		}
	}
	if !reflect.DeepEqual(page.HiddenIDs, []string{"secrets"}) {
		t.Errorf("hidden ids = %v, want [secrets]", page.HiddenIDs)
	}
}

func TestHiddenComponentStillValidForCallbacks(t *testing.T) {
	g := pagegraph.Build([]pagegraph.Declaration{{
		Path: "/",
		Layout: pagegraph.New("Div", "html",
			pagegraph.New("Input", "dcc").WithID("in"),
			pagegraph.New("Store", "dcc").WithID("state").MarkHidden(),
		),
		Callbacks: []pagegraph.Callback{{
			Inputs:  []pagegraph.Dependency{{ComponentID: "in", Property: "value"}},
			Outputs: []pagegraph.Dependency{{ComponentID: "state", Property: "data"}},
		}},
	}})

	if err := g.Page("/").BuildErr; err != nil {
		t.Fatalf("callback to hidden component should validate: %v", err)
	}
}

func TestHiddenPaths(t *testing.T) {
	g := pagegraph.Build([]pagegraph.Declaration{
		{Path: "/", Layout: pagegraph.New("Div", "html")},
		{Path: "/admin", Hidden: true, Layout: pagegraph.New("Div", "html")},
		{Path: "/internal", Hidden: true, Layout: pagegraph.New("Div", "html")},
	})

	want := []string{"/admin", "/internal"}
	if got := g.HiddenPaths(); !reflect.DeepEqual(got, want) {
		t.Errorf("hidden paths = %v, want %v", got, want)
	}

	for _, p := range g.VisiblePages() {
		if p.Hidden {
			t.Errorf("hidden page %s in visible set", p.Path)
		}
	}
}

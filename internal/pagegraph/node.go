// Copyright (c) 2024-2026 IT Help San Diego Inc.
// Licensed under BUSL-1.1 — See LICENSE for terms.

// Package pagegraph builds an immutable, normalized graph of an
// application's declared pages, components and callbacks. The graph is
// the single source of truth for every generated artifact.
package pagegraph

// Node is the minimal capability every declared component exposes.
// Optional capabilities (identity, children, properties, text) are
// separate interfaces so the builder can walk arbitrary component
// shapes without type-specific branching.
type Node interface {
	Type() string
	Module() string
}

// Identifiable is a node with a declared component id.
type Identifiable interface {
	Node
	ID() string
}

// Container is a node with child nodes.
type Container interface {
	Node
	Children() []Node
}

// PropertyHolder is a node carrying declared properties.
type PropertyHolder interface {
	Node
	Properties() map[string]any
}

// TextHolder is a node carrying human-readable text content.
type TextHolder interface {
	Node
	Text() string
}

// importanceMarker is implemented by nodes flagged with MarkImportant.
type importanceMarker interface {
	important() bool
}

// hiddenMarker is implemented by nodes flagged with MarkHidden.
type hiddenMarker interface {
	hidden() bool
}

// Element is the standard Node implementation used for page layout
// declarations. All capability interfaces are satisfied; unset
// capabilities report zero values.
type Element struct {
	typ      string
	module   string
	id       string
	props    map[string]any
	children []Node
	text     string
	flagged  bool
	veiled   bool
}

// New declares a component of the given type and module with optional
// children, e.g. New("Div", "html", New("H1", "html").WithText("Title")).
func New(typ, module string, children ...Node) *Element {
	return &Element{typ: typ, module: module, children: children}
}

func (e *Element) Type() string   { return e.typ }
func (e *Element) Module() string { return e.module }
func (e *Element) ID() string     { return e.id }

func (e *Element) Children() []Node { return e.children }

func (e *Element) Properties() map[string]any { return e.props }

func (e *Element) Text() string { return e.text }

func (e *Element) important() bool { return e.flagged }

func (e *Element) hidden() bool { return e.veiled }

// WithID sets the declared component id. IDs must be unique within a
// page; the builder reports a duplicate as a page-level build error.
func (e *Element) WithID(id string) *Element {
	e.id = id
	return e
}

// WithText sets the element's text content.
func (e *Element) WithText(text string) *Element {
	e.text = text
	return e
}

// WithProperty adds a declared property.
func (e *Element) WithProperty(key string, value any) *Element {
	if e.props == nil {
		e.props = make(map[string]any)
	}
	e.props[key] = value
	return e
}

// MarkImportant flags the element for emphasis in generated artifacts.
// Importance cascades to all descendants during the build.
func (e *Element) MarkImportant() *Element {
	e.flagged = true
	return e
}

// MarkHidden excludes the element and its whole subtree from every
// generated artifact. The element's id stays registered so callbacks
// may still reference it.
func (e *Element) MarkHidden() *Element {
	e.veiled = true
	return e
}

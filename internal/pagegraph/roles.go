// Copyright (c) 2024-2026 IT Help San Diego Inc.
// Licensed under BUSL-1.1 — See LICENSE for terms.
package pagegraph

import "strings"

// Role describes what a component does on its page. Roles are derived
// from the declared type at build time via a fixed table, never at
// request time.
type Role string

const (
	RoleInput       Role = "input"
	RoleOutput      Role = "output"
	RoleContainer   Role = "container"
	RoleNavigation  Role = "navigation"
	RoleDisplay     Role = "display"
	RoleInteractive Role = "interactive"
)

// roleTable keys on lowercased component type. Types absent from the
// table fall back to container (has children) or display (leaf).
var roleTable = map[string]Role{
	// Form inputs
	"input":         RoleInput,
	"textinput":     RoleInput,
	"textarea":      RoleInput,
	"select":        RoleInput,
	"dropdown":      RoleInput,
	"checklist":     RoleInput,
	"radioitems":    RoleInput,
	"slider":        RoleInput,
	"rangeslider":   RoleInput,
	"datepicker":    RoleInput,
	"upload":        RoleInput,
	"numberinput":   RoleInput,

	// Charts and read-only displays
	"graph":      RoleDisplay,
	"chart":      RoleDisplay,
	"table":      RoleDisplay,
	"datatable":  RoleDisplay,
	"markdown":   RoleDisplay,
	"img":        RoleDisplay,
	"badge":      RoleDisplay,
	"progress":   RoleDisplay,

	// Navigation
	"link":    RoleNavigation,
	"a":       RoleNavigation,
	"navlink": RoleNavigation,
	"anchor":  RoleNavigation,

	// Interactive controls
	"button":       RoleInteractive,
	"tabs":         RoleInteractive,
	"tab":          RoleInteractive,
	"accordion":    RoleInteractive,
	"modal":        RoleInteractive,
	"switch":       RoleInteractive,

	// Hidden data carriers
	"store":    RoleOutput,
	"interval": RoleOutput,
	"location": RoleOutput,
	"download": RoleOutput,
}

// textTypes are leaf types whose content is prose rather than structure.
var textTypes = map[string]bool{
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"p": true, "span": true, "label": true, "li": true, "blockquote": true,
	"strong": true, "em": true, "small": true, "code": true, "pre": true,
}

// classifyRole resolves a component's role from its declared type.
func classifyRole(typ string, hasChildren bool) Role {
	key := strings.ToLower(typ)
	if role, ok := roleTable[key]; ok {
		return role
	}
	if textTypes[key] {
		return RoleDisplay
	}
	if hasChildren {
		return RoleContainer
	}
	return RoleDisplay
}

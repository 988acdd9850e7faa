// Copyright (c) 2024-2026 IT Help San Diego Inc.
// Licensed under BUSL-1.1 — See LICENSE for terms.

// Package botdetect classifies user-agent strings against a static
// signature registry. Matching is deterministic substring containment,
// never statistical: an unknown agent is a browser.
package botdetect

import "strings"

// Classification is the per-request result of matching a user agent
// against the registry. Name is empty when Category is CategoryNone.
type Classification struct {
	Category Category `json:"category"`
	Name     string   `json:"name,omitempty"`
}

// IsBot reports whether the classification matched any registered crawler.
func (c Classification) IsBot() bool {
	return c.Category != CategoryNone
}

// Classify resolves a user-agent string to a bot classification.
// Categories are checked in priority order (training, search,
// traditional) and the first matching pattern wins. An empty or
// unrecognized user agent classifies as CategoryNone so that real
// browsers are never blocked by a registry gap.
func Classify(userAgent string) Classification {
	if userAgent == "" {
		return Classification{Category: CategoryNone}
	}
	ua := strings.ToLower(userAgent)

	for _, group := range []struct {
		category   Category
		signatures []Signature
	}{
		{CategoryTraining, trainingSignatures},
		{CategorySearch, searchSignatures},
		{CategoryTraditional, traditionalSignatures},
	} {
		for _, sig := range group.signatures {
			if strings.Contains(ua, sig.Pattern) {
				return Classification{Category: group.category, Name: sig.Name}
			}
		}
	}

	return Classification{Category: CategoryNone}
}

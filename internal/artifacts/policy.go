// Copyright (c) 2024-2026 IT Help San Diego Inc.
// Licensed under BUSL-1.1 — See LICENSE for terms.

// Package artifacts renders the machine-readable surface of the page
// graph: robots.txt, sitemap.xml, llms.txt, page.json and
// architecture.txt. Every generator is a pure function of the graph
// plus the crawler policy.
package artifacts

import (
	"log/slog"

	"github.com/bmatcuk/doublestar/v4"
)

// Policy is the crawler visibility policy. It is constructed once at
// startup and read-only afterwards; each bot category carries its own
// independent allow/deny decision.
type Policy struct {
	BlockAITraining  bool     `yaml:"block_ai_training"`
	AllowAISearch    bool     `yaml:"allow_ai_search"`
	AllowTraditional bool     `yaml:"allow_traditional"`
	CrawlDelay       int      `yaml:"crawl_delay"`
	DisallowedPaths  []string `yaml:"disallowed_paths"`
	CustomRules      []string `yaml:"custom_rules"`
}

// DefaultPolicy blocks AI training crawlers and welcomes everyone else.
func DefaultPolicy() Policy {
	return Policy{
		BlockAITraining:  true,
		AllowAISearch:    true,
		AllowTraditional: true,
	}
}

// Normalize validates the policy in place. Malformed disallow globs are
// dropped with a warning rather than failing startup; a negative crawl
// delay is clamped to zero.
func (p *Policy) Normalize() {
	if p.CrawlDelay < 0 {
		p.CrawlDelay = 0
	}

	valid := p.DisallowedPaths[:0]
	for _, pattern := range p.DisallowedPaths {
		if !doublestar.ValidatePattern(pattern) {
			slog.Warn("Dropping malformed disallow pattern", "pattern", pattern)
			continue
		}
		valid = append(valid, pattern)
	}
	p.DisallowedPaths = valid
}

// Disallowed reports whether a request path matches one of the policy's
// disallow globs.
func (p *Policy) Disallowed(path string) bool {
	for _, pattern := range p.DisallowedPaths {
		if ok, err := doublestar.Match(pattern, path); err == nil && ok {
			return true
		}
	}
	return false
}

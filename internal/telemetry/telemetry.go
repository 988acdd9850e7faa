// Copyright (c) 2024-2026 IT Help San Diego Inc.
// Licensed under BUSL-1.1 — See LICENSE for terms.

// Package telemetry tracks negotiation counters and caches rendered
// artifacts for the health endpoint and the admin dashboard.
package telemetry

import (
	"sync"
	"time"

	"github.com/pip-install-python/dash-improve-my-llms/internal/botdetect"
)

// MetricsSnapshot is the JSON shape reported by the health endpoint.
type MetricsSnapshot struct {
	Requests        int64            `json:"requests"`
	Forwards        int64            `json:"forwards"`
	Blocks          int64            `json:"blocks"`
	ArtifactServes  int64            `json:"artifact_serves"`
	Classifications map[string]int64 `json:"classifications"`
	Since           time.Time        `json:"since"`
}

// Metrics counts negotiation outcomes per bot category. All methods
// are safe for concurrent use.
type Metrics struct {
	mu              sync.Mutex
	classifications map[botdetect.Category]int64
	blocks          int64
	artifactServes  int64
	since           time.Time
}

func NewMetrics() *Metrics {
	return &Metrics{
		classifications: make(map[botdetect.Category]int64),
		since:           time.Now().UTC(),
	}
}

func (m *Metrics) RecordClassification(category botdetect.Category) {
	m.mu.Lock()
	m.classifications[category]++
	m.mu.Unlock()
}

func (m *Metrics) RecordBlock() {
	m.mu.Lock()
	m.blocks++
	m.mu.Unlock()
}

func (m *Metrics) RecordArtifactServe() {
	m.mu.Lock()
	m.artifactServes++
	m.mu.Unlock()
}

func (m *Metrics) Snapshot() MetricsSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	classifications := make(map[string]int64, len(m.classifications))
	var total int64
	for category, count := range m.classifications {
		classifications[string(category)] = count
		total += count
	}

	return MetricsSnapshot{
		Requests:        total,
		Forwards:        m.classifications[botdetect.CategoryNone],
		Blocks:          m.blocks,
		ArtifactServes:  m.artifactServes,
		Classifications: classifications,
		Since:           m.since,
	}
}

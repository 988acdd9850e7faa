// Copyright (c) 2024-2026 IT Help San Diego Inc.
// Licensed under BUSL-1.1 — See LICENSE for terms.
package telemetry_test

import (
	"sync"
	"testing"
	"time"

	"github.com/pip-install-python/dash-improve-my-llms/internal/botdetect"
	"github.com/pip-install-python/dash-improve-my-llms/internal/telemetry"
)

func TestMetricsCounts(t *testing.T) {
	m := telemetry.NewMetrics()

	m.RecordClassification(botdetect.CategoryTraining)
	m.RecordClassification(botdetect.CategoryTraining)
	m.RecordClassification(botdetect.CategoryNone)
	m.RecordBlock()
	m.RecordArtifactServe()

	snap := m.Snapshot()
	if snap.Requests != 3 {
		t.Errorf("requests = %d, want 3", snap.Requests)
	}
	if snap.Classifications["training"] != 2 {
		t.Errorf("training count = %d, want 2", snap.Classifications["training"])
	}
	if snap.Forwards != 1 {
		t.Errorf("forwards = %d, want 1", snap.Forwards)
	}
	if snap.Blocks != 1 || snap.ArtifactServes != 1 {
		t.Errorf("blocks = %d, serves = %d, want 1 each", snap.Blocks, snap.ArtifactServes)
	}
}

func TestMetricsConcurrentAccess(t *testing.T) {
	m := telemetry.NewMetrics()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.RecordClassification(botdetect.CategorySearch)
			m.RecordArtifactServe()
		}()
	}
	wg.Wait()

	snap := m.Snapshot()
	if snap.Classifications["search"] != 50 {
		t.Errorf("search count = %d, want 50", snap.Classifications["search"])
	}
	if snap.ArtifactServes != 50 {
		t.Errorf("artifact serves = %d, want 50", snap.ArtifactServes)
	}
}

func TestTTLCacheHitAndMiss(t *testing.T) {
	cache := telemetry.NewTTLCache[string]("artifacts", 10, time.Minute)

	if _, ok := cache.Get("/"); ok {
		t.Fatal("empty cache should miss")
	}

	cache.Set("/", "robots content")
	got, ok := cache.Get("/")
	if !ok || got != "robots content" {
		t.Fatalf("Get = (%q, %v), want cached value", got, ok)
	}

	stats := cache.Stats()
	if stats.Hits != 1 || stats.Misses != 1 {
		t.Errorf("hits = %d, misses = %d, want 1 each", stats.Hits, stats.Misses)
	}
	if stats.HitRate != "50.0%" {
		t.Errorf("hit rate = %s, want 50.0%%", stats.HitRate)
	}
}

func TestTTLCacheExpiry(t *testing.T) {
	cache := telemetry.NewTTLCache[string]("artifacts", 10, 10*time.Millisecond)
	cache.Set("key", "value")

	time.Sleep(20 * time.Millisecond)
	if _, ok := cache.Get("key"); ok {
		t.Fatal("expired entry should miss")
	}
}

func TestTTLCachePurge(t *testing.T) {
	cache := telemetry.NewTTLCache[string]("artifacts", 10, time.Minute)
	cache.Set("a", "1")
	cache.Set("b", "2")

	cache.Purge()

	if _, ok := cache.Get("a"); ok {
		t.Error("purged entry a still present")
	}
	if stats := cache.Stats(); stats.Size != 0 {
		t.Errorf("size after purge = %d, want 0", stats.Size)
	}
}

func TestTTLCacheEviction(t *testing.T) {
	cache := telemetry.NewTTLCache[int]("artifacts", 2, time.Minute)
	cache.Set("a", 1)
	cache.Set("b", 2)
	cache.Set("c", 3)

	if stats := cache.Stats(); stats.Size > 2 {
		t.Errorf("size = %d, want <= max size 2", stats.Size)
	}
	if _, ok := cache.Get("c"); !ok {
		t.Error("most recent entry should survive eviction")
	}
}

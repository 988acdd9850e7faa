// Copyright (c) 2024-2026 IT Help San Diego Inc.
// Licensed under BUSL-1.1 — See LICENSE for terms.
package visitstore_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pip-install-python/dash-improve-my-llms/internal/models"
	"github.com/pip-install-python/dash-improve-my-llms/internal/visitstore"
)

func testVisit(path, device, category string) models.Visit {
	return models.Visit{
		Timestamp:   time.Now().UTC(),
		Path:        path,
		DeviceType:  device,
		BotCategory: category,
		VisitorID:   "abc123",
	}
}

func TestFileStoreAppendAndRecent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "visitor_analytics.json")
	store, err := visitstore.NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	visits := []models.Visit{
		testVisit("/", models.DeviceDesktop, ""),
		testVisit("/equipment", models.DeviceBot, "training"),
		testVisit("/analytics", models.DeviceMobile, ""),
	}
	if err := store.Append(ctx, visits); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	recent, err := store.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("recent count = %d, want 2", len(recent))
	}
	// Newest first.
	if recent[0].Path != "/analytics" {
		t.Errorf("newest visit path = %s, want /analytics", recent[0].Path)
	}
}

func TestFileStoreStats(t *testing.T) {
	path := filepath.Join(t.TempDir(), "visitor_analytics.json")
	store, err := visitstore.NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}

	ctx := context.Background()
	err = store.Append(ctx, []models.Visit{
		testVisit("/", models.DeviceDesktop, ""),
		testVisit("/", models.DeviceDesktop, ""),
		testVisit("/", models.DeviceTablet, ""),
		testVisit("/", models.DeviceBot, "search"),
		testVisit("/", models.DeviceBot, "search"),
		testVisit("/", models.DeviceBot, "traditional"),
	})
	if err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	stats, err := store.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.Desktop != 2 || stats.Tablet != 1 || stats.Bot != 3 || stats.Total != 6 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.BotsByCategory["search"] != 2 {
		t.Errorf("search bots = %d, want 2", stats.BotsByCategory["search"])
	}
}

func TestFileStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "visitor_analytics.json")
	ctx := context.Background()

	store, err := visitstore.NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}
	if err := store.Append(ctx, []models.Visit{testVisit("/", models.DeviceDesktop, "")}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	store.Close()

	reopened, err := visitstore.NewFileStore(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	stats, err := reopened.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.Total != 1 {
		t.Errorf("total after reopen = %d, want 1", stats.Total)
	}
}

func TestFileStoreCorruptLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "visitor_analytics.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	if _, err := visitstore.NewFileStore(path); err == nil {
		t.Fatal("expected error for corrupt visit log")
	}
}

// Copyright (c) 2024-2026 IT Help San Diego Inc.
// Licensed under BUSL-1.1 — See LICENSE for terms.

// Package visitstore persists the visit log behind a small Store
// interface with a JSON-file backend and a Postgres backend.
package visitstore

import (
	"context"

	"github.com/pip-install-python/dash-improve-my-llms/internal/models"
)

// Store is the persistence contract for visit records. Append is
// batch-oriented: the collector flushes buffered visits periodically,
// not per request.
type Store interface {
	Append(ctx context.Context, visits []models.Visit) error
	Recent(ctx context.Context, limit int) ([]models.Visit, error)
	Stats(ctx context.Context) (models.VisitStats, error)
	Close()
}

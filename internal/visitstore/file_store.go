// Copyright (c) 2024-2026 IT Help San Diego Inc.
// Licensed under BUSL-1.1 — See LICENSE for terms.
package visitstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pip-install-python/dash-improve-my-llms/internal/models"
)

// maxFileVisits caps the on-disk log; the oldest entries roll off.
const maxFileVisits = 10000

type fileDocument struct {
	Visits []models.Visit `json:"visits"`
}

// FileStore keeps the visit log in a single JSON document, rewritten
// atomically on every flush.
type FileStore struct {
	mu   sync.Mutex
	path string
	doc  fileDocument
}

func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Fresh log.
	case err != nil:
		return nil, fmt.Errorf("failed to read visit log: %w", err)
	default:
		if err := json.Unmarshal(data, &s.doc); err != nil {
			return nil, fmt.Errorf("visit log %s is corrupt: %w", path, err)
		}
	}

	return s, nil
}

func (s *FileStore) Append(_ context.Context, visits []models.Visit) error {
	if len(visits) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.doc.Visits = append(s.doc.Visits, visits...)
	if overflow := len(s.doc.Visits) - maxFileVisits; overflow > 0 {
		s.doc.Visits = s.doc.Visits[overflow:]
	}

	return s.save()
}

// save writes through a temp file and renames so a crash mid-write
// never leaves a truncated log.
func (s *FileStore) save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode visit log: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create visit log directory: %w", err)
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write visit log: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace visit log: %w", err)
	}
	return nil
}

func (s *FileStore) Recent(_ context.Context, limit int) ([]models.Visit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.doc.Visits)
	if limit <= 0 || limit > n {
		limit = n
	}

	out := make([]models.Visit, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, s.doc.Visits[i])
	}
	return out, nil
}

func (s *FileStore) Stats(_ context.Context) (models.VisitStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var stats models.VisitStats
	for _, v := range s.doc.Visits {
		stats.Add(v)
	}
	return stats, nil
}

func (s *FileStore) Close() {}

// Copyright (c) 2024-2026 IT Help San Diego Inc.
// Licensed under BUSL-1.1 — See LICENSE for terms.
package middleware

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pip-install-python/dash-improve-my-llms/internal/botdetect"
	"github.com/pip-install-python/dash-improve-my-llms/internal/models"
	"github.com/pip-install-python/dash-improve-my-llms/internal/visitstore"
)

const flushInterval = 60 * time.Second

// VisitCollector buffers page views in memory and flushes them to the
// visit store on a timer. Visitor identity is a salted daily hash of
// the client IP; the salt rotates at UTC midnight so IDs cannot be
// correlated across days.
type VisitCollector struct {
	store visitstore.Store

	mu        sync.Mutex
	dailySalt string
	saltDate  string
	buffer    []models.Visit

	stop chan struct{}
	done chan struct{}
}

func NewVisitCollector(store visitstore.Store) *VisitCollector {
	vc := &VisitCollector{
		store: store,
		stop:  make(chan struct{}),
		done:  make(chan struct{}),
	}
	vc.rotateSalt()
	go vc.flushLoop()
	return vc
}

func (vc *VisitCollector) rotateSalt() {
	today := time.Now().UTC().Format("2006-01-02")
	if vc.saltDate == today {
		return
	}
	b := make([]byte, 32)
	_, _ = rand.Read(b)
	vc.dailySalt = hex.EncodeToString(b)
	vc.saltDate = today
}

func (vc *VisitCollector) pseudoID(ip string) string {
	h := sha256.Sum256([]byte(vc.dailySalt + "|" + ip))
	return hex.EncodeToString(h[:8])
}

// deviceType buckets a user agent into desktop, mobile, tablet or bot.
// Bot detection reuses the signature registry so the analytics view
// and the negotiation layer never disagree about who is a crawler.
func deviceType(userAgent string) (string, botdetect.Classification) {
	classification := botdetect.Classify(userAgent)
	if classification.IsBot() {
		return models.DeviceBot, classification
	}

	ua := strings.ToLower(userAgent)
	switch {
	case strings.Contains(ua, "ipad") || strings.Contains(ua, "tablet"):
		return models.DeviceTablet, classification
	case strings.Contains(ua, "mobi") || strings.Contains(ua, "android") || strings.Contains(ua, "iphone"):
		return models.DeviceMobile, classification
	default:
		return models.DeviceDesktop, classification
	}
}

func skipAnalytics(path string) bool {
	switch path {
	case "/robots.txt", "/sitemap.xml", "/llms.txt", "/llms-full.txt",
		"/page.json", "/architecture.txt", "/go/health":
		return true
	}
	return strings.HasPrefix(path, "/static/") ||
		strings.HasPrefix(path, "/api/") ||
		strings.HasPrefix(path, "/favicon") ||
		strings.HasPrefix(path, "/.well-known/")
}

func normalizePath(p string) string {
	if p == "/" {
		return "/"
	}
	return strings.TrimRight(p, "/")
}

func (vc *VisitCollector) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if skipAnalytics(path) {
			c.Next()
			return
		}

		c.Next()

		if c.Writer.Status() >= 400 {
			return
		}

		device, classification := deviceType(c.Request.UserAgent())
		visit := models.Visit{
			Timestamp:   time.Now().UTC(),
			Path:        normalizePath(path),
			DeviceType:  device,
			BotCategory: string(classification.Category),
			BotName:     classification.Name,
		}

		vc.mu.Lock()
		vc.rotateSalt()
		visit.VisitorID = vc.pseudoID(c.ClientIP())
		vc.buffer = append(vc.buffer, visit)
		vc.mu.Unlock()
	}
}

func (vc *VisitCollector) flushLoop() {
	defer close(vc.done)
	ticker := time.NewTicker(flushInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			vc.Flush()
		case <-vc.stop:
			vc.Flush()
			return
		}
	}
}

// Flush drains the buffer into the store. Failed flushes drop the
// batch rather than retry; visit data is best-effort.
func (vc *VisitCollector) Flush() {
	vc.mu.Lock()
	if len(vc.buffer) == 0 {
		vc.mu.Unlock()
		return
	}
	batch := vc.buffer
	vc.buffer = nil
	vc.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := vc.store.Append(ctx, batch); err != nil {
		slog.Error("Visit flush failed", "error", err, "visits", len(batch))
		return
	}
	slog.Debug("Visits flushed", "visits", len(batch))
}

// Close stops the flush loop after one final drain.
func (vc *VisitCollector) Close() {
	close(vc.stop)
	<-vc.done
}

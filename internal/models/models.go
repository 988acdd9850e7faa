// Copyright (c) 2024-2026 IT Help San Diego Inc.
// Licensed under BUSL-1.1 — See LICENSE for terms.
package models

import "time"

// Device classes recorded per visit.
const (
	DeviceDesktop = "desktop"
	DeviceMobile  = "mobile"
	DeviceTablet  = "tablet"
	DeviceBot     = "bot"
)

// Visit is one recorded page view. VisitorID is a salted daily hash of
// the client IP, never the IP itself.
type Visit struct {
	Timestamp   time.Time `json:"timestamp" db:"ts"`
	Path        string    `json:"path" db:"path"`
	DeviceType  string    `json:"device_type" db:"device_type"`
	BotCategory string    `json:"bot_category,omitempty" db:"bot_category"`
	BotName     string    `json:"bot_name,omitempty" db:"bot_name"`
	VisitorID   string    `json:"visitor_id" db:"visitor_id"`
}

// VisitStats aggregates visits by device class and bot category for
// the admin dashboard.
type VisitStats struct {
	Desktop        int            `json:"desktop"`
	Mobile         int            `json:"mobile"`
	Tablet         int            `json:"tablet"`
	Bot            int            `json:"bot"`
	Total          int            `json:"total"`
	BotsByCategory map[string]int `json:"bots_by_category"`
}

// Add folds one visit into the stats.
func (s *VisitStats) Add(v Visit) {
	switch v.DeviceType {
	case DeviceMobile:
		s.Mobile++
	case DeviceTablet:
		s.Tablet++
	case DeviceBot:
		s.Bot++
		if s.BotsByCategory == nil {
			s.BotsByCategory = make(map[string]int)
		}
		s.BotsByCategory[v.BotCategory]++
	default:
		s.Desktop++
	}
	s.Total++
}

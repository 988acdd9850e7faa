// Copyright (c) 2024-2026 IT Help San Diego Inc.
// Licensed under BUSL-1.1 — See LICENSE for terms.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/pip-install-python/dash-improve-my-llms/internal/artifacts"
)

const Version = "1.4.0"

type Config struct {
	Port       string
	BaseURL    string
	SiteName   string
	AppVersion string

	// DatabaseURL is optional. When empty the visit log falls back to
	// the JSON file at VisitLogPath.
	DatabaseURL  string
	VisitLogPath string

	Policy artifacts.Policy
}

// Load reads configuration from the environment, with a .env file as a
// convenience for local development. Crawler policy can additionally be
// overridden from a YAML file named by POLICY_FILE.
func Load() (*Config, error) {
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:" + port
	}

	siteName := os.Getenv("SITE_NAME")
	if siteName == "" {
		siteName = "Dash Application"
	}

	visitLogPath := os.Getenv("VISIT_LOG_PATH")
	if visitLogPath == "" {
		visitLogPath = "data/visitor_analytics.json"
	}

	policy := artifacts.DefaultPolicy()
	if policyFile := os.Getenv("POLICY_FILE"); policyFile != "" {
		data, err := os.ReadFile(policyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read policy file: %w", err)
		}
		if err := yaml.Unmarshal(data, &policy); err != nil {
			return nil, fmt.Errorf("failed to parse policy file %s: %w", policyFile, err)
		}
	}
	policy.Normalize()

	return &Config{
		Port:         port,
		BaseURL:      baseURL,
		SiteName:     siteName,
		AppVersion:   Version,
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		VisitLogPath: visitLogPath,
		Policy:       policy,
	}, nil
}

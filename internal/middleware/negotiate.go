// Copyright (c) 2024-2026 IT Help San Diego Inc.
// Licensed under BUSL-1.1 — See LICENSE for terms.
package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pip-install-python/dash-improve-my-llms/internal/artifacts"
	"github.com/pip-install-python/dash-improve-my-llms/internal/botdetect"
	"github.com/pip-install-python/dash-improve-my-llms/internal/pagegraph"
	"github.com/pip-install-python/dash-improve-my-llms/internal/telemetry"
)

// Outcome is the terminal state of a negotiation decision.
type Outcome string

const (
	OutcomeForward       Outcome = "forward"
	OutcomeBlock         Outcome = "block"
	OutcomeServeArtifact Outcome = "serve_artifact"
)

// Decision is the full result of negotiating one request. A Forward
// decision carries no payload; Block and ServeArtifact carry the
// response to write verbatim.
type Decision struct {
	Outcome        Outcome
	Status         int
	ContentType    string
	Body           string
	Classification botdetect.Classification
}

// Negotiator decides, before any route handler runs, whether a request
// is answered with a block, a pre-rendered artifact, or forwarded to
// the application. It holds only immutable policy plus the graph
// accessor, so concurrent requests need no coordination.
type Negotiator struct {
	policy  artifacts.Policy
	graphFn func() *pagegraph.Graph
	metrics *telemetry.Metrics
}

func NewNegotiator(policy artifacts.Policy, graphFn func() *pagegraph.Graph, metrics *telemetry.Metrics) *Negotiator {
	return &Negotiator{policy: policy, graphFn: graphFn, metrics: metrics}
}

// exemptPath reports whether negotiation is skipped for a path. The
// machine-readable surface itself must stay reachable by every client,
// crawlers included, or robots.txt could never be fetched.
func exemptPath(path string) bool {
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

// Decide runs the negotiation state machine for one request. Pure
// function of the user agent, the path, the policy and the current
// graph: identical requests always reach the same terminal state.
func (n *Negotiator) Decide(userAgent, path string) Decision {
	classification := botdetect.Classify(userAgent)
	if !classification.IsBot() {
		return Decision{Outcome: OutcomeForward, Classification: classification}
	}

	var allowed bool
	switch classification.Category {
	case botdetect.CategoryTraining:
		allowed = !n.policy.BlockAITraining
	case botdetect.CategorySearch:
		allowed = n.policy.AllowAISearch
	case botdetect.CategoryTraditional:
		allowed = n.policy.AllowTraditional
	}

	if !allowed {
		return Decision{
			Outcome:        OutcomeBlock,
			Status:         http.StatusForbidden,
			ContentType:    "text/plain; charset=utf-8",
			Body:           "403 Forbidden\n\nAutomated access of this kind is not permitted. See /robots.txt.\n",
			Classification: classification,
		}
	}

	if n.policy.Disallowed(path) {
		return Decision{
			Outcome:        OutcomeBlock,
			Status:         http.StatusForbidden,
			ContentType:    "text/plain; charset=utf-8",
			Body:           "403 Forbidden\n\nThis path is disallowed for crawlers. See /robots.txt.\n",
			Classification: classification,
		}
	}

	graph := n.graphFn()
	page := graph.Page(path)
	if page == nil || page.Hidden || page.BuildErr != nil {
		return Decision{
			Outcome:        OutcomeBlock,
			Status:         http.StatusNotFound,
			ContentType:    "text/plain; charset=utf-8",
			Body:           "404 Not Found\n",
			Classification: classification,
		}
	}

	body, err := artifacts.LLMSTxt(graph, page)
	if err != nil {
		return Decision{
			Outcome:        OutcomeBlock,
			Status:         http.StatusNotFound,
			ContentType:    "text/plain; charset=utf-8",
			Body:           "404 Not Found\n",
			Classification: classification,
		}
	}

	title := page.Name
	if title == "" {
		title = page.Path
	}
	return Decision{
		Outcome:        OutcomeServeArtifact,
		Status:         http.StatusOK,
		ContentType:    "text/html; charset=utf-8",
		Body:           artifacts.BotHTML(title, page.Description, body),
		Classification: classification,
	}
}

// Handler adapts the decision function into the gin pipeline. It must
// be registered before any route handler so that Block and
// ServeArtifact outcomes short-circuit with no downstream side effects.
func (n *Negotiator) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if exemptPath(path) {
			c.Next()
			return
		}

		decision := n.Decide(c.Request.UserAgent(), path)
		n.metrics.RecordClassification(decision.Classification.Category)

		if decision.Outcome == OutcomeForward {
			c.Next()
			return
		}

		traceID, _ := c.Get("trace_id")
		slog.Info("Negotiated bot request",
			"trace_id", traceID,
			"outcome", string(decision.Outcome),
			"bot", decision.Classification.Name,
			"category", string(decision.Classification.Category),
			"path", path,
			"status", decision.Status,
		)

		if decision.Outcome == OutcomeServeArtifact {
			n.metrics.RecordArtifactServe()
		} else {
			n.metrics.RecordBlock()
		}
		c.Data(decision.Status, decision.ContentType, []byte(decision.Body))
		c.Abort()
	}
}

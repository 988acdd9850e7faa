// Copyright (c) 2024-2026 IT Help San Diego Inc.
// Licensed under BUSL-1.1 — See LICENSE for terms.
package botdetect

// Category is the class of automated client a user agent resolves to.
type Category string

const (
	CategoryTraining    Category = "training"
	CategorySearch      Category = "search"
	CategoryTraditional Category = "traditional"
	CategoryNone        Category = "none"
)

// Signature maps a user-agent substring to a canonical crawler name.
// Patterns are matched case-insensitively.
type Signature struct {
	Pattern string
	Name    string
}

// Signatures for AI training crawlers. Checked first: an agent that
// advertises both a training token and anything else is training.
var trainingSignatures = []Signature{
	{"gptbot", "GPTBot"},
	{"anthropic-ai", "anthropic-ai"},
	{"claude-web", "Claude-Web"},
	{"ccbot", "CCBot"},
	{"google-extended", "Google-Extended"},
	{"applebot-extended", "Applebot-Extended"},
	{"facebookbot", "FacebookBot"},
	{"meta-externalagent", "Meta-ExternalAgent"},
	{"bytespider", "Bytespider"},
	{"cohere-ai", "cohere-ai"},
	{"omgili", "Omgili"},
	{"diffbot", "Diffbot"},
	{"timpibot", "Timpibot"},
}

// Signatures for AI search/answer products.
var searchSignatures = []Signature{
	{"chatgpt-user", "ChatGPT-User"},
	{"oai-searchbot", "OAI-SearchBot"},
	{"claudebot", "ClaudeBot"},
	{"perplexitybot", "PerplexityBot"},
	{"youbot", "YouBot"},
	{"amazonbot", "Amazonbot"},
	{"duckassistbot", "DuckAssistBot"},
}

// Signatures for conventional search-engine crawlers.
var traditionalSignatures = []Signature{
	{"googlebot", "Googlebot"},
	{"bingbot", "Bingbot"},
	{"slurp", "Slurp"},
	{"duckduckbot", "DuckDuckBot"},
	{"baiduspider", "Baiduspider"},
	{"yandexbot", "YandexBot"},
	{"applebot", "Applebot"},
	{"sogou", "Sogou"},
}

// Signatures returns the registered signatures for each category.
// The returned slices are the registry itself; callers must not mutate them.
func Signatures() map[Category][]Signature {
	return map[Category][]Signature{
		CategoryTraining:    trainingSignatures,
		CategorySearch:      searchSignatures,
		CategoryTraditional: traditionalSignatures,
	}
}

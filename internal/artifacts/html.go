// Copyright (c) 2024-2026 IT Help San Diego Inc.
// Licensed under BUSL-1.1 — See LICENSE for terms.
package artifacts

import (
	"html/template"
	"strings"
)

// botPageTemplate wraps a page's llms.txt body in minimal static HTML
// so crawlers that only render markup still get the full content. No
// scripts: everything must be readable without execution.
var botPageTemplate = template.Must(template.New("botpage").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<meta name="description" content="{{.Description}}">
<meta name="robots" content="index, follow">
</head>
<body>
<main>
<h1>{{.Title}}</h1>
{{if .Description}}<p>{{.Description}}</p>{{end}}
<pre>{{.Body}}</pre>
</main>
</body>
</html>
`))

type botPageData struct {
	Title       string
	Description string
	Body        string
}

// BotHTML renders the static HTML document served to allowed crawlers
// in place of the scripted application page.
func BotHTML(title, description, llmsBody string) string {
	var b strings.Builder
	err := botPageTemplate.Execute(&b, botPageData{
		Title:       title,
		Description: description,
		Body:        llmsBody,
	})
	if err != nil {
		return "<pre>" + template.HTMLEscapeString(llmsBody) + "</pre>"
	}
	return b.String()
}

// Copyright (c) 2024-2026 IT Help San Diego Inc.
// Licensed under BUSL-1.1 — See LICENSE for terms.
package main

import (
	"html/template"
	"strings"

	"github.com/pip-install-python/dash-improve-my-llms/internal/pagegraph"
)

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}} | {{.SiteName}}</title>
<meta name="description" content="{{.Description}}">
</head>
<body>
<h1>{{.Title}}</h1>
{{if .Description}}<p>{{.Description}}</p>{{end}}
{{range .Texts}}<p>{{.}}</p>
{{end}}{{if .NavLinks}}<nav><ul>
{{range .NavLinks}}<li><a href="{{.Href}}">{{.Label}}</a></li>
{{end}}</ul></nav>{{end}}
</body>
</html>
`))

func renderPageHTML(page *pagegraph.Page, siteName string) string {
	title := page.Name
	if title == "" {
		title = page.Path
	}

	var b strings.Builder
	err := pageTemplate.Execute(&b, struct {
		Title       string
		SiteName    string
		Description string
		Texts       []string
		NavLinks    []pagegraph.NavLink
	}{
		Title:       title,
		SiteName:    siteName,
		Description: page.Description,
		Texts:       page.Texts,
		NavLinks:    page.NavLinks,
	})
	if err != nil {
		return "<!DOCTYPE html><html><body><h1>" + template.HTMLEscapeString(title) + "</h1></body></html>"
	}
	return b.String()
}

// Package web содержит HTML-шаблоны и статику публичных страниц.
package web

import (
	"embed"
	"html/template"
	"io/fs"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// Страницы, каждая рендерится поверх base.html
const (
	PageHome     = "home.html"
	PageList     = "list.html"
	PageDetail   = "detail.html"
	PageNotFound = "not_found.html"
)

// Templates - распарсенные шаблоны по имени страницы
type Templates map[string]*template.Template

// ParseTemplates парсит base.html вместе с каждой страницей
func ParseTemplates(funcs template.FuncMap) (Templates, error) {
	pages := []string{PageHome, PageList, PageDetail, PageNotFound}

	out := make(Templates, len(pages))
	for _, page := range pages {
		tmpl, err := template.New("base.html").Funcs(funcs).
			ParseFS(templatesFS, "templates/base.html", "templates/"+page)
		if err != nil {
			return nil, err
		}
		out[page] = tmpl
	}
	return out, nil
}

// Static - файловая система для /static/*
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Package scaffold provides templates for code generation.
package scaffold

import (
	"embed"
	"strings"
	"text/template"
)

//go:embed backend/*.tmpl client/*.tmpl
var scaffoldTemplates embed.FS

// GetTemplate returns the content of an artifact template, e.g. "backend/entity.ts".
func GetTemplate(name string) (string, error) {
	content, err := scaffoldTemplates.ReadFile(name + ".tmpl")
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// TemplateFuncs returns the template function map for scaffold templates.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"join":  strings.Join,
		"quote": quote,
	}
}

// quote wraps s in single quotes for TypeScript string literals.
// e.g., "products" -> "'products'"
func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `\'`) + "'"
}

// Package scaffold provides templates for code generation.
package scaffold

import (
	"embed"
	"strconv"
	"text/template"
)

//go:embed entity/*.tmpl docs/*.tmpl
var scaffoldTemplates embed.FS

// GetEntityTemplate returns the content of an entity template.
func GetEntityTemplate(name string) (string, error) {
	content, err := scaffoldTemplates.ReadFile("entity/" + name + ".tmpl")
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// GetDocTemplate returns the content of a documentation template.
func GetDocTemplate(name string) (string, error) {
	content, err := scaffoldTemplates.ReadFile("docs/" + name + ".tmpl")
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// TemplateFuncs returns the template function map for scaffold templates.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"quote": strconv.Quote,
	}
}

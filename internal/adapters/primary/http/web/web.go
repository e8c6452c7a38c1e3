// Package web holds the embedded landing page, API docs page and OpenAPI
// document.
package web

import (
	"embed"
	"fmt"
	"html/template"

	"gopkg.in/yaml.v3"
)

//go:embed templates/*.html openapi.yaml
var assets embed.FS

// Templates parses every page template.
func Templates() (*template.Template, error) {
	tmpl, err := template.ParseFS(assets, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}

// OpenAPI decodes the embedded API description into a JSON-serializable map.
func OpenAPI() (map[string]interface{}, error) {
	raw, err := assets.ReadFile("openapi.yaml")
	if err != nil {
		return nil, fmt.Errorf("read openapi document: %w", err)
	}
	var doc map[string]interface{}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode openapi document: %w", err)
	}
	return doc, nil
}

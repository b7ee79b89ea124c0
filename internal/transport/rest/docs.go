package rest

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"

	"gopkg.in/yaml.v3"
)

//go:embed openapi.yaml
var openAPISource []byte

// DocsHandler serves the OpenAPI document and a Swagger UI page.
type DocsHandler struct {
	yamlDoc []byte
	jsonDoc []byte
	page    []byte
}

// NewDocsHandler parses the embedded OpenAPI document once. When publicURL
// is set it replaces the document's servers list.
func NewDocsHandler(publicURL string) (*DocsHandler, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(openAPISource, &doc); err != nil {
		return nil, fmt.Errorf("parse openapi document: %w", err)
	}
	if publicURL != "" {
		doc["servers"] = []map[string]any{{"url": publicURL}}
	}

	yamlDoc, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode openapi yaml: %w", err)
	}
	jsonDoc, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode openapi json: %w", err)
	}

	var page bytes.Buffer
	if err := swaggerPage.Execute(&page, struct{ SpecURL string }{"/openapi.json"}); err != nil {
		return nil, fmt.Errorf("render docs page: %w", err)
	}

	return &DocsHandler{yamlDoc: yamlDoc, jsonDoc: jsonDoc, page: page.Bytes()}, nil
}

// JSON serves GET /openapi.json.
func (h *DocsHandler) JSON(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write(h.jsonDoc) //nolint:errcheck
}

// YAML serves GET /openapi.yaml.
func (h *DocsHandler) YAML(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.Write(h.yamlDoc) //nolint:errcheck
}

// UI serves the Swagger UI page at GET /.
func (h *DocsHandler) UI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(h.page) //nolint:errcheck
}

var swaggerPage = template.Must(template.New("docs").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>Hangman Word Generator API</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js" crossorigin></script>
  <script>
    window.onload = () => {
      window.ui = SwaggerUIBundle({ url: {{.SpecURL}}, dom_id: "#swagger-ui" });
    };
  </script>
</body>
</html>
`))

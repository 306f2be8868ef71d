package renderer

import (
	"bytes"
	"context"
	"embed"
	"html/template"
)

//go:embed templates/*
var templates embed.FS

var reportTemplate = template.Must(template.ParseFS(templates, "templates/report.html.tmpl"))

func renderHTML(_ context.Context, in Input) ([]byte, error) {
	return executeTemplate(buildView(in))
}

func executeTemplate(v view) ([]byte, error) {
	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

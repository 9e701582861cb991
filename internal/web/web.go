// Package web holds the HTML pages of the student form and the admin
// dashboard, embedded into the binary.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"time"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Templates parses every page with the shared helpers
func Templates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(Funcs()).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}

// Funcs template helpers
func Funcs() template.FuncMap {
	return template.FuncMap{
		"date":  FormatDate,
		"money": FormatAmount,
	}
}

// FormatDate renders an ISO-8601 timestamp as a calendar date; unparsable
// values are shown as stored.
func FormatDate(ts string) string {
	t, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return ts
	}
	return t.Local().Format("1/2/2006")
}

// FormatAmount peso amount without trailing zeros
func FormatAmount(v float64) string {
	return "₱" + trimFloat(v)
}

func trimFloat(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}

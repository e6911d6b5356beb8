// Package renderer turns ledger views into markdown reports.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templatesFS embed.FS

var templates, _ = fs.Sub(templatesFS, "templates")

var funcs = template.FuncMap{
	"cell":  cell,
	"lower": strings.ToLower,
}

// cell escapes text so that it stays in its markdown table cell.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}

// RenderStock renders the stock view to a markdown string.
func RenderStock(v *StockView) string {
	return renderTemplate("stock", "stock.md", nil, v)
}

// RenderLedger renders a purchases or sales listing to a markdown string.
func RenderLedger(v *LedgerView) string {
	return renderTemplate("ledger", "ledger.md", nil, v)
}

// RenderDashboard renders the dashboard metrics and the low stock alert.
func RenderDashboard(d *Dashboard) string {
	partials := map[string]string{
		"low_stock": "low_stock.md",
	}
	return renderTemplate("dashboard", "dashboard.md", partials, d)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}

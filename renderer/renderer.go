// Package renderer turns the library's report structs into markdown. Views
// are plain structs built from the data layer; rendering is a text/template
// over embedded partials.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templates embed.FS

// RenderDashboard renders the dashboard view to a markdown string.
func RenderDashboard(d *Dashboard) string {
	partials := map[string]string{
		"dashboard_title":       "templates/dashboard_title.md",
		"dashboard_summary":     "templates/dashboard_summary.md",
		"dashboard_alerts":      "templates/dashboard_alerts.md",
		"dashboard_budgets":     "templates/dashboard_budgets.md",
		"dashboard_recent":      "templates/dashboard_recent.md",
		"dashboard_investments": "templates/dashboard_investments.md",
	}
	return renderTemplate("dashboard", "templates/dashboard.md", partials, d)
}

// RenderMonthly renders the monthly report view to a markdown string.
func RenderMonthly(v *MonthlyView) string {
	partials := map[string]string{
		"monthly_title":      "templates/monthly_title.md",
		"monthly_summary":    "templates/monthly_summary.md",
		"monthly_categories": "templates/monthly_categories.md",
		"monthly_tags":       "templates/monthly_tags.md",
	}
	return renderTemplate("monthly", "templates/monthly.md", partials, v)
}

// RenderAlerts renders a standalone alert list to a markdown string.
func RenderAlerts(alerts []AlertRow) string {
	return renderTemplate("alerts", "templates/alerts.md", nil, alerts)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			var readErr error
			content, readErr = fs.ReadFile(templates, file)
			if readErr != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
			}
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

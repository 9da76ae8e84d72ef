package renderer

import (
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

// RenderBalances renders a balance report to a markdown string.
func RenderBalances(r *BalanceReport) string {
	partials := map[string]string{
		"balances_title":   "balances_title.md",
		"balances_section": "balances_section.md",
	}
	return renderTemplate("balances", "balances.md", partials, r)
}

// RenderSettlement renders a settlement plan to a markdown string.
func RenderSettlement(r *SettlementReport) string {
	partials := map[string]string{
		"settlement_title":     "settlement_title.md",
		"settlement_transfers": "settlement_transfers.md",
	}
	return renderTemplate("settlement", "settlement.md", partials, r)
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

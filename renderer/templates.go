// Package renderer turns trip data into markdown reports.
//
// Reports are assembled from text/template files embedded alongside the
// package. Each report has a main "assembly" template and a set of partials
// named after it (e.g. balances.md and balances_title.md).
package renderer

import "embed"

//go:embed *.md
var templates embed.FS

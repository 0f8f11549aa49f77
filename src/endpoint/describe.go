// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package endpoint

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

// Describe writes the catalogue as a markdown table, one row per operation.
func (c *Catalogue) Describe(w io.Writer) error {
	if len(c.order) == 0 {
		_, err := fmt.Fprintln(w, "No operations defined.")
		return err
	}

	table := tablewriter.NewTable(w,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)
	table.Header([]string{"Operation", "Method", "Path", "Parameters", "Body", "Description"})

	rows := make([][]string, 0, len(c.order))
	for _, op := range c.order {
		rows = append(rows, []string{
			op.Name,
			op.Method,
			op.Path,
			paramSummary(op.Params),
			bodySummary(op.Body),
			op.Description,
		})
	}

	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}

func paramSummary(params []Param) string {
	if len(params) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(params))
	for _, p := range params {
		s := p.Name + " (" + string(p.In)
		if p.Required {
			s += ", required"
		}
		parts = append(parts, s+")")
	}
	return strings.Join(parts, ", ")
}

func bodySummary(b *Body) string {
	switch {
	case b == nil:
		return "-"
	case b.Required:
		return "required"
	default:
		return "optional"
	}
}

// SPDX-License-Identifier: AGPL-3.0-or-later

// Package render provides deterministic Markdown rendering helpers for
// the demo CLI's debug output.
package render

import (
	"fmt"
	"strings"
)

// Table renders a Markdown table. Rows must already be sorted by the
// caller if determinism is required — this function does not sort.
func Table(headers []string, rows [][]string) string {
	var b strings.Builder

	b.WriteString("| " + strings.Join(headers, " | ") + " |\n")

	b.WriteString("|")
	for range headers {
		b.WriteString(" --- |")
	}
	b.WriteString("\n")

	for _, row := range rows {
		b.WriteString("| " + strings.Join(row, " | ") + " |\n")
	}

	return b.String()
}

// Header renders a Markdown header of the given level.
func Header(level int, text string) string {
	return fmt.Sprintf("%s %s\n\n", strings.Repeat("#", level), text)
}

package cli

import "strings"

// Table is a simple column-aligned text table.
type Table struct {
	headers []string
	rows    [][]string
	padding int
}

// NewTable creates a new table with the given headers.
func NewTable(headers []string) *Table {
	return &Table{
		headers: headers,
		rows:    make([][]string, 0),
		padding: 2,
	}
}

// AddRow adds a row to the table. Short rows are padded to the header
// count, long rows truncated.
func (t *Table) AddRow(row []string) {
	normalized := make([]string, len(t.headers))
	copy(normalized, row)
	t.rows = append(t.rows, normalized)
}

// Render formats the table as a string with a dashed separator under the
// header row.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = len(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	gap := strings.Repeat(" ", t.padding)
	var sb strings.Builder

	writeRow := func(cells []string) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = padRight(cell, widths[i])
		}
		sb.WriteString(strings.TrimRight(strings.Join(parts, gap), " "))
		sb.WriteString("\n")
	}

	writeRow(t.headers)

	seps := make([]string, len(t.headers))
	for i, w := range widths {
		seps[i] = strings.Repeat("-", w)
	}
	writeRow(seps)

	for _, row := range t.rows {
		writeRow(row)
	}

	return sb.String()
}

// padRight pads a string with spaces to the given width.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

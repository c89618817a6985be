// Package components provides reusable terminal rendering blocks.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/bnema/faultline/internal/adapters/in/cli/ui/styles"
)

// TableColumn defines a table column. A zero Width leaves the column unbounded.
type TableColumn struct {
	Title string
	Width int
}

// Table is a bordered table with truncated cells.
type Table struct {
	columns     []TableColumn
	rows        [][]string
	headerStyle lipgloss.Style
	cellStyle   lipgloss.Style
	borderStyle lipgloss.Style
}

// TableOption configures a Table.
type TableOption func(*Table)

// NewTable creates a table with the given columns.
func NewTable(columns []TableColumn, opts ...TableOption) *Table {
	t := &Table{
		columns:     columns,
		headerStyle: styles.Theme.TableHeader,
		cellStyle:   styles.Theme.TableCell,
		borderStyle: styles.Theme.TableBorder,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// WithPlainStyle drops colors and padding, mostly for tests and pipes.
func WithPlainStyle() TableOption {
	return func(t *Table) {
		t.headerStyle = lipgloss.NewStyle()
		t.cellStyle = lipgloss.NewStyle()
		t.borderStyle = lipgloss.NewStyle()
	}
}

// AddRow appends a row.
func (t *Table) AddRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

// Render renders the table as a string.
func (t *Table) Render() string {
	if len(t.columns) == 0 {
		return ""
	}

	headers := make([]string, len(t.columns))
	for i, col := range t.columns {
		headers[i] = truncateCell(col.Title, col.Width)
	}

	rows := make([][]string, len(t.rows))
	for i, row := range t.rows {
		rows[i] = make([]string, len(row))
		for j, cell := range row {
			rows[i][j] = truncateCell(cell, t.width(j))
		}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(t.borderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := t.cellStyle
			if row == table.HeaderRow {
				s = t.headerStyle
			}
			if w := t.width(col); w > 0 {
				s = s.Width(w).MaxWidth(w)
			}
			return s
		}).
		String()
}

func (t *Table) width(col int) int {
	if col < 0 || col >= len(t.columns) {
		return 0
	}
	return t.columns[col].Width
}

// truncateCell shortens value to maxWidth display cells with an ellipsis.
// Styled values are left alone since escape codes have no display width.
func truncateCell(value string, maxWidth int) string {
	if strings.Contains(value, "\x1b[") {
		return value
	}
	if maxWidth <= 0 || runewidth.StringWidth(value) <= maxWidth {
		return value
	}
	if maxWidth <= 3 {
		return strings.Repeat(".", maxWidth)
	}

	target := maxWidth - 3
	var b strings.Builder
	width := 0
	g := uniseg.NewGraphemes(value)
	for g.Next() {
		w := runewidth.StringWidth(g.Str())
		if width+w > target {
			break
		}
		b.WriteString(g.Str())
		width += w
	}
	return b.String() + "..."
}

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/example/upctl/pkg/upapi"
)

// maxColumnWidth caps every table column; longer values are truncated.
const maxColumnWidth = 40

// column pairs a header label with an accessor extracting the cell value from
// a resource.
type column struct {
	Header string
	Value  func(upapi.Resource) string
}

// renderTable prints rows as an aligned table: header, divider, data rows,
// then a count summary. An empty row set prints a notice instead.
func renderTable(w io.Writer, cols []column, rows []upapi.Resource) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	widths := make([]int, len(cols))
	cells := make([][]string, len(rows))
	for i, col := range cols {
		widths[i] = len(col.Header)
	}
	for r, row := range rows {
		cells[r] = make([]string, len(cols))
		for i, col := range cols {
			v := truncate(col.Value(row))
			cells[r][i] = v
			if len(v) > widths[i] {
				widths[i] = len(v)
			}
		}
	}

	header := make([]string, len(cols))
	rule := make([]string, len(cols))
	for i, col := range cols {
		header[i] = pad(col.Header, widths[i])
		rule[i] = strings.Repeat("-", widths[i])
	}
	fmt.Fprintln(w, strings.Join(header, "  "))
	fmt.Fprintln(w, strings.Join(rule, "  "))
	for _, row := range cells {
		for i := range row {
			row[i] = pad(row[i], widths[i])
		}
		fmt.Fprintln(w, strings.Join(row, "  "))
	}

	fmt.Fprintln(w)
	if len(rows) == 1 {
		fmt.Fprintln(w, "1 result")
	} else {
		fmt.Fprintf(w, "%d results\n", len(rows))
	}
}

func truncate(s string) string {
	if len(s) > maxColumnWidth {
		return s[:maxColumnWidth]
	}
	return s
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// renderJSON pretty-prints v with 2-space indentation, passing the structure
// through exactly as the gateway returned it.
func renderJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	fmt.Fprintln(w, string(out))
	return nil
}

// renderList dispatches a resource list to JSON or table output.
func renderList(w io.Writer, asJSON bool, cols []column, rows []upapi.Resource) error {
	if asJSON {
		return renderJSON(w, rows)
	}
	renderTable(w, cols, rows)
	return nil
}

// renderOne dispatches a single resource. A nil resource means the API
// answered without a data object.
func renderOne(w io.Writer, asJSON bool, cols []column, res *upapi.Resource) error {
	if res == nil {
		fmt.Fprintln(w, "No results found.")
		return nil
	}
	if asJSON {
		return renderJSON(w, res)
	}
	renderTable(w, cols, []upapi.Resource{*res})
	return nil
}

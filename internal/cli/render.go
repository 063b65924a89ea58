package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/tripdesk/internal/crud"
	"golang.org/x/term"
)

const (
	defaultWidth = 120
	minCellWidth = 6
	colPadding   = 2
)

// getTermSize is a test seam for term.GetSize.
var getTermSize = term.GetSize

// termWidth returns the width of stdout, or defaultWidth when stdout is not a
// terminal.
func termWidth() int {
	w, _, err := getTermSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}

// clip shortens s to n runes, marking the cut with "~".
func clip(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "~"
}

// renderTable writes headers and rows as aligned columns no wider than width
// in total.
func renderTable(w io.Writer, headers []string, rows [][]string, width int) {
	if len(headers) == 0 {
		return
	}
	cell := width/len(headers) - colPadding
	if cell < minCellWidth {
		cell = minCellWidth
	}

	tw := tabwriter.NewWriter(w, 0, 0, colPadding, ' ', 0)
	line := func(cells []string) {
		out := make([]string, len(cells))
		for i, c := range cells {
			out[i] = clip(c, cell)
		}
		fmt.Fprintln(tw, strings.Join(out, "\t"))
	}

	line(headers)
	under := make([]string, len(headers))
	for i, h := range headers {
		under[i] = strings.Repeat("-", len([]rune(clip(h, cell))))
	}
	line(under)
	for _, r := range rows {
		line(r)
	}
	_ = tw.Flush()
}

func (a *App) renderList(s crud.Session) {
	q := s.Query()
	fmt.Fprintf(a.out, "== %s ==\n", s.Title())
	if q.Keyword != "" || (q.Category != "" && q.Category != crud.All) {
		fmt.Fprintf(a.out, "search: %q  filter: %s\n", q.Keyword, q.Category)
	}
	rows := s.Rows()
	if len(rows) == 0 {
		fmt.Fprintln(a.out, "(no records)")
		return
	}
	renderTable(a.out, s.Headers(), rows, termWidth())
	fmt.Fprintf(a.out, "%d record(s)\n", len(rows))
}

func (a *App) renderFields(s crud.Session) {
	fields := s.Fields()
	rows := make([][]string, len(fields))
	for i, f := range fields {
		req := ""
		if f.Required {
			req = "*"
		}
		rows[i] = []string{f.Name, f.Label, req, f.Value}
	}
	renderTable(a.out, []string{"Field", "Label", "Req", "Value"}, rows, termWidth())
}

func (a *App) renderOptions(opts []crud.Option) {
	if len(opts) == 0 {
		fmt.Fprintln(a.out, "(free text)")
		return
	}
	rows := make([][]string, len(opts))
	for i, o := range opts {
		rows[i] = []string{o.ID, o.Name}
	}
	renderTable(a.out, []string{"ID", "Name"}, rows, termWidth())
}

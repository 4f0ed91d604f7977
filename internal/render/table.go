package render

import (
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/g5becks/scriptdoc/internal/libdoc"
)

const summaryLength = 60

func writeTable(w io.Writer, m *libdoc.Model) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)

	t.AppendHeader(table.Row{"GROUP", "FUNCTION", "ARGS", "DESCRIPTION"})

	for _, fn := range normalize(m).Functions {
		argNames := make([]string, len(fn.Args))
		for i, arg := range fn.Args {
			argNames[i] = arg.Name
		}

		t.AppendRow(table.Row{
			fn.Group,
			fn.Name,
			strings.Join(argNames, ", "),
			truncate(strings.Join(fn.Doc, " "), summaryLength),
		})
	}

	t.Render()
}

// truncate shortens s to at most maxLen runes.
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if maxLen <= 0 || len(runes) <= maxLen {
		return s
	}
	const ellipsis = "..."
	if maxLen <= len(ellipsis) {
		return ellipsis
	}
	return string(runes[:maxLen-len(ellipsis)]) + ellipsis
}

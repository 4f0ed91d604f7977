package render

import (
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"github.com/g5becks/scriptdoc/internal/libdoc"
)

const ungroupedTitle = "Ungrouped"

// Markdown renders the model as a reference document with one section per
// group, in model order.
func Markdown(m *libdoc.Model) string {
	var b strings.Builder
	b.WriteString("# Library Reference\n")

	currentGroup := ""
	first := true
	for _, fn := range normalize(m).Functions {
		if first || fn.Group != currentGroup {
			title := fn.Group
			if !fn.HasGroup() {
				title = ungroupedTitle
			}
			fmt.Fprintf(&b, "\n## %s\n", title)
			currentGroup = fn.Group
			first = false
		}

		writeFunction(&b, fn)
	}

	return b.String()
}

func writeFunction(b *strings.Builder, fn *libdoc.Function) {
	argNames := make([]string, len(fn.Args))
	for i, arg := range fn.Args {
		argNames[i] = arg.Name
	}

	fmt.Fprintf(b, "\n### %s\n\n", fn.Name)
	fmt.Fprintf(b, "`%s(%s)`\n", fn.Name, strings.Join(argNames, ", "))

	if len(fn.Doc) > 0 {
		fmt.Fprintf(b, "\n%s\n", strings.Join(fn.Doc, "\n"))
	}

	if len(fn.Args) > 0 {
		b.WriteString("\n#### Arguments\n\n")
		for _, arg := range fn.Args {
			fmt.Fprintf(b, "- **%s** - %s\n", arg.Name, strings.Join(arg.Doc, " "))
		}
	}

	if len(fn.Return) > 0 {
		b.WriteString("\n#### Returns\n\n")
		fmt.Fprintf(b, "%s\n", strings.Join(fn.Return, "\n"))
	}
}

// HTML renders the Markdown reference to an HTML fragment. Raw HTML in
// annotation text is dropped.
func HTML(m *libdoc.Model) []byte {
	// Parsers carry state and cannot be reused across documents.
	mdParser := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags | html.SkipHTML})

	return markdown.ToHTML([]byte(Markdown(m)), mdParser, renderer)
}

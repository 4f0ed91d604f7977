// Package render serializes the documentation model.
package render

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"github.com/samber/oops"
	"gopkg.in/yaml.v3"

	"github.com/g5becks/scriptdoc/internal/libdoc"
)

const (
	FormatJSON     = "json"
	FormatYAML     = "yaml"
	FormatTable    = "table"
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
)

// Options controls output formatting.
type Options struct {
	Format string
	// Indent is the number of spaces per level for json and yaml.
	Indent int
}

// Write renders m to w in the requested format.
func Write(w io.Writer, m *libdoc.Model, opts Options) error {
	switch opts.Format {
	case FormatJSON, "":
		return writeJSON(w, m, opts.Indent)
	case FormatYAML:
		return writeYAML(w, m, opts.Indent)
	case FormatTable:
		writeTable(w, m)
		return nil
	case FormatMarkdown:
		_, err := io.WriteString(w, Markdown(m))
		return wrapWriteErr(err, opts.Format)
	case FormatHTML:
		_, err := w.Write(HTML(m))
		return wrapWriteErr(err, opts.Format)
	default:
		return oops.
			Code("RENDER_ERROR").
			With("format", opts.Format).
			Hint("Supported formats: json, yaml, table, markdown, html").
			Errorf("unknown output format %q", opts.Format)
	}
}

func writeJSON(w io.Writer, m *libdoc.Model, indent int) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", strings.Repeat(" ", indent))

	if err := encoder.Encode(normalize(m)); err != nil {
		return oops.
			Code("RENDER_ERROR").
			Wrapf(err, "encoding model as json")
	}

	return nil
}

func writeYAML(w io.Writer, m *libdoc.Model, indent int) error {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	if indent > 0 {
		encoder.SetIndent(indent)
	}

	if err := encoder.Encode(normalize(m)); err != nil {
		return oops.
			Code("RENDER_ERROR").
			Wrapf(err, "encoding model as yaml")
	}

	if err := encoder.Close(); err != nil {
		return oops.
			Code("RENDER_ERROR").
			Wrapf(err, "flushing yaml encoder")
	}

	_, err := w.Write(buf.Bytes())
	return wrapWriteErr(err, FormatYAML)
}

// normalize guarantees "functions" is an array, never null.
func normalize(m *libdoc.Model) *libdoc.Model {
	if m == nil || m.Functions == nil {
		return &libdoc.Model{Functions: []*libdoc.Function{}}
	}
	return m
}

func wrapWriteErr(err error, format string) error {
	if err == nil {
		return nil
	}

	return oops.
		Code("WRITE_FAILED").
		With("format", format).
		Wrapf(err, "writing %s output", format)
}

package argbind

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"text/template"
)

// Usage is a formatted usage handle produced by the descriptive backend.
type Usage struct {
	text string
}

func (u *Usage) String() string {
	return u.text
}

func (u *Usage) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, u.text)
	return int64(n), err
}

var usageTemplateString = `USAGE:
    {{.Name}}{{if .Rows}} [OPTIONS]{{end}} [ARGS]

{{- if .Rows}}

OPTIONS:
{{- range .Rows}}
\t    \t{{.Flags}}
{{- if .Arg}} <{{.Arg}}>{{end}}\t
{{- if .Doc}}  {{.Doc}}{{end}}
{{- if .Required}}  (required){{end}}
{{- if .Default}}  (default: {{.Default}}){{end}}
{{- end}}

{{- end}}
`

var usageTemplate = template.Must(
	template.New("usage").Parse(usageTemplateString),
)

type usageRow struct {
	Flags    string
	Arg      string
	Doc      string
	Default  string
	Required bool
}

func usageRowFor(opt Option) usageRow {
	shape := opt.shape()

	flags := make([]string, 0, len(shape.names))
	for _, n := range shape.names {
		if len(n) == 1 {
			flags = append(flags, "-"+n)
		} else {
			flags = append(flags, "--"+n)
		}
	}
	if shape.kind == kindBool {
		flags = append(flags, "--no"+shape.names[0])
	}

	row := usageRow{
		Flags:    strings.Join(flags, ", "),
		Doc:      opt.Doc,
		Required: opt.Required,
	}
	if opt.HasDefault && !opt.Required {
		row.Default = fmt.Sprintf("%v", opt.Default)
	}
	if opt.HasArg() {
		row.Arg = placeholderFor(shape)
	}
	return row
}

func placeholderFor(shape optionShape) string {
	kind := shape.kind
	if kind == kindList {
		kind = shape.elem
	}
	switch kind {
	case kindInt:
		return "INT"
	case kindFloat:
		return "NUM"
	case kindDuration:
		return "DURATION"
	case kindMap:
		return "KEY=VALUE"
	default:
		return "VALUE"
	}
}

// WriteUsage renders an options summary for the binder's current grammar.
// Unlike ProcessedArgs.Usage it works with any backend.
func (b *Binder) WriteUsage(w io.Writer) error {
	opts, err := b.Options()
	if err != nil {
		return err
	}

	rows := make([]usageRow, 0, len(opts))
	for _, opt := range opts {
		rows = append(rows, usageRowFor(opt))
	}
	data := struct {
		Name string
		Rows []usageRow
	}{
		Name: b.Name,
		Rows: rows,
	}

	tw := newEscapedTabWriter(w)
	if err := usageTemplate.Execute(tw, data); err != nil {
		return err
	}
	return tw.Flush()
}

// UsageString renders WriteUsage into a string.
func (b *Binder) UsageString() string {
	sb := strings.Builder{}
	if err := b.WriteUsage(&sb); err != nil {
		return ""
	}
	return sb.String()
}

// escapedTabWriter lets the template express tab stops as \t literals so
// the template itself stays readable.
type escapedTabWriter struct {
	replacer  *strings.Replacer
	tabWriter *tabwriter.Writer
}

func newEscapedTabWriter(w io.Writer) escapedTabWriter {
	return escapedTabWriter{
		replacer:  strings.NewReplacer(`\t`, "\t", `\f`, "\f"),
		tabWriter: tabwriter.NewWriter(w, 0, 0, 0, ' ', 0),
	}
}

func (w escapedTabWriter) Write(p []byte) (int, error) {
	return w.replacer.WriteString(w.tabWriter, string(p))
}

func (w escapedTabWriter) Flush() error {
	return w.tabWriter.Flush()
}

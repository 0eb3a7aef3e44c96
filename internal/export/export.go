// Package export writes workflows out as YAML, JSON or Markdown files.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	wferrors "github.com/chazuruo/warpflow/internal/errors"
	"github.com/chazuruo/warpflow/internal/workflows"
	"github.com/chazuruo/warpflow/internal/workflows/store"
)

// Format represents the export format.
type Format string

const (
	// FormatYAML exports the workflow document itself.
	FormatYAML Format = "yaml"
	// FormatJSON exports the workflow as a JSON object.
	FormatJSON Format = "json"
	// FormatMarkdown exports a human readable page.
	FormatMarkdown Format = "md"
)

// Formats lists the supported formats.
var Formats = []Format{FormatYAML, FormatJSON, FormatMarkdown}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: unsupported export format %q (want yaml, json or md)", wferrors.ErrInvalid, s)
}

// Exporter renders workflows in one format.
type Exporter struct {
	format   Format
	template *template.Template
}

// Options contains export options.
type Options struct {
	Format Format
	// Template is a text/template file used instead of the built-in
	// Markdown layout. Only valid with FormatMarkdown.
	Template string
}

// NewExporter creates a new exporter.
func NewExporter(opts Options) (*Exporter, error) {
	e := &Exporter{format: opts.Format}

	switch opts.Format {
	case FormatYAML, FormatJSON:
		if opts.Template != "" {
			return nil, fmt.Errorf("%w: templates only apply to the md format", wferrors.ErrInvalid)
		}
	case FormatMarkdown:
		tmpl, err := loadTemplate(opts.Template)
		if err != nil {
			return nil, err
		}
		e.template = tmpl
	default:
		return nil, fmt.Errorf("%w: unsupported export format %q", wferrors.ErrInvalid, opts.Format)
	}

	return e, nil
}

func loadTemplate(path string) (*template.Template, error) {
	content := builtinMarkdownTemplate
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, wferrors.Path("read", path, err)
		}
		content = string(data)
	}

	tmpl, err := template.New("export").Funcs(template.FuncMap{
		"value": workflows.StringValue,
		"join":  strings.Join,
	}).Parse(content)
	if err != nil {
		return nil, wferrors.Parse(err)
	}
	return tmpl, nil
}

// Format returns the export format.
func (e *Exporter) Format() Format {
	return e.format
}

// Export renders wf.
func (e *Exporter) Export(wf workflows.Workflow) ([]byte, error) {
	switch e.format {
	case FormatYAML:
		return workflows.MarshalWorkflow(&wf)
	case FormatJSON:
		data, err := json.MarshalIndent(wf, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode workflow: %w", err)
		}
		return append(data, '\n'), nil
	default:
		var buf bytes.Buffer
		if err := e.template.Execute(&buf, wf); err != nil {
			return nil, fmt.Errorf("executing template: %w", err)
		}
		return buf.Bytes(), nil
	}
}

// ExportToDir writes wf into dir as <slug>.<format>, adding a numeric
// suffix when that file already exists. It returns the path written.
func (e *Exporter) ExportToDir(wf workflows.Workflow, dir string) (string, error) {
	data, err := e.Export(wf)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", wferrors.Path("create", dir, err)
	}

	slug := store.UniqueSlug(wf.Name, func(slug string) bool {
		_, err := os.Lstat(filepath.Join(dir, slug+"."+string(e.format)))
		return err == nil
	})
	path := filepath.Join(dir, slug+"."+string(e.format))

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", wferrors.Path("write", path, err)
	}
	return path, nil
}

// builtinMarkdownTemplate is the default Markdown template.
const builtinMarkdownTemplate = "# {{.Name}}\n" +
	"{{with .Description}}\n{{value .}}\n{{end}}" +
	"{{if .Tags}}\n**Tags:** {{join .Tags \", \"}}\n{{end}}" +
	"{{if .Shells}}\n**Shells:** {{range $i, $s := .Shells}}{{if $i}}, {{end}}{{$s}}{{end}}\n{{end}}" +
	"\n```sh\n{{.Command}}\n```\n" +
	"{{if .Arguments}}\n## Arguments\n\n{{range .Arguments}}- `{{.Name}}`" +
	"{{with .Description}}: {{value .}}{{end}}" +
	"{{with .DefaultValue}} (default: `{{value .}}`){{end}}\n{{end}}{{end}}" +
	"{{if or .Author .SourceURL}}\n---\n{{with .Author}}Author: {{value .}}{{with $.AuthorURL}} <{{value .}}>{{end}}\n{{end}}" +
	"{{with .SourceURL}}Source: {{value .}}\n{{end}}{{end}}"

// Package inspect exports parsed runs for debugging markup.
//
// The table format is meant for people and shows a styled preview of each
// run. The yaml, json and xml formats describe the same records for tools.
package inspect

import (
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/arthur-debert/tagterm/pkg/errors"
	"github.com/arthur-debert/tagterm/pkg/markup"
	"github.com/beevik/etree"
	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Format is an export format.
type Format string

// Supported formats
const (
	FormatTable Format = "table"
	FormatYAML  Format = "yaml"
	FormatJSON  Format = "json"
	FormatXML   Format = "xml"
)

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{FormatTable, FormatYAML, FormatJSON, FormatXML}
}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", errors.Newf(errors.ErrExportFormat, "unknown export format %q", s).
		WithDetail("format", s)
}

// Record is the exported form of a run.
type Record struct {
	Text      string `json:"text" yaml:"text"`
	Bold      bool   `json:"bold" yaml:"bold"`
	Underline bool   `json:"underline" yaml:"underline"`
	Color     string `json:"color,omitempty" yaml:"color,omitempty"`
}

// Records converts runs to records. Uncolored runs have an empty Color.
func Records(runs []markup.Run) []Record {
	records := make([]Record, 0, len(runs))
	for _, r := range runs {
		rec := Record{
			Text:      r.Text,
			Bold:      r.Style.Bold,
			Underline: r.Style.Underline,
		}
		if r.Style.Color.IsSet() {
			rec.Color = r.Style.Color.String()
		}
		records = append(records, rec)
	}
	return records
}

type options struct {
	preview *lipgloss.Renderer
}

// Option configures Export.
type Option func(*options)

// WithPreview sets the renderer used for the table preview column.
// Without it the preview is omitted.
func WithPreview(r *lipgloss.Renderer) Option {
	return func(o *options) {
		o.preview = r
	}
}

// Export writes runs to w in format.
func Export(w io.Writer, runs []markup.Run, format Format, opts ...Option) error {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var err error
	switch format {
	case FormatTable:
		err = writeTable(w, runs, o.preview)
	case FormatYAML:
		err = writeYAML(w, Records(runs))
	case FormatJSON:
		err = writeJSON(w, Records(runs))
	case FormatXML:
		err = writeXML(w, Records(runs))
	default:
		return errors.Newf(errors.ErrExportFormat, "unknown export format %q", string(format)).
			WithDetail("format", string(format))
	}
	if err != nil {
		return errors.Wrapf(err, errors.ErrRenderWrite, "failed to export %s", string(format))
	}
	return nil
}

func writeYAML(w io.Writer, records []Record) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(records); err != nil {
		return err
	}
	return enc.Close()
}

func writeJSON(w io.Writer, records []Record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

func writeXML(w io.Writer, records []Record) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("runs")
	for _, rec := range records {
		el := root.CreateElement("run")
		el.CreateAttr("bold", strconv.FormatBool(rec.Bold))
		el.CreateAttr("underline", strconv.FormatBool(rec.Underline))
		if rec.Color != "" {
			el.CreateAttr("color", rec.Color)
		}
		el.SetText(rec.Text)
	}
	doc.Indent(2)
	_, err := doc.WriteTo(w)
	return err
}

// Package output renders command results as styled text, JSON, or LaTeX.
// Commands build a Report and hand it to a Renderer; the renderer owns
// layout so every command formats the same way.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/starward/internal/astro"
	"github.com/litescript/starward/internal/verbose"
)

// Format selects an output encoding.
type Format int

const (
	FormatPlain Format = iota
	FormatJSON
	FormatLaTeX
)

// ParseFormat parses a --format value.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "plain", "text":
		return FormatPlain, nil
	case "json":
		return FormatJSON, nil
	case "latex", "tex":
		return FormatLaTeX, nil
	default:
		return FormatPlain, fmt.Errorf("unknown output format %q (plain, json, latex)", s)
	}
}

// Field is one labeled value in a report. Raw, when set, is what the JSON
// encoding emits; otherwise the display string is used.
type Field struct {
	Label string
	Value string
	Key   string // JSON key, lower_snake
	Raw   any
}

// Report is a renderable command result: a title, ordered fields, and
// optionally the computation steps behind them.
type Report struct {
	Title  string
	Fields []Field
	Steps  []verbose.Step
}

// Add appends a field with a display string only.
func (r *Report) Add(label, key, value string) {
	r.Fields = append(r.Fields, Field{Label: label, Key: key, Value: value})
}

// AddRaw appends a field carrying a machine-readable value for JSON.
func (r *Report) AddRaw(label, key, value string, raw any) {
	r.Fields = append(r.Fields, Field{Label: label, Key: key, Value: value, Raw: raw})
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	stepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))
)

// Renderer writes reports to a stream in one format.
type Renderer struct {
	w       io.Writer
	format  Format
	noColor bool
}

// NewRenderer creates a renderer. noColor disables lipgloss styling for
// plain output; JSON and LaTeX are never styled.
func NewRenderer(w io.Writer, format Format, noColor bool) *Renderer {
	return &Renderer{w: w, format: format, noColor: noColor}
}

// Render writes the report in the renderer's format.
func (r *Renderer) Render(rep Report) error {
	switch r.format {
	case FormatJSON:
		return r.renderJSON(rep)
	case FormatLaTeX:
		return r.renderLaTeX(rep)
	default:
		return r.renderPlain(rep)
	}
}

func (r *Renderer) style(s lipgloss.Style, text string) string {
	if r.noColor {
		return text
	}
	return s.Render(text)
}

func (r *Renderer) renderPlain(rep Report) error {
	var b strings.Builder

	if rep.Title != "" {
		b.WriteString(r.style(titleStyle, rep.Title))
		b.WriteString("\n")
	}

	width := 0
	for _, f := range rep.Fields {
		if len(f.Label) > width {
			width = len(f.Label)
		}
	}
	for _, f := range rep.Fields {
		label := fmt.Sprintf("%-*s", width, f.Label)
		b.WriteString("  ")
		b.WriteString(r.style(labelStyle, label))
		b.WriteString("  ")
		b.WriteString(r.style(valueStyle, f.Value))
		b.WriteString("\n")
	}

	if len(rep.Steps) > 0 {
		b.WriteString("\n")
		b.WriteString(r.style(titleStyle, "Steps"))
		b.WriteString("\n")
		for i, s := range rep.Steps {
			b.WriteString(r.style(stepStyle, fmt.Sprintf("  %2d. %s", i+1, s.String())))
			b.WriteString("\n")
		}
	}

	_, err := io.WriteString(r.w, b.String())
	return err
}

func (r *Renderer) renderJSON(rep Report) error {
	obj := map[string]any{}
	for _, f := range rep.Fields {
		key := f.Key
		if key == "" {
			key = strings.ReplaceAll(strings.ToLower(f.Label), " ", "_")
		}
		if f.Raw != nil {
			obj[key] = f.Raw
		} else {
			obj[key] = f.Value
		}
	}
	if len(rep.Steps) > 0 {
		steps := make([]map[string]any, 0, len(rep.Steps))
		for _, s := range rep.Steps {
			m := map[string]any{"name": s.Name}
			if s.Formula != "" {
				m["formula"] = s.Formula
				m["value"] = s.Value
			}
			if s.Text != "" {
				m["text"] = s.Text
			}
			steps = append(steps, m)
		}
		obj["steps"] = steps
	}

	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	return enc.Encode(obj)
}

// latexEscape covers the characters that actually occur in report values.
var latexEscaper = strings.NewReplacer(
	"\\", `\textbackslash{}`,
	"&", `\&`,
	"%", `\%`,
	"#", `\#`,
	"_", `\_`,
	"°", `$^\circ$`,
)

func (r *Renderer) renderLaTeX(rep Report) error {
	var b strings.Builder

	if rep.Title != "" {
		fmt.Fprintf(&b, "%% %s\n", rep.Title)
	}
	b.WriteString("\\begin{tabular}{ll}\n")
	for _, f := range rep.Fields {
		fmt.Fprintf(&b, "  %s & %s \\\\\n", latexEscaper.Replace(f.Label), latexEscaper.Replace(f.Value))
	}
	b.WriteString("\\end{tabular}\n")

	if len(rep.Steps) > 0 {
		b.WriteString("\\begin{align*}\n")
		for _, s := range rep.Steps {
			if s.Formula != "" {
				fmt.Fprintf(&b, "  \\text{%s}: \\quad & %s = %.9g \\\\\n",
					latexEscaper.Replace(s.Name), latexEscaper.Replace(s.Formula), s.Value)
			} else {
				fmt.Fprintf(&b, "  \\text{%s}: \\quad & \\text{%s} \\\\\n",
					latexEscaper.Replace(s.Name), latexEscaper.Replace(s.Text))
			}
		}
		b.WriteString("\\end{align*}\n")
	}

	_, err := io.WriteString(r.w, b.String())
	return err
}

// FormatInstant renders an instant as UTC calendar time, rounded to the
// nearest second so float rounding in the Julian Date cannot flip the
// displayed second.
func FormatInstant(t astro.Instant) string {
	return t.Time().UTC().Round(time.Second).Format("2006-01-02 15:04:05 UTC")
}

// FormatEvent renders an event time or its sentinel state.
func FormatEvent(ev astro.Event) string {
	switch ev.State {
	case astro.EventAt:
		return FormatInstant(ev.Time)
	case astro.EventCircumpolar:
		return "circumpolar (always above threshold)"
	case astro.EventNeverRises:
		return "never rises (always below threshold)"
	default:
		return "unknown"
	}
}

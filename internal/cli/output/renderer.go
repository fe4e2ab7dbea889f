// Package output renders evaluation results for the CLI in text, JSON or
// table form.
package output

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/katalvlaran/domino"
	"github.com/katalvlaran/domino/eulerian"
)

// Mode selects the output format.
type Mode string

// Supported modes.
const (
	ModeText  Mode = "text"
	ModeJSON  Mode = "json"
	ModeTable Mode = "table"
)

type rendererKey struct{}

// Renderer writes results to an output stream.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   Mode
	styles *Styles
}

// NewRenderer creates a renderer for out; diagnostics go to errOut.
func NewRenderer(out, errOut io.Writer, mode Mode, noColor bool) *Renderer {
	switch mode {
	case ModeText, ModeJSON, ModeTable:
	default:
		mode = ModeText
	}

	return &Renderer{out: out, errOut: errOut, mode: mode, styles: NewStyles(out, noColor)}
}

// Mode returns the renderer's output mode.
func (r *Renderer) Mode() Mode { return r.mode }


// WithRenderer returns a context carrying r.
func WithRenderer(ctx context.Context, r *Renderer) context.Context {
	return context.WithValue(ctx, rendererKey{}, r)
}

// FromContext retrieves the renderer, or a plain text renderer on stdout.
func FromContext(ctx context.Context) *Renderer {
	if r, ok := ctx.Value(rendererKey{}).(*Renderer); ok {
		return r
	}

	return NewRenderer(os.Stdout, os.Stderr, ModeText, false)
}

// reportJSON is the wire shape of a report with its message.
type reportJSON struct {
	domino.Report
	Message string `json:"message"`
}

// Report renders one evaluation.
func (r *Renderer) Report(rep domino.Report) error {
	switch r.mode {
	case ModeJSON:
		return r.json(reportJSON{Report: rep, Message: rep.Message()})
	case ModeTable:
		if rep.Outcome == domino.OutcomeChain {
			r.chainTable(rep)
		}
	}

	_, err := fmt.Fprintln(r.out, r.styleFor(rep.Outcome).Render(rep.Message()))

	return err
}

func (r *Renderer) styleFor(o domino.Outcome) lipgloss.Style {
	switch o {
	case domino.OutcomeChain:
		return r.styles.Success
	case domino.OutcomeNoChain:
		return r.styles.Warning
	default:
		return r.styles.Error
	}
}

func (r *Renderer) chainTable(rep domino.Report) {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Tile", "Input", "Flipped"})
	for i, p := range rep.Placements {
		src := rep.Tokens[p.Index]
		t.AppendRow(table.Row{i + 1, p.Tile.String(), fmt.Sprintf("%s (#%d)", src, p.Index+1), yesNo(p.Flipped)})
	}
	t.Render()
}

// Analysis renders the multigraph view of a tile list.
func (r *Renderer) Analysis(rep eulerian.Report, trail []string) error {
	if r.mode == ModeJSON {
		return r.json(struct {
			eulerian.Report
			Trail []string `json:"trail,omitempty"`
		}{rep, trail})
	}

	if _, err := fmt.Fprintln(r.out, r.styles.Header.Render("Pip degrees")); err != nil {
		return err
	}
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Pip", "Degree", "Odd"})
	for v, d := range rep.Degree {
		if d == 0 {
			continue
		}
		t.AppendRow(table.Row{v, d, yesNo(d%2 == 1)})
	}
	t.Render()

	lines := []string{
		"components: " + strconv.Itoa(rep.Components),
		"odd pips:   " + joinInts(rep.Odd),
	}
	if rep.HasTrail {
		lines = append(lines, r.styles.Success.Render("arrangement exists: "+strings.Join(trail, ", ")))
	} else {
		lines = append(lines, r.styles.Warning.Render(domino.MessageNoChain))
	}
	_, err := fmt.Fprintln(r.out, strings.Join(lines, "\n"))

	return err
}

// ExampleRow is one evaluated sample input.
type ExampleRow struct {
	Input  string `json:"input"`
	Note   string `json:"note,omitempty"`
	Result string `json:"result"`
}

// Examples renders sample inputs with their results.
func (r *Renderer) Examples(rows []ExampleRow) error {
	switch r.mode {
	case ModeJSON:
		return r.json(rows)
	case ModeTable:
		t := table.NewWriter()
		t.SetOutputMirror(r.out)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Input", "Result", "Note"})
		for _, row := range rows {
			t.AppendRow(table.Row{row.Input, row.Result, row.Note})
		}
		t.Render()

		return nil
	}

	for _, row := range rows {
		line := fmt.Sprintf("- %s → %s", row.Input, row.Result)
		if row.Note != "" {
			line += "  " + r.styles.Muted.Render("("+row.Note+")")
		}
		if _, err := fmt.Fprintln(r.out, line); err != nil {
			return err
		}
	}

	return nil
}

// Text writes a plain block of text, ignoring the mode.
func (r *Renderer) Text(s string) error {
	_, err := fmt.Fprintln(r.out, s)

	return err
}

// Errorf writes a diagnostic line to the error stream.
func (r *Renderer) Errorf(format string, args ...any) {
	_, _ = fmt.Fprintln(r.errOut, r.styles.Error.Render(fmt.Sprintf(format, args...)))
}

func (r *Renderer) json(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}

	return "no"
}

func joinInts(xs []int) string {
	if len(xs) == 0 {
		return "none"
	}
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}

	return strings.Join(parts, ", ")
}

package output

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles holds the lipgloss styles used for text output.
type Styles struct {
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Header  lipgloss.Style
}

// NewStyles builds styles bound to w. Colour is detected from w; when
// noColor is set, or w is not a terminal, styles render plain text.
func NewStyles(w io.Writer, noColor bool) *Styles {
	r := lipgloss.NewRenderer(w)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Styles{
		Success: r.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		Warning: r.NewStyle().Foreground(lipgloss.Color("3")),
		Error:   r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		Muted:   r.NewStyle().Foreground(lipgloss.Color("8")),
		Header:  r.NewStyle().Bold(true).Underline(true),
	}
}

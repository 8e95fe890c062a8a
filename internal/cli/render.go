package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	gojson "github.com/goccy/go-json"
)

// Status markers printed in front of result lines.
const (
	markTick    = "✓"
	markSuccess = "✅"
	markWarning = "⚠️"
	markError   = "❌"
)

// palette holds the styles for one run. With colour disabled every style
// renders its input unchanged.
type palette struct {
	success lipgloss.Style
	warning lipgloss.Style
	failure lipgloss.Style
	muted   lipgloss.Style
}

func newPalette(noColor bool) palette {
	if noColor {
		plain := lipgloss.NewStyle()
		return palette{success: plain, warning: plain, failure: plain, muted: plain}
	}
	return palette{
		success: lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"}),
		warning: lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#F59E0B"}),
		failure: lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#F87171"}),
		muted:   lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}),
	}
}

// printer writes human-readable progress lines. In JSON mode it stays
// silent so that stdout carries only the JSON document.
type printer struct {
	w      io.Writer
	styles palette
	silent bool
}

func newPrinter(w io.Writer, d *Dependencies) *printer {
	return &printer{w: w, styles: newPalette(d.NoColor), silent: d.JSON}
}

func (p *printer) linef(format string, args ...any) {
	if p.silent {
		return
	}
	_, _ = fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *printer) tick(format string, args ...any) {
	p.linef("  %s %s", p.styles.success.Render(markTick), fmt.Sprintf(format, args...))
}

func (p *printer) success(format string, args ...any) {
	p.linef("%s %s", markSuccess, p.styles.success.Render(fmt.Sprintf(format, args...)))
}

func (p *printer) warning(format string, args ...any) {
	p.linef("%s  %s", markWarning, p.styles.warning.Render(fmt.Sprintf(format, args...)))
}

func (p *printer) failure(err error) {
	p.linef("%s %s", markError, p.styles.failure.Render("Error: "+err.Error()))
}

func (p *printer) note(format string, args ...any) {
	p.linef("%s", p.styles.muted.Render(fmt.Sprintf(format, args...)))
}

// raw writes s verbatim, e.g. a unified diff.
func (p *printer) raw(s string) {
	if p.silent || s == "" {
		return
	}
	_, _ = io.WriteString(p.w, s)
}

// writeJSON encodes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	data, err := gojson.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

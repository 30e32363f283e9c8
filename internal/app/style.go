package app

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fatih/color"
	"github.com/muesli/termenv"
)

var (
	colorAccent = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7D79F6"}
	colorMuted  = lipgloss.AdaptiveColor{Light: "#8A8A8A", Dark: "#6C6C6C"}
	colorKey    = lipgloss.AdaptiveColor{Light: "#0E7C66", Dark: "#3DD6B5"}
)

// palette holds the styles used for command output. Styles are bound to the
// output writer's renderer so piping to a file yields plain text.
type palette struct {
	renderer *lipgloss.Renderer

	heading    lipgloss.Style
	subheading lipgloss.Style
	cell       lipgloss.Style
	border     lipgloss.Style

	ok   *color.Color
	fail *color.Color
	warn *color.Color
}

func newPalette(w io.Writer, noColor bool) *palette {
	r := lipgloss.NewRenderer(w)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}

	p := &palette{
		renderer: r,
		heading: r.NewStyle().
			Bold(true).
			Foreground(colorAccent).
			Border(lipgloss.NormalBorder(), false, false, true, false),
		subheading: r.NewStyle().
			Foreground(colorMuted).
			MarginTop(1),
		cell: r.NewStyle().
			Padding(0, 1),
		border: r.NewStyle().
			Foreground(colorMuted),
		ok:   color.New(color.FgGreen),
		fail: color.New(color.FgRed),
		warn: color.New(color.FgYellow),
	}

	if noColor {
		p.ok.DisableColor()
		p.fail.DisableColor()
		p.warn.DisableColor()
	}
	return p
}

// help returns a help view styled with the palette.
func (p *palette) help() help.Model {
	h := help.New()
	h.Styles.FullKey = p.renderer.NewStyle().Foreground(colorKey)
	h.Styles.FullDesc = p.renderer.NewStyle()
	h.Styles.FullSeparator = p.renderer.NewStyle().Foreground(colorMuted)
	h.Styles.ShortKey = h.Styles.FullKey
	h.Styles.ShortDesc = h.Styles.FullDesc
	h.Styles.ShortSeparator = h.Styles.FullSeparator
	h.Styles.Ellipsis = h.Styles.FullSeparator
	return h
}

// table returns a bordered table with the given headers.
func (p *palette) table(headers ...string) *table.Table {
	cell := p.cell
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(p.border).
		StyleFunc(func(row, col int) lipgloss.Style {
			return cell
		}).
		Headers(headers...)
}

// Package display renders notes and user-facing messages.
package display

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/cheatnote/cheatnote/internal/model"
)

var (
	frameStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	idStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	titleStyle   = lipgloss.NewStyle().Bold(true)
	tagsStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	dimStyle     = lipgloss.NewStyle().Faint(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
)

// Renderer writes formatted notes and status messages. Color is decided once
// at construction.
type Renderer struct {
	out   io.Writer
	color bool
}

// New builds a renderer for out. mode is "always", "never", or "auto"; auto
// enables color only when out is a terminal and NO_COLOR is unset.
func New(out io.Writer, mode string) *Renderer {
	r := &Renderer{out: out}
	switch mode {
	case "always":
		r.color = true
	case "never":
		r.color = false
	default:
		if os.Getenv("NO_COLOR") != "" {
			break
		}
		if f, ok := out.(*os.File); ok {
			r.color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
	}
	return r
}

func (r *Renderer) render(st lipgloss.Style, s string) string {
	if !r.color {
		return s
	}
	return st.Render(s)
}

// FullNote prints a note with its content lines and timestamps.
func (r *Renderer) FullNote(n *model.Note, showID bool) {
	r.header(n, showID)
	fmt.Fprintln(r.out, r.render(frameStyle, "├─ Content:"))
	for _, line := range strings.Split(n.Content, "\n") {
		fmt.Fprintf(r.out, "%s  %s\n", r.render(frameStyle, "│"), line)
	}
	fmt.Fprintln(r.out, r.render(frameStyle, "├─ Timeline:"))
	fmt.Fprintf(r.out, "%s  %s %s\n", r.render(frameStyle, "│"),
		r.render(dimStyle, "Created:"), formatTime(n.CreatedAt))
	fmt.Fprintf(r.out, "%s  %s %s\n", r.render(frameStyle, "│"),
		r.render(dimStyle, "Modified:"), formatTime(n.ModifiedAt))
	fmt.Fprintln(r.out, r.render(frameStyle, "╰─"))
	fmt.Fprintln(r.out)
}

// CompactNote prints the title line and the first line of content.
func (r *Renderer) CompactNote(n *model.Note, showID bool) {
	var b strings.Builder
	if showID {
		b.WriteString(r.render(idStyle, fmt.Sprintf("[%d]", n.ID)))
		b.WriteByte(' ')
	}
	b.WriteString(r.render(titleStyle, n.Title))
	if n.Tags != "" {
		b.WriteByte(' ')
		b.WriteString(r.render(tagsStyle, "("+n.Tags+")"))
	}
	fmt.Fprintln(r.out, b.String())

	if n.Content != "" {
		first, _, _ := strings.Cut(n.Content, "\n")
		fmt.Fprintf(r.out, "  %s\n", r.render(dimStyle, first))
	}
	fmt.Fprintln(r.out)
}

func (r *Renderer) header(n *model.Note, showID bool) {
	var b strings.Builder
	b.WriteString(r.render(frameStyle, "╭─ "))
	if showID {
		b.WriteString(r.render(idStyle, fmt.Sprintf("[%d]", n.ID)))
		b.WriteByte(' ')
	}
	b.WriteString(r.render(titleStyle, n.Title))
	if n.Tags != "" {
		b.WriteByte(' ')
		b.WriteString(r.render(tagsStyle, "("+n.Tags+")"))
	}
	fmt.Fprintln(r.out, b.String())
}

// Success prints a checkmarked status line.
func (r *Renderer) Success(msg string) {
	fmt.Fprintf(r.out, "%s %s\n", r.render(successStyle, "✓"), msg)
}

// Info prints an informational status line.
func (r *Renderer) Info(msg string) {
	fmt.Fprintf(r.out, "%s %s\n", r.render(infoStyle, "Info:"), msg)
}

func formatTime(unix int64) string {
	if unix <= 0 {
		return "Invalid date"
	}
	return time.Unix(unix, 0).Format("2006-01-02 15:04")
}

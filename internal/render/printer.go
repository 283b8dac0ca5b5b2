package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

type Printer struct {
	out   io.Writer
	theme Theme
}

func NewPrinter(out io.Writer) *Printer {
	return &Printer{
		out:   out,
		theme: NewTheme(out),
	}
}

// Table prints rows under headers. Headers are always printed, even with
// no rows.
func (p *Printer) Table(headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(p.theme.Border).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return p.theme.Header
			}
			return p.theme.Cell
		}).
		Headers(headers...).
		Rows(rows...)

	fmt.Fprintf(p.out, "\n%s\n\n", t.String())
}

func (p *Printer) Banner(title string) {
	rule := strings.Repeat("=", 33)
	padded := lipgloss.PlaceHorizontal(len(rule), lipgloss.Center, title)
	fmt.Fprintf(p.out, "\n%s\n%s\n%s\n\n",
		p.theme.Banner.Render(rule),
		p.theme.Banner.Render(padded),
		p.theme.Banner.Render(rule),
	)
}

func (p *Printer) Notice(format string, args ...interface{}) {
	fmt.Fprintf(p.out, "\n%s\n\n", fmt.Sprintf(format, args...))
}

func (p *Printer) Success(format string, args ...interface{}) {
	fmt.Fprintf(p.out, "\n%s\n\n", p.theme.Success.Render(fmt.Sprintf(format, args...)))
}

func (p *Printer) Warn(format string, args ...interface{}) {
	fmt.Fprintf(p.out, "\n%s\n\n", p.theme.Warning.Render(fmt.Sprintf(format, args...)))
}

func (p *Printer) Error(format string, args ...interface{}) {
	fmt.Fprintf(p.out, "\n%s\n\n", p.theme.Error.Render(fmt.Sprintf(format, args...)))
}

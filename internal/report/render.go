// Package report writes analysis reports to the console.
package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"wordtree/internal/models"
)

// Format selects how report entries are laid out.
type Format string

const (
	FormatText  Format = "text"
	FormatTable Format = "table"
)

// ParseFormat accepts "text" or "table"; empty means text.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatText:
		return FormatText, nil
	case FormatTable:
		return FormatTable, nil
	default:
		return "", fmt.Errorf("unknown output format %q (expected %q or %q)", s, FormatText, FormatTable)
	}
}

var noTermsColor = color.New(color.FgYellow)

// Renderer prints reports in one locale and format.
type Renderer struct {
	out     io.Writer
	printer *message.Printer
	format  Format
}

func NewRenderer(out io.Writer, locale language.Tag, format Format) *Renderer {
	return &Renderer{
		out:     out,
		printer: newPrinter(locale),
		format:  format,
	}
}

// Render prints one entry per category in alphabetical order, or a single
// explanation line when the report is empty.
func (r *Renderer) Render(rep models.Report, depth int) error {
	if len(rep) == 0 {
		_, err := noTermsColor.Fprintln(r.out, r.printer.Sprintf(keyNoTerms, depth))
		return err
	}

	if r.format == FormatTable {
		r.renderTable(rep)
		return nil
	}

	for _, category := range rep.Categories() {
		if _, err := r.printer.Fprintf(r.out, keyCategoryLine, category, rep[category]); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(r.out); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderTable(rep models.Report) {
	table := tablewriter.NewWriter(r.out)
	table.SetHeader([]string{
		r.printer.Sprintf(keyHeaderCategory),
		r.printer.Sprintf(keyHeaderMatches),
	})
	table.SetBorder(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, category := range rep.Categories() {
		table.Append([]string{category, strconv.Itoa(rep[category])})
	}
	table.Render()
}

// Timings prints how long the taxonomy load and the phrase analysis took, in milliseconds.
func (r *Renderer) Timings(load, analyze time.Duration) error {
	if _, err := fmt.Fprintln(r.out, r.printer.Sprintf(keyLoadTime, load.Milliseconds())); err != nil {
		return err
	}
	_, err := fmt.Fprintln(r.out, r.printer.Sprintf(keyAnalyzeTime, analyze.Milliseconds()))
	return err
}

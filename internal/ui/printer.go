package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/plantdeck/internal/card"
	"github.com/muurk/plantdeck/internal/catalog"
)

// Printer writes styled command output
type Printer struct {
	out   io.Writer
	width int
}

// NewPrinter creates a Printer for w (os.Stdout when nil) sized to the terminal
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{
		out:   w,
		width: GetTerminalWidth(),
	}
}

// WithWidth returns a copy of the printer using a fixed width
func (p *Printer) WithWidth(width int) *Printer {
	return &Printer{out: p.out, width: width}
}

// Width returns the width used for layout
func (p *Printer) Width() int {
	return p.width
}

// Print writes content to the output
func (p *Printer) Print(content string) {
	_, _ = fmt.Fprint(p.out, content)
}

// Println writes content with a newline
func (p *Printer) Println(content string) {
	_, _ = fmt.Fprintln(p.out, content)
}

// Newline prints an empty line
func (p *Printer) Newline() {
	_, _ = fmt.Fprintln(p.out)
}

// PrintHeader prints a section title with an item count
func (p *Printer) PrintHeader(title string, count int) {
	p.Println(RenderHeader(title, count))
}

// PrintCategories prints one category per line in API order
func (p *Printer) PrintCategories(categories []catalog.Category) {
	p.PrintHeader("Categories", len(categories))
	for _, c := range categories {
		p.Println(RenderListItem(c.Name))
	}
}

// PrintPlants prints the plants of category as a card grid
func (p *Printer) PrintPlants(category string, items []catalog.Item) {
	p.PrintHeader(category, len(items))
	if len(items) == 0 {
		p.Println(HintStyle.Render("  No plants in this category."))
		return
	}
	p.Println(card.Grid(items, p.width, card.Render))
}

// PrintError prints an error box with optional hints, set off by a blank line
func (p *Printer) PrintError(title string, err error, hints []string) {
	p.Newline()
	p.Println(RenderErrorBox(title, err, hints, p.width))
}

// RenderHeader renders "TITLE (n)"
func RenderHeader(title string, count int) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		HeaderTitleStyle.Render(strings.ToUpper(title)),
		" ",
		HeaderCountStyle.Render(fmt.Sprintf("(%d)", count)),
	)
}

// RenderListItem renders a bulleted list entry
func RenderListItem(text string) string {
	return ListItemStyle.Render(ListMarkerStyle.Render(ListMarker) + " " + text)
}

// RenderSuggestion renders a "did you mean" line, or "" with no candidate
func RenderSuggestion(candidate string) string {
	if candidate == "" {
		return ""
	}
	return "Did you mean " + SuggestionStyle.Render(candidate) + "?"
}

// RenderErrorBox renders an error result box
func RenderErrorBox(title string, err error, hints []string, width int) string {
	lines := []string{ErrorTitleStyle.Render(FailureMarker + "  " + title)}

	if err != nil {
		lines = append(lines, "", ErrorMessageStyle.Render("Error: "+err.Error()))
	}

	if len(hints) > 0 {
		lines = append(lines, "")
		for _, hint := range hints {
			lines = append(lines, HintStyle.Render("• "+hint))
		}
	}

	return ErrorBoxStyle(width).Render(strings.Join(lines, "\n"))
}

package card

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/plantdeck/internal/catalog"
)

// Gap is the horizontal space between cards in a row
const Gap = 1

// Renderer draws one item as a card of the given width
type Renderer func(item catalog.Item, width int) string

// Columns returns how many cards go side by side in width
func Columns(width int) int {
	switch {
	case width < 80:
		return 1
	case width < 120:
		return 2
	default:
		return 3
	}
}

// CardWidth returns the width of one card when width is split into cols
func CardWidth(width, cols int) int {
	if cols < 1 {
		cols = 1
	}
	w := (width - Gap*(cols-1)) / cols
	return max(w, MinWidth)
}

// Grid lays items out left to right, top to bottom, in input order.
// A nil render uses Render.
func Grid(items []catalog.Item, width int, render Renderer) string {
	if len(items) == 0 {
		return ""
	}
	if render == nil {
		render = Render
	}

	cols := Columns(width)
	cw := CardWidth(width, cols)
	spacer := strings.Repeat(" ", Gap)

	var rows []string
	for start := 0; start < len(items); start += cols {
		end := min(start+cols, len(items))
		cells := make([]string, 0, 2*(end-start))
		for i := start; i < end; i++ {
			if i > start {
				cells = append(cells, spacer)
			}
			cells = append(cells, render(items[i], cw))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

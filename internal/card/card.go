package card

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mitchellh/mapstructure"

	"github.com/muurk/plantdeck/internal/catalog"
)

// MinWidth is the narrowest card Render will draw
const MinWidth = 24

// Plant is the subset of a catalog record a card displays.
// Every text field decodes as a list so single values and arrays both work.
type Plant struct {
	ID          string   `mapstructure:"id"`
	CommonNames []string `mapstructure:"Common name"`
	LatinName   []string `mapstructure:"Latin name"`
	Family      []string `mapstructure:"Family"`
	Origin      []string `mapstructure:"Origin"`
	Climate     []string `mapstructure:"Climat"`
	Light       []string `mapstructure:"Light ideal"`
	Watering    []string `mapstructure:"Watering"`
	Use         []string `mapstructure:"Use"`
}

// Decode maps an item's fields onto a Plant. Fields that do not fit are
// reported in the error; everything that did decode is still returned.
func Decode(item catalog.Item) (Plant, error) {
	var p Plant
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &p,
	})
	if err != nil {
		return Plant{ID: item.ID}, err
	}

	err = decoder.Decode(item.Fields)
	p.ID = item.ID
	if err != nil {
		return p, fmt.Errorf("decode plant %s: %w", item.ID, err)
	}
	return p, nil
}

// Title returns the best display name for the plant
func (p Plant) Title() string {
	if name := first(p.CommonNames); name != "" {
		return name
	}
	if name := first(p.LatinName); name != "" {
		return name
	}
	return "Plant " + p.ID
}

// Details returns the labelled rows shown under the title, skipping empty ones
func (p Plant) Details() [][2]string {
	rows := [][2]string{
		{"Family", join(p.Family)},
		{"Origin", join(p.Origin)},
		{"Climate", join(p.Climate)},
		{"Light", join(p.Light)},
		{"Water", join(p.Watering)},
		{"Use", join(p.Use)},
	}
	out := rows[:0]
	for _, r := range rows {
		if r[1] != "" {
			out = append(out, r)
		}
	}
	return out
}

var (
	borderColor = lipgloss.Color("#43BF6D")
	titleColor  = lipgloss.Color("#FFFFFF")
	mutedColor  = lipgloss.Color("#626262")

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Foreground(titleColor).
			Bold(true)

	latinStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	idStyle = lipgloss.NewStyle().
		Foreground(mutedColor).
		Faint(true)
)

// Render draws one plant card exactly width cells wide (never below MinWidth)
func Render(item catalog.Item, width int) string {
	p, _ := Decode(item)
	return RenderPlant(p, width)
}

// RenderPlant draws an already decoded plant
func RenderPlant(p Plant, width int) string {
	if width < MinWidth {
		width = MinWidth
	}
	// border (2) + padding (2)
	inner := width - 4

	lines := []string{titleStyle.Width(inner).Render(p.Title())}
	if latin := first(p.LatinName); latin != "" && latin != p.Title() {
		lines = append(lines, latinStyle.Width(inner).Render(latin))
	}

	labelWidth := 0
	details := p.Details()
	for _, d := range details {
		labelWidth = max(labelWidth, lipgloss.Width(d[0]))
	}
	if len(details) > 0 {
		lines = append(lines, "")
	}
	for _, d := range details {
		label := labelStyle.Width(labelWidth + 1).Render(d[0])
		value := lipgloss.NewStyle().Width(max(inner-labelWidth-1, 1)).Render(d[1])
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, label, value))
	}

	lines = append(lines, "", idStyle.Width(inner).Align(lipgloss.Right).Render("#"+p.ID))

	return boxStyle.Width(width - 2).Render(strings.Join(lines, "\n"))
}

func first(values []string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func join(values []string) string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return strings.Join(out, ", ")
}

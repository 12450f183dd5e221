package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/plantdeck/internal/browser"
)

// View renders the browse screen
func (m AppModel) View() string {
	width, height := m.size()
	contentWidth := width - containerPadding

	content := lipgloss.JoinVertical(lipgloss.Left,
		m.renderCategorySection(contentWidth),
		"",
		m.renderItemSection(),
	)

	return RenderApplicationContainer(content, m.Help.View(m.Keys), width, height)
}

func (m AppModel) renderCategorySection(width int) string {
	title := SectionTitleStyle.Render("Categories")

	switch m.Browser.CategoryPanel() {
	case browser.CategoryPending:
		return lipgloss.JoinVertical(lipgloss.Left, title,
			m.Spinner.View()+" Loading categories...")

	case browser.CategoryFailed:
		return lipgloss.JoinVertical(lipgloss.Left, title,
			RenderError(m.Browser.CategoryError().Error()))
	}

	categories := m.Browser.Categories()
	if len(categories) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, title, SubtleStyle.Render("No categories available."))
	}

	buttons := make([]string, len(categories))
	for i, c := range categories {
		buttons[i] = RenderButton(c.Name, m.Browser.IsSelected(c.Name), i == m.Cursor)
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, wrapButtons(buttons, width))
}

// wrapButtons flows buttons left to right, starting a new row when one
// would overflow width
func wrapButtons(buttons []string, width int) string {
	var rows []string
	var row []string
	rowWidth := 0

	for _, b := range buttons {
		w := lipgloss.Width(b)
		if len(row) > 0 && rowWidth+1+w > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, rowWidth = nil, 0
		}
		if len(row) > 0 {
			row = append(row, " ")
			rowWidth++
		}
		row = append(row, b)
		rowWidth += w
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return strings.Join(rows, "\n")
}

func (m AppModel) renderItemSection() string {
	selected := m.Browser.Selected()

	switch m.Browser.ItemPanel() {
	case browser.ItemPending:
		return lipgloss.JoinVertical(lipgloss.Left,
			SectionTitleStyle.Render(selected),
			m.Spinner.View()+" Loading plants...")

	case browser.ItemFailed:
		return lipgloss.JoinVertical(lipgloss.Left,
			SectionTitleStyle.Render(selected),
			RenderError(m.Browser.ItemError().Error()))

	case browser.ItemGrid:
		items := m.Browser.Items()
		title := SectionTitleStyle.Render(selected) + " " +
			SubtleStyle.Render(fmt.Sprintf("%d plants  %3.0f%%", len(items), m.Viewport.ScrollPercent()*100))
		return lipgloss.JoinVertical(lipgloss.Left, title, m.Viewport.View())
	}

	// nothing to choose from
	if m.Browser.CategoryPanel() == browser.CategoryFailed {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		SectionTitleStyle.Render(selected),
		RenderPrompt(browser.MessageChooseCategory))
}

package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/muurk/plantdeck/internal/browser"
	"github.com/muurk/plantdeck/internal/card"
	"github.com/muurk/plantdeck/internal/catalog"
	"github.com/muurk/plantdeck/internal/logging"
)

// Catalog is the data source the browser reads from. *catalog.Client satisfies it.
type Catalog interface {
	Categories(ctx context.Context) ([]catalog.Category, error)
	PlantsByCategory(ctx context.Context, name string) ([]catalog.Item, error)
}

type categoriesLoadedMsg struct {
	categories []catalog.Category
	err        error
}

type itemsLoadedMsg struct {
	ticket browser.Ticket
	items  []catalog.Item
	err    error
}

// AppModel is the browse screen: category buttons on top, plant cards below
type AppModel struct {
	ctx     context.Context
	catalog Catalog
	render  card.Renderer

	Browser browser.Browser
	// Cursor is the focused category button
	Cursor int

	fetchCategories bool
	cancelItems     context.CancelFunc

	Spinner  spinner.Model
	Viewport viewport.Model
	Help     help.Model
	Keys     browseKeyMap

	Width  int
	Height int
}

// Option customizes an AppModel
type Option func(*AppModel)

// WithRenderer replaces the card renderer
func WithRenderer(r card.Renderer) Option {
	return func(m *AppModel) {
		if r != nil {
			m.render = r
		}
	}
}

// NewAppModel creates the browse model. ctx bounds every read the model issues.
func NewAppModel(ctx context.Context, source Catalog, opts ...Option) AppModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	m := AppModel{
		ctx:      ctx,
		catalog:  source,
		render:   card.Render,
		Browser:  browser.New(),
		Spinner:  s,
		Viewport: viewport.New(DefaultWidth-containerPadding, 1),
		Help:     help.New(),
		Keys:     newBrowseKeyMap(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.fetchCategories = m.Browser.BeginCategories()
	return m
}

// Init starts the spinner and the one category read
func (m AppModel) Init() tea.Cmd {
	if !m.fetchCategories {
		return m.Spinner.Tick
	}
	return tea.Batch(m.Spinner.Tick, m.loadCategories())
}

// Update handles all messages for the browse screen
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		// footer padding takes two more columns
		m.Help.Width = msg.Width - containerPadding - 2
		m.layout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.Viewport, cmd = m.Viewport.Update(msg)
		return m, cmd

	case categoriesLoadedMsg:
		m.Browser.CompleteCategories(msg.categories, msg.err)
		if msg.err != nil {
			logging.Warn("Category load failed", zap.NamedError("cause", cause(msg.err)))
		} else {
			logging.Info("Categories loaded", zap.Int("count", len(msg.categories)))
		}
		m.Cursor = 0
		m.layout()
		return m, nil

	case itemsLoadedMsg:
		return m.handleItems(msg), nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	categories := m.Browser.Categories()

	switch {
	case key.Matches(msg, m.Keys.Quit):
		if m.cancelItems != nil {
			m.cancelItems()
			m.cancelItems = nil
		}
		return m, tea.Quit

	case key.Matches(msg, m.Keys.Help):
		m.Help.ShowAll = !m.Help.ShowAll
		m.layout()
		return m, nil

	case key.Matches(msg, m.Keys.Left):
		if len(categories) > 0 {
			m.Cursor = (m.Cursor - 1 + len(categories)) % len(categories)
		}
		return m, nil

	case key.Matches(msg, m.Keys.Right):
		if len(categories) > 0 {
			m.Cursor = (m.Cursor + 1) % len(categories)
		}
		return m, nil

	case key.Matches(msg, m.Keys.Select):
		if m.Cursor < 0 || m.Cursor >= len(categories) {
			return m, nil
		}
		return m.selectCategory(categories[m.Cursor].Name)

	case key.Matches(msg, m.Keys.Jump):
		i := int(msg.String()[0] - '1')
		if i >= len(categories) {
			return m, nil
		}
		m.Cursor = i
		return m.selectCategory(categories[i].Name)

	case key.Matches(msg, m.Keys.Top):
		m.Viewport.GotoTop()
		return m, nil

	case key.Matches(msg, m.Keys.Bottom):
		m.Viewport.GotoBottom()
		return m, nil

	case key.Matches(msg, m.Keys.Up, m.Keys.Down, m.Keys.PageUp, m.Keys.PageDown):
		var cmd tea.Cmd
		m.Viewport, cmd = m.Viewport.Update(msg)
		return m, cmd
	}

	return m, nil
}

// selectCategory starts a browsing action and supersedes any read in flight
func (m AppModel) selectCategory(name string) (tea.Model, tea.Cmd) {
	if m.cancelItems != nil {
		m.cancelItems()
	}

	ticket := m.Browser.SelectCategory(name)
	ctx, cancel := context.WithCancel(m.ctx)
	m.cancelItems = cancel

	logging.Debug("Category selected",
		zap.String("category", name),
		zap.Uint64("generation", ticket.Generation),
	)

	m.layout()
	return m, m.loadItems(ctx, ticket)
}

func (m AppModel) handleItems(msg itemsLoadedMsg) AppModel {
	if !m.Browser.CompleteItems(msg.ticket, msg.items, msg.err) {
		logging.Debug("Discarded superseded response",
			zap.String("category", msg.ticket.Category),
			zap.Uint64("generation", msg.ticket.Generation),
		)
		return m
	}

	if m.cancelItems != nil {
		m.cancelItems()
		m.cancelItems = nil
	}

	if msg.err != nil {
		logging.Warn("Plant load failed",
			zap.String("category", msg.ticket.Category),
			zap.NamedError("cause", cause(msg.err)),
		)
	} else {
		logging.Info("Plants loaded",
			zap.String("category", msg.ticket.Category),
			zap.Int("count", len(msg.items)),
		)
	}

	m.layout()
	m.Viewport.GotoTop()
	return m
}

func (m AppModel) loadCategories() tea.Cmd {
	ctx, source := m.ctx, m.catalog
	return func() tea.Msg {
		categories, err := browser.Fetch(ctx, browser.CategoryLoadError, source.Categories)
		return categoriesLoadedMsg{categories: categories, err: err}
	}
}

func (m AppModel) loadItems(ctx context.Context, ticket browser.Ticket) tea.Cmd {
	source := m.catalog
	return func() tea.Msg {
		items, err := browser.Fetch(ctx, browser.ItemLoadError, func(ctx context.Context) ([]catalog.Item, error) {
			return source.PlantsByCategory(ctx, ticket.Category)
		})
		return itemsLoadedMsg{ticket: ticket, items: items, err: err}
	}
}

// layout resizes the viewport and re-renders the grid into it
func (m *AppModel) layout() {
	width, height := m.size()
	contentWidth := width - containerPadding

	used := chromeHeight(m.Help.View(m.Keys)) +
		lipgloss.Height(m.renderCategorySection(contentWidth)) +
		1 + // gap
		1 // item section title

	m.Viewport.Width = contentWidth
	m.Viewport.Height = max(height-used, 1)

	if m.Browser.ItemPanel() == browser.ItemGrid {
		m.Viewport.SetContent(card.Grid(m.Browser.Items(), contentWidth, m.render))
	} else {
		m.Viewport.SetContent("")
	}
}

func (m AppModel) size() (int, int) {
	width, height := m.Width, m.Height
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return width, height
}

// cause returns what a LoadError wraps, for logs
func cause(err error) error {
	var loadErr *browser.LoadError
	if errors.As(err, &loadErr) && loadErr.Err != nil {
		return loadErr.Err
	}
	return err
}

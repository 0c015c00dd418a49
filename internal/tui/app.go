// Package tui renders the airport services catalog and order summary in the terminal.
package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nikolayk812/airport-services/internal/catalog"
	"github.com/nikolayk812/airport-services/internal/domain"
	"github.com/nikolayk812/airport-services/internal/port"
	"github.com/nikolayk812/airport-services/internal/tui/keymap"
	"github.com/nikolayk812/airport-services/internal/tui/styles"
)

// catalogColumns is the number of cards per catalog row.
const catalogColumns = 2

// Focus identifies which pane receives navigation keys.
type Focus int

const (
	// FocusCatalog is the service card grid.
	FocusCatalog Focus = iota
	// FocusSummary is the order summary list.
	FocusSummary
)

// Deps holds the collaborators the App needs.
type Deps struct {
	// Cart is the cart controller backing the view. Required.
	Cart port.CartController

	// Catalog lists the services shown as cards. Required.
	Catalog *catalog.Catalog

	// Notifier receives acknowledgments from Cart. When nil, placed orders are
	// reported in the status line instead of a blocking modal.
	Notifier *Notifier
}

// Validate checks that required dependencies are set.
func (d Deps) Validate() error {
	if d.Cart == nil {
		return errors.New("cart controller is required")
	}
	if d.Catalog == nil {
		return errors.New("catalog is required")
	}
	return nil
}

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	cart     port.CartController
	catalog  *catalog.Catalog
	notifier *Notifier

	styles *styles.Styles
	keys   *keymap.KeyMap
	help   help.Model

	// filter is the catalog search input, active while filtering is true.
	filter    textinput.Model
	filtering bool

	// visible is the filtered catalog in display order.
	visible []domain.Service

	focus         Focus
	cursor        int
	summaryCursor int

	// ack is the order being acknowledged; while set, input is blocked until dismissed.
	ack *domain.Order

	status string

	width  int
	height int
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application.
func NewApp(deps Deps) (*App, error) {
	if err := deps.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	filter := textinput.New()
	filter.Prompt = "/ "
	filter.Placeholder = "filter services"
	filter.CharLimit = 64

	return &App{
		cart:     deps.Cart,
		catalog:  deps.Catalog,
		notifier: deps.Notifier,
		styles:   styles.DefaultStyles(),
		keys:     keymap.DefaultKeyMap(),
		help:     help.New(),
		filter:   filter,
		visible:  deps.Catalog.All(),
		focus:    FocusCatalog,
	}, nil
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.SetWindowTitle("Airport Services")
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		if a.ack != nil {
			return a, a.handleAckKey(msg)
		}
		if a.filtering {
			return a, a.handleFilterKey(msg)
		}
		return a, a.handleKey(msg)
	}

	return a, nil
}

func (a *App) handleAckKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, a.keys.Dismiss) {
		a.ack = nil
	}
	return nil
}

func (a *App) handleFilterKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		a.stopFiltering()
		a.filter.SetValue("")
		a.applyFilter()
		return nil
	case tea.KeyEnter:
		a.stopFiltering()
		return nil
	}

	var cmd tea.Cmd
	a.filter, cmd = a.filter.Update(msg)
	a.applyFilter()
	return cmd
}

//nolint:gocyclo // central key dispatch
func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return tea.Quit

	case key.Matches(msg, a.keys.Help):
		a.help.ShowAll = !a.help.ShowAll

	case key.Matches(msg, a.keys.Filter):
		a.filtering = true
		a.focus = FocusCatalog
		return a.filter.Focus()

	case key.Matches(msg, a.keys.Back):
		if a.filter.Value() != "" {
			a.filter.SetValue("")
			a.applyFilter()
		} else {
			a.focus = FocusCatalog
		}

	case key.Matches(msg, a.keys.SwitchFocus):
		a.toggleFocus()

	case key.Matches(msg, a.keys.PlaceOrder):
		a.placeOrder()

	case a.focus == FocusCatalog:
		a.handleCatalogKey(msg)

	case a.focus == FocusSummary:
		a.handleSummaryKey(msg)
	}

	return nil
}

func (a *App) handleCatalogKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, a.keys.Left):
		a.moveCursor(-1)
	case key.Matches(msg, a.keys.Right):
		a.moveCursor(1)
	case key.Matches(msg, a.keys.Up):
		a.moveCursor(-catalogColumns)
	case key.Matches(msg, a.keys.Down):
		a.moveCursor(catalogColumns)
	case key.Matches(msg, a.keys.Add):
		if service, ok := a.SelectedService(); ok {
			a.cart.Add(service)
			a.status = fmt.Sprintf("Added %s", service.Name)
		}
	}
}

func (a *App) handleSummaryKey(msg tea.KeyMsg) {
	items := a.cart.Items()

	switch {
	case key.Matches(msg, a.keys.Up):
		if a.summaryCursor > 0 {
			a.summaryCursor--
		}
	case key.Matches(msg, a.keys.Down):
		if a.summaryCursor < len(items)-1 {
			a.summaryCursor++
		}
	case key.Matches(msg, a.keys.Remove):
		if a.summaryCursor < len(items) {
			item := items[a.summaryCursor]
			a.cart.Remove(item.Service.ID)
			a.status = fmt.Sprintf("Removed %s", item.Service.Name)
			a.clampSummaryCursor()
		}
	}
}

func (a *App) placeOrder() {
	order := a.cart.PlaceOrder()
	a.summaryCursor = 0
	if a.focus == FocusSummary {
		a.focus = FocusCatalog
	}

	if a.notifier != nil {
		if ack, ok := a.notifier.Take(); ok {
			a.ack = &ack
			a.status = ""
			return
		}
	}

	a.status = fmt.Sprintf("Order placed successfully! (%s)", order.Total)
}

func (a *App) toggleFocus() {
	if a.focus == FocusCatalog && len(a.cart.Items()) > 0 {
		a.focus = FocusSummary
		a.clampSummaryCursor()
		return
	}
	a.focus = FocusCatalog
}

func (a *App) moveCursor(delta int) {
	next := a.cursor + delta
	if next < 0 || next >= len(a.visible) {
		return
	}
	a.cursor = next
}

func (a *App) clampSummaryCursor() {
	n := len(a.cart.Items())
	if a.summaryCursor >= n {
		a.summaryCursor = max(n-1, 0)
	}
	if n == 0 {
		a.focus = FocusCatalog
	}
}

func (a *App) stopFiltering() {
	a.filtering = false
	a.filter.Blur()
}

func (a *App) applyFilter() {
	a.visible = a.catalog.Filter(a.filter.Value())
	if a.cursor >= len(a.visible) {
		a.cursor = max(len(a.visible)-1, 0)
	}
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.help.Width = width
}

// Focus returns the pane receiving navigation keys.
func (a *App) Focus() Focus {
	return a.focus
}

// Cursor returns the index of the highlighted card among visible services.
func (a *App) Cursor() int {
	return a.cursor
}

// SummaryCursor returns the index of the highlighted summary line.
func (a *App) SummaryCursor() int {
	return a.summaryCursor
}

// Visible returns the services currently shown in the catalog pane.
func (a *App) Visible() []domain.Service {
	return a.visible
}

// Filtering reports whether the filter input has focus.
func (a *App) Filtering() bool {
	return a.filtering
}

// Acknowledgment returns the order shown in the acknowledgment modal, if any.
func (a *App) Acknowledgment() (domain.Order, bool) {
	if a.ack == nil {
		return domain.Order{}, false
	}
	return *a.ack, true
}

// Status returns the last status line message.
func (a *App) Status() string {
	return a.status
}

// SelectedService returns the highlighted catalog service.
func (a *App) SelectedService() (domain.Service, bool) {
	if a.cursor < 0 || a.cursor >= len(a.visible) {
		return domain.Service{}, false
	}
	return a.visible[a.cursor], true
}

package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/loomhq/shuttle/internal/collection"
	"github.com/loomhq/shuttle/internal/config"
	"github.com/loomhq/shuttle/internal/loom"
	"github.com/loomhq/shuttle/internal/prefs"
)

// ViewOrder is the tab order of the collection views.
var ViewOrder = []loom.Resource{
	loom.ResourcePrompts,
	loom.ResourceDatasets,
	loom.ResourceEvaluators,
	loom.ResourceAPIKeys,
}

// Options configures the UI.
type Options struct {
	Context     context.Context
	Client      loom.API
	Controllers map[loom.Resource]*collection.Controller
	// Changes receives a resource tag whenever its controller's state
	// changed; the app layer wires controller OnChange callbacks to it.
	Changes   <-chan loom.Resource
	Config    config.Config
	Prefs     prefs.Prefs
	PrefsPath string
}

// resourceView is the per-tab state: one controller, one scroll sentinel,
// one viewport, and the selection/filter the user left behind.
type resourceView struct {
	res      loom.Resource
	ctrl     *collection.Controller
	sentinel *collection.Sentinel
	viewport viewport.Model

	selectedID  string
	selectedRow int
	query       string
	sortIdx     int
	mounted     bool
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx       context.Context
	client    loom.API
	changes   <-chan loom.Resource
	prefsPath string
	userPrefs prefs.Prefs

	keys  keyMap
	theme Theme

	order  []loom.Resource
	active int
	views  map[loom.Resource]*resourceView

	width  int
	height int
	ready  bool

	spin spinner.Model

	filterActive bool
	filterInput  textinput.Model

	modal    *modalState
	showHelp bool
	notice   string
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	theme := ThemeByName(opts.Prefs.Theme)

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	input := textinput.New()
	input.Prompt = "/ "
	input.Placeholder = "filter"
	input.CharLimit = 80

	views := make(map[loom.Resource]*resourceView, len(ViewOrder))
	for _, res := range ViewOrder {
		ctrl := opts.Controllers[res]
		views[res] = &resourceView{
			res:      res,
			ctrl:     ctrl,
			sentinel: collection.NewSentinel(ctrl, opts.Config.ScrollThreshold),
			viewport: viewport.New(0, 0),
		}
	}

	m := Model{
		ctx:         ctx,
		client:      opts.Client,
		changes:     opts.Changes,
		prefsPath:   opts.PrefsPath,
		userPrefs:   opts.Prefs,
		keys:        DefaultKeyMap(),
		theme:       theme,
		order:       ViewOrder,
		views:       views,
		spin:        sp,
		filterInput: input,
	}

	for i, res := range m.order {
		if string(res) == opts.Prefs.StartView {
			m.active = i
			break
		}
	}
	return m
}

// Init mounts the starting view and begins listening for controller
// changes.
func (m Model) Init() tea.Cmd {
	m.mountActive()
	return tea.Batch(m.waitForChange(), m.spin.Tick)
}

// mountActive issues the initial reset fetch for the active view if it has
// never been loaded.
func (m Model) mountActive() {
	v := m.activeView()
	if v == nil || v.mounted {
		return
	}
	v.mounted = true
	v.ctrl.SetParams(m.paramsFor(v))
}

func (m Model) activeView() *resourceView {
	return m.views[m.order[m.active]]
}

// waitForChange blocks on the shared change channel and surfaces the next
// controller transition as a message.
func (m Model) waitForChange() tea.Cmd {
	ch := m.changes
	return func() tea.Msg {
		res, ok := <-ch
		if !ok {
			return nil
		}
		return collectionChangedMsg{res: res}
	}
}

type collectionChangedMsg struct {
	res loom.Resource
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.layout()
		m.refreshContent()
		return m, nil

	case collectionChangedMsg:
		if msg.res == m.order[m.active] {
			m.refreshContent()
			m.observeScroll()
		}
		return m, m.waitForChange()

	case mutationResultMsg:
		cmd := m.applyMutationResult(msg)
		m.refreshContent()
		return m, cmd

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Quit always works, even with a modal up.
	if key.Matches(msg, m.keys.Quit) && !m.filterActive && m.modal == nil {
		return m, tea.Quit
	}
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.modal != nil {
		return m.handleModalKey(msg)
	}
	if m.filterActive {
		return m.handleFilterKey(msg)
	}
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	v := m.activeView()
	m.notice = ""

	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = NextTheme(m.theme.Name)
		m.userPrefs.Theme = m.theme.Name
		_ = prefs.Save(m.prefsPath, m.userPrefs)

	case key.Matches(msg, m.keys.Tab):
		m.switchView((m.active + 1) % len(m.order))
	case key.Matches(msg, m.keys.ShiftTab):
		m.switchView((m.active + len(m.order) - 1) % len(m.order))
	case key.Matches(msg, m.keys.ViewPrompts):
		m.switchView(0)
	case key.Matches(msg, m.keys.ViewDatasets):
		m.switchView(1)
	case key.Matches(msg, m.keys.ViewEvaluators):
		m.switchView(2)
	case key.Matches(msg, m.keys.ViewAPIKeys):
		m.switchView(3)

	case key.Matches(msg, m.keys.Filter):
		m.filterActive = true
		m.filterInput.SetValue(v.query)
		m.filterInput.CursorEnd()
		return m, m.filterInput.Focus()

	case key.Matches(msg, m.keys.Escape):
		if v.query != "" {
			v.query = ""
			v.ctrl.SetParams(m.paramsFor(v))
		}

	case key.Matches(msg, m.keys.CycleSort):
		v.sortIdx = (v.sortIdx + 1) % len(sortPresets)
		v.ctrl.SetParams(m.paramsFor(v))

	case key.Matches(msg, m.keys.Refresh):
		v.ctrl.SetParams(m.paramsFor(v))

	case key.Matches(msg, m.keys.New):
		m.openCreateModal()
	case key.Matches(msg, m.keys.Rename):
		m.openRenameModal()
	case key.Matches(msg, m.keys.Delete):
		m.openDeleteModal()

	case key.Matches(msg, m.keys.Up):
		m.moveSelection(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveSelection(1)
	case key.Matches(msg, m.keys.Top):
		m.moveSelectionTo(0)
	case key.Matches(msg, m.keys.Bottom):
		m.moveSelectionTo(len(v.ctrl.State().Edges) - 1)
	case key.Matches(msg, m.keys.PageUp):
		m.moveSelection(-v.viewport.Height)
	case key.Matches(msg, m.keys.PageDown):
		m.moveSelection(v.viewport.Height)
	case key.Matches(msg, m.keys.HalfPageUp):
		m.moveSelection(-v.viewport.Height / 2)
	case key.Matches(msg, m.keys.HalfPageDown):
		m.moveSelection(v.viewport.Height / 2)
	}

	return m, nil
}

func (m *Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	v := m.activeView()

	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.filterActive = false
		m.filterInput.Blur()
		return *m, nil
	case msg.Type == tea.KeyEsc:
		m.filterActive = false
		m.filterInput.Blur()
		if v.query != "" {
			v.query = ""
			v.ctrl.SetParams(m.paramsFor(v))
		}
		return *m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)

	// Every keystroke flows into the controller; the scheduler's debounce
	// collapses the burst into one fetch with the final text.
	if value := m.filterInput.Value(); value != v.query {
		v.query = value
		v.ctrl.SetParams(m.paramsFor(v))
	}
	return *m, cmd
}

// switchView activates a tab, mounting its controller on first visit.
func (m *Model) switchView(idx int) {
	if idx < 0 || idx >= len(m.order) || idx == m.active {
		return
	}
	m.active = idx
	m.userPrefs.StartView = string(m.order[idx])
	_ = prefs.Save(m.prefsPath, m.userPrefs)
	m.mountActive()
	m.layout()
	m.refreshContent()
}

// paramsFor builds the controller params from a view's filter and sort.
func (m Model) paramsFor(v *resourceView) collection.Params {
	return collection.Params{
		Filter: collection.Filter{Query: v.query},
		Sort:   sortPresets[v.sortIdx].sort,
	}
}

// View renders the whole application.
func (m Model) View() string {
	if !m.ready {
		return "Starting shuttle..."
	}

	styles := m.theme.Styles()
	header := m.renderHeader(styles)
	columns := m.columnHeader()
	footer := m.renderFooter(styles)

	body := m.activeView().viewport.View()
	if m.showHelp {
		body = m.renderHelp(styles)
	} else if m.modal != nil {
		body = m.renderModalOver(body, styles)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, columns, body, footer)
}

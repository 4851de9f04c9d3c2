package ui

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/marquee/internal/catalog"
	"github.com/five82/marquee/internal/dialog"
	"github.com/five82/marquee/internal/filter"
	"github.com/five82/marquee/internal/focus"
	"github.com/five82/marquee/internal/location"
	"github.com/five82/marquee/internal/prefs"
	"github.com/five82/marquee/internal/state"
)

// Options configures the UI. Controller and History are required and must
// share the same history.
type Options struct {
	Context      context.Context
	Source       catalog.Source
	Query        catalog.PageQuery
	FetchTimeout time.Duration
	Controller   *state.Controller
	History      *location.History
	Logger       *slog.Logger
	LogFile      string
	Prefs        prefs.Prefs
	PrefsPath    string

	// Clipboard writes text to the system clipboard. Defaults to
	// clipboard.WriteAll.
	Clipboard func(string) error
	// FlashDuration is how long status-line messages stay up.
	FlashDuration time.Duration
}

const (
	defaultFetchTimeout  = 15 * time.Second
	defaultFlashDuration = 4 * time.Second
)

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx          context.Context
	source       catalog.Source
	query        catalog.PageQuery
	fetchTimeout time.Duration
	ctl          *state.Controller
	history      *location.History
	logger       *slog.Logger
	logFile      string
	prefsPath    string
	copyText     func(string) error
	flashTTL     time.Duration

	// UI state
	keys    keyMap
	theme   Theme
	compact bool
	width   int
	height  int
	ready   bool

	// Focus model
	doc    *focus.Document
	kb     *focus.Keyboard
	dialog *dialog.Controller

	spinner spinner.Model
	help    help.Model

	filters  filterBar
	visible  []catalog.Character
	lastCard string
	offset   int

	detail viewport.Model
	meta   PageMeta

	showHelp     bool
	confirmClear bool
	prompt       locationPrompt
	logs         logPanel
	flash        flash
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	fetchTimeout := opts.FetchTimeout
	if fetchTimeout <= 0 {
		fetchTimeout = defaultFetchTimeout
	}
	flashTTL := opts.FlashDuration
	if flashTTL <= 0 {
		flashTTL = defaultFlashDuration
	}
	copyText := opts.Clipboard
	if copyText == nil {
		copyText = clipboard.WriteAll
	}
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	themeName := opts.Prefs.Theme
	if themeName == "" {
		themeName = prefs.Default().Theme
	}

	doc := focus.NewDocument()
	kb := focus.NewKeyboard()
	dlg := dialog.New(doc, kb, dialog.WithOnClose(func(ch catalog.Character) {
		logger.Debug("dialog closed", "character", ch.Name)
	}))

	m := Model{
		ctx:          ctx,
		source:       opts.Source,
		query:        opts.Query,
		fetchTimeout: fetchTimeout,
		ctl:          opts.Controller,
		history:      opts.History,
		logger:       logger,
		logFile:      opts.LogFile,
		prefsPath:    prefsPath,
		copyText:     copyText,
		flashTTL:     flashTTL,
		keys:         DefaultKeyMap(),
		theme:        GetTheme(themeName),
		compact:      opts.Prefs.Compact,
		doc:          doc,
		kb:           kb,
		dialog:       dlg,
		spinner:      spinner.New(spinner.WithSpinner(spinner.Dot)),
		help:         help.New(),
		filters:      newFilterBar(),
		detail:       viewport.New(0, 0),
		logs:         newLogPanel(),
		prompt:       newLocationPrompt(),
	}
	m.filters.mount(doc)
	m.ctl.Start()
	m.filters.setCriteria(m.ctl.Criteria())
	m.meta = directoryMeta(m.history.Current())
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		fetchCatalogCmd(m.ctx, m.source, m.query, m.fetchTimeout),
		m.applyMeta(m.meta),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resize()
		return m, nil

	case spinner.TickMsg:
		if m.ctl.Status() != state.StatusLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case catalogLoadedMsg:
		m.ctl.Loaded(msg.chars)
		m.filters.setOptions(m.ctl.Options())
		m.filters.setCriteria(m.ctl.Criteria())
		m.syncCards()
		if m.doc.Focused() == "" && len(m.visible) > 0 {
			m.doc.Focus(cardID(m.visible[0]))
			m.syncFocus()
		}
		return m, nil

	case catalogFailedMsg:
		m.ctl.LoadFailed(msg.err)
		return m, nil

	case FiltersChangedMsg:
		m.applyCriteria(msg.Criteria)
		return m, nil

	case FavoriteToggledMsg:
		return m.toggleFavorite(msg.ID)

	case dialogMountMsg:
		if m.dialog.Mounted(msg.seq) {
			m.syncFocus()
		}
		return m, nil

	case logLinesMsg:
		m.logs.load(msg, m.theme)
		return m, nil

	case flashExpiredMsg:
		m.flash.expire(msg.seq)
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.logs.open {
		return m.renderLogs()
	}

	switch m.ctl.Status() {
	case state.StatusLoading:
		return m.renderLoading()
	case state.StatusFailed:
		return m.renderFailure()
	}

	if m.dialog.IsOpen() {
		return m.renderDialog()
	}
	return m.renderMain()
}

// resize propagates the terminal size to sized components.
func (m *Model) resize() {
	m.help.Width = m.width
	m.filters.name.Width = max(m.width/4, 12)
	w, h := m.dialogBodySize()
	m.detail.Width = w
	m.detail.Height = h
	if s := m.dialog.Session(); s != nil {
		m.detail.SetContent(m.dialogBody(s.Character, w))
	}
	m.logs.resize(m.width, m.height)
	m.clampOffset()
}

// Messages

// FiltersChangedMsg sets the filter criteria from outside the model. Edits
// made in the filter bar are applied directly.
type FiltersChangedMsg struct {
	Criteria filter.Criteria
}

// FavoriteToggledMsg asks the root model to flip a character's favorite
// state. It comes from the card grid and from the detail dialog.
type FavoriteToggledMsg struct {
	ID string
}

type catalogLoadedMsg struct {
	chars []catalog.Character
}

type catalogFailedMsg struct {
	err error
}

type dialogMountMsg struct {
	seq uint64
}

// Commands

var errNoSource = errors.New("no catalog source configured")

// applyCriteria hands c to the controller and, when accepted, resyncs the
// filter bar and the cards.
func (m *Model) applyCriteria(c filter.Criteria) {
	if m.ctl.SetCriteria(c) {
		m.filters.setCriteria(m.ctl.Criteria())
		m.syncCards()
	}
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func fetchCatalogCmd(parent context.Context, source catalog.Source, query catalog.PageQuery, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		if source == nil {
			return catalogFailedMsg{err: &catalog.LoadError{Op: "fetch characters", Err: errNoSource}}
		}
		ctx, cancel := context.WithTimeout(parent, timeout)
		defer cancel()
		chars, err := source.FetchCharacters(ctx, query)
		if err != nil {
			return catalogFailedMsg{err: err}
		}
		return catalogLoadedMsg{chars: chars}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(m.ctx))
	_, err := p.Run()
	return err
}

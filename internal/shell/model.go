package shell

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"

	"vmlsite/internal/content"
	"vmlsite/internal/overlay"
)

// Navigator is the page-routing capability the shell consumes.
// *content.Router is the canonical implementation.
type Navigator interface {
	Current() string
	Page() (*content.Page, bool)
	Navigate(href string) (content.Result, error)
	Back() (string, bool)
	SetSite(site *content.Site)
}

var _ Navigator = (*content.Router)(nil)

// Options configures a shell Model. Zero values get defaults.
type Options struct {
	Site         *content.Site // required
	Navigator    Navigator     // defaults to a content.Router over Site
	StartPath    string
	Opener       content.Opener
	Renderer     *content.Renderer
	CompactBelow int
	PanelWidth   int
	Transition   time.Duration
	Width        int // size used until the first tea.WindowSizeMsg
	Height       int
	Logger       *zap.Logger
	Tracer       oteltrace.Tracer
	Context      context.Context // parent of spans
}

// Model is the persistent site shell: header navigation, the main content
// viewport, the footer and the compact menu.
type Model struct {
	ID string // portal owner

	site       *content.Site
	router     Navigator
	nav        []content.NavEntry
	renderer   *content.Renderer
	breakpoint Breakpoint
	panelWidth int

	width, height int
	compact       bool

	viewport viewport.Model
	body     string // rendered markdown of the current page
	focus    focusRing
	sheet    *sheet
	host     *overlay.PortalHost

	keys     *KeybindRegistry
	help     help.Model
	status   string
	statusOK bool

	log    *zap.Logger
	tracer oteltrace.Tracer
	ctx    context.Context
}

// New creates a shell. Call Init (or Mount) before the menu can open.
func New(opts Options) *Model {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Tracer == nil {
		opts.Tracer = noop.NewTracerProvider().Tracer("")
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Renderer == nil {
		opts.Renderer = content.NewRenderer("")
	}
	if opts.CompactBelow <= 0 {
		opts.CompactBelow = 100
	}
	if opts.PanelWidth <= 0 {
		opts.PanelWidth = 34
	}
	if opts.Width <= 0 {
		opts.Width = 80
	}
	if opts.Height <= 0 {
		opts.Height = 24
	}
	if opts.Navigator == nil {
		opts.Navigator = content.NewRouter(opts.Site, opts.StartPath, opts.Opener)
	}

	m := &Model{
		ID:         uuid.NewString(),
		site:       opts.Site,
		router:     opts.Navigator,
		nav:        opts.Site.Nav(),
		renderer:   opts.Renderer,
		breakpoint: Breakpoint{CompactBelow: opts.CompactBelow},
		panelWidth: opts.PanelWidth,
		viewport:   viewport.New(0, 0),
		keys:       DefaultKeybinds(),
		help:       help.New(),
		log:        opts.Logger.With(zap.String("component", "shell")),
		tracer:     opts.Tracer,
		ctx:        opts.Context,
	}
	m.help.Styles.ShortKey = Styles.HelpKey
	m.help.Styles.ShortDesc = Styles.HelpDesc
	m.help.Styles.FullKey = Styles.HelpKey
	m.help.Styles.FullDesc = Styles.HelpDesc
	m.focus.OnChange = func(from, to string) {
		m.refreshMain()
	}
	m.sheet = newSheet(m, opts.Transition)
	m.resize(opts.Width, opts.Height)
	m.loadPage()
	return m
}

// Mount attaches the shell to the page-wide portal host.
func (m *Model) Mount() {
	if m.host == nil {
		m.host = overlay.AcquireHost()
	}
}

// Unmount closes the menu and detaches from the portal host.
func (m *Model) Unmount() {
	if m.host == nil {
		return
	}
	m.sheet.CloseNow()
	m.host = nil
	overlay.ReleaseHost()
}

// Init mounts the shell.
func (m *Model) Init() tea.Cmd {
	m.Mount()
	return nil
}

// Update handles a message and returns a command to run.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	cmd := m.update(msg)
	m.sheet.Refresh()
	return cmd
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return nil
	case settleMsg:
		if msg.owner != m.ID {
			return nil
		}
		return m.sheet.Settle(msg.ticket)
	case MountFailedMsg:
		// Already logged by the transition observer; the next open retries.
		return nil
	case ContentReloadedMsg:
		m.reload(msg.Site, msg.Err)
		return nil
	case BackMsg:
		return m.back()
	case OpenMenuMsg:
		return m.openMenu()
	case ToggleHelpMsg:
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return nil
	case tea.KeyMsg:
		if m.sheet.State().Visible() {
			return m.handleMenuKey(msg)
		}
		return m.handlePageKey(msg)
	case tea.MouseMsg:
		if m.sheet.State().Visible() {
			return m.handleMenuMouse(msg)
		}
		return m.handlePageMouse(msg)
	}
	return nil
}

// State returns the menu's overlay state.
func (m *Model) State() overlay.State {
	return m.sheet.State()
}

// Compact reports whether the shell is below its breakpoint.
func (m *Model) Compact() bool {
	return m.compact
}

// Focused returns the focused element: the menu's while the trap is engaged,
// otherwise the page chrome's.
func (m *Model) Focused() string {
	if m.sheet.trap.Engaged() {
		return m.sheet.trap.Current
	}
	return m.focus.Current
}

// Focusable reports whether id can currently receive focus.
func (m *Model) Focusable(id string) bool {
	if m.sheet.trap.Engaged() {
		for _, o := range m.sheet.trap.Order {
			if o == id {
				return true
			}
		}
		return false
	}
	return m.focus.Contains(id)
}

// Status returns the footer status line and whether it reports success.
func (m *Model) Status() (string, bool) {
	return m.status, m.statusOK
}

// Current returns the current page path.
func (m *Model) Current() string {
	return m.router.Current()
}

// ScrollOffset returns the main viewport's Y offset.
func (m *Model) ScrollOffset() int {
	return m.viewport.YOffset
}

// AsTeaModel returns a tea.Model for use with tea.NewProgram.
func (m *Model) AsTeaModel() tea.Model {
	return &modelAdapter{Model: m}
}

// Ensure Model can be used as tea.Model via adapter.
var _ tea.Model = (*modelAdapter)(nil)

type modelAdapter struct {
	*Model
}

func (a *modelAdapter) Init() tea.Cmd {
	return a.Model.Init()
}

func (a *modelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return a, a.Model.Update(msg)
}

func (a *modelAdapter) View() string {
	return a.Model.View()
}

// resize re-derives the breakpoint and geometry. Crossing into wide while the
// menu is up closes it synchronously since the trigger is about to vanish.
func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	wasCompact := m.compact
	m.compact = m.breakpoint.IsCompact(width)
	m.layout()
	if m.compact != wasCompact {
		m.log.Debug("breakpoint crossed", zap.Int("width", width), zap.Bool("compact", m.compact))
	}
	m.rebuildFocus()
	if wasCompact && !m.compact && m.sheet.State().Visible() {
		m.sheet.CloseNow()
	}
	m.renderBody()
	m.sheet.lock.Hold()
	m.sheet.Reorder(m.panelOrder())
}

// layout sizes the main viewport to what the header and footer leave.
func (m *Model) layout() {
	h := m.height - headerHeight - m.footerHeight()
	if h < 1 {
		h = 1
	}
	m.viewport.Width = m.width
	m.viewport.Height = h
}

// rebuildFocus recomputes the page tab order; focus on an element that no
// longer exists moves to the main landmark.
func (m *Model) rebuildFocus() {
	order := []string{IDBrand}
	if m.compact {
		order = append(order, IDTrigger)
	} else {
		for i := range m.nav {
			order = append(order, navID(i))
		}
	}
	order = append(order, IDMain)
	if p, ok := m.router.Page(); ok {
		for i := range p.Links {
			order = append(order, linkID(i))
		}
	}
	m.focus.Reset(order, IDMain)
}

// panelOrder is the menu's tab order: the close control then every entry.
func (m *Model) panelOrder() []string {
	order := []string{IDClose}
	for i := range m.nav {
		order = append(order, sheetID(i))
	}
	return order
}

func (m *Model) openMenu() tea.Cmd {
	if !m.compact {
		return nil
	}
	m.focus.SetFocus(IDTrigger)
	return m.sheet.Open()
}

// navigate commits a navigation. The menu closes with every commit, whatever
// the outcome.
func (m *Model) navigate(href string) tea.Cmd {
	closeCmd := m.sheet.Close()
	_, span := m.tracer.Start(m.ctx, "site.navigate",
		oteltrace.WithAttributes(attribute.String("href", href)))
	defer span.End()

	res, err := m.router.Navigate(href)
	span.SetAttributes(attribute.String("path", res.Path), attribute.Bool("external", res.External))
	switch {
	case err != nil:
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		m.log.Info("navigate failed", zap.String("href", href), zap.Error(err))
		m.setStatus(err.Error(), false)
	case res.External:
		m.setStatus("opened "+res.Href, true)
	default:
		m.setStatus("", true)
		m.pageChanged()
	}
	return tea.Batch(closeCmd, func() tea.Msg { return NavigatedMsg{Result: res, Err: err} })
}

func (m *Model) back() tea.Cmd {
	closeCmd := m.sheet.Close()
	if _, ok := m.router.Back(); !ok {
		return closeCmd
	}
	m.setStatus("", true)
	m.pageChanged()
	return closeCmd
}

func (m *Model) reload(site *content.Site, err error) {
	if err != nil {
		m.log.Warn("content reload failed", zap.Error(err))
		m.setStatus("reload: "+err.Error(), false)
		return
	}
	m.site = site
	m.router.SetSite(site)
	m.nav = site.Nav()
	m.rebuildFocus()
	m.sheet.Reorder(m.panelOrder())
	m.renderBody()
	m.sheet.lock.Hold()
	m.setStatus("reloaded", true)
}

// pageChanged loads the new current page. A scroll lock still held by a
// closing menu is rebased so unlocking lands on the new page's top.
func (m *Model) pageChanged() {
	m.rebuildFocus()
	m.loadPage()
	if m.sheet.lock.Locked() {
		m.sheet.lock.Rebase(0)
	}
}

func (m *Model) loadPage() {
	m.renderBody()
	m.viewport.GotoTop()
}

func (m *Model) renderBody() {
	p, ok := m.router.Page()
	if !ok {
		m.body = ""
		m.refreshMain()
		return
	}
	out, err := m.renderer.Render(p.Source, m.width)
	if err != nil {
		m.log.Warn("render page", zap.String("path", p.Path), zap.Error(err))
		out = p.Source
	}
	m.body = out
	m.refreshMain()
}

func (m *Model) setStatus(s string, ok bool) {
	m.status, m.statusOK = s, ok
}

package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
	"github.com/vovakirdan/tui-flappy/internal/viewport"
)

// Options configures a game model.
type Options struct {
	Config  config.FlappyConfig
	Runtime core.RuntimeConfig
	Store   *storage.Store // Run log; nil disables recording
	Mixer   *assets.Mixer  // Cue output; nil is silent
	Logger  *log.Logger
	Session string // Run log session ID; generated when empty

	// Clipboard enables copying screenshots to the local clipboard. SSH
	// sessions disable it since the clipboard belongs to the server.
	Clipboard bool
}

// Model is the Bubble Tea model hosting one game.
type Model struct {
	opts     Options
	game     *flappy.Game
	screen   *core.Screen
	surface  *screenSurface
	library  *assets.Library
	set      *assets.Set
	keys     KeyMap
	help     help.Model
	debounce *viewport.Debouncer
	term     viewport.Size
	logger   *log.Logger

	start      time.Time     // Wall clock origin of frame timestamps
	now        time.Duration // Timestamp of the latest frame
	roundStart time.Duration // Timestamp of the flap that started the round

	status      string
	statusUntil time.Time
	quitting    bool
}

// NewModel creates a model. The viewport size comes from opts.Runtime and is
// applied immediately; later resizes are debounced.
func NewModel(opts Options) Model {
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Session == "" {
		opts.Session = uuid.NewString()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	library := assets.NewLibrary(opts.Mixer)
	set, _, err := library.Load(opts.Config.Theme)
	if err != nil {
		logger.Warn("unknown theme, using classic", "theme", opts.Config.Theme, "error", err)
		set, _, _ = library.Load("classic")
	}

	h := help.New()
	h.ShowAll = false

	screen := core.NewScreen(core.Max(opts.Runtime.ScreenW, 1), core.Max(opts.Runtime.ScreenH, 1))
	m := Model{
		opts:     opts,
		game:     flappy.New(opts.Config, set.Assets(), flappy.NewRand(opts.Runtime.Seed)),
		screen:   screen,
		surface:  newScreenSurface(screen),
		library:  library,
		set:      set,
		keys:     DefaultKeyMap(),
		help:     h,
		debounce: viewport.NewDebouncer(opts.Config.Viewport.ResizeDebounce()),
		logger:   logger,
		start:    time.Now(),
	}
	m.surface.hud = set.Theme.HUDColor()
	m.applySize(viewport.Size{W: opts.Runtime.ScreenW, H: opts.Runtime.ScreenH})
	return m
}

// Init starts the frame loop and the load step of the initial theme.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.opts.Runtime.TickRate), loadAssetsCmd(m.set))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleAction(m.keys.MapKey(msg))

	case tea.MouseMsg:
		return m.handleAction(MapMouse(msg))

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case resizeMsg:
		if size, ok := m.debounce.Fire(msg.token); ok {
			m.applySize(size)
		}
		return m, nil

	case assetsLoadedMsg:
		msg.set.Resolve()
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleAction applies one input action.
func (m Model) handleAction(a core.Action) (tea.Model, tea.Cmd) {
	switch a {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionFlap:
		if m.game.State().Phase() != flappy.PhaseRunning {
			m.roundStart = m.now
		}
		m.game.Activate()
		m.handleEvents()

	case core.ActionTheme:
		return m.toggleTheme()

	case core.ActionScreenshot:
		m.setStatus(m.takeScreenshot())
	}

	return m, nil
}

// handleResize records a terminal resize. The first size is applied at once;
// later ones wait until resizing has settled.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	size := viewport.Size{W: msg.Width, H: msg.Height}
	m.help.Width = msg.Width

	if size == m.term && !m.debounce.Pending() {
		return m, nil
	}
	if m.term.W <= 0 || m.term.H <= 0 {
		m.applySize(size)
		return m, nil
	}

	token := m.debounce.Trigger(time.Now(), size)
	return m, resizeCmd(m.debounce.Delay, token)
}

// applySize resizes the screen and the game to a terminal size.
func (m *Model) applySize(size viewport.Size) {
	if size.W <= 0 || size.H <= 0 {
		return
	}
	m.term = size

	w, h := viewport.WorldSize(size)
	m.game.Resize(w, h)

	d := m.game.Dimensions()
	m.surface.grid = viewport.NewGrid(size, d.BoardW, d.BoardH)
	m.screen.Resize(size.W, m.surface.grid.Rows)

	m.logger.Debug("viewport resized", "cols", size.W, "rows", size.H, "board_h", d.BoardH)
}

// handleTick runs one animation frame. The next tick is scheduled before the
// frame runs so the loop never stops, whatever state the game is in.
func (m Model) handleTick(t time.Time) (tea.Model, tea.Cmd) {
	next := tickCmd(m.opts.Runtime.TickRate)

	m.now = t.Sub(m.start)
	m.game.Frame(m.now, m.surface)
	m.handleEvents()

	if m.status != "" && t.After(m.statusUntil) {
		m.status = ""
	}

	return m, next
}

// handleEvents logs drained cues and records the run when a round ends.
func (m *Model) handleEvents() {
	for _, cue := range m.game.DrainEvents() {
		m.logger.Debug("cue", "cue", cue, "session", m.opts.Session)
		if cue == flappy.CueHit || cue == flappy.CueDie {
			m.recordRun(cue)
		}
	}
}

// recordRun saves the round that just ended.
func (m *Model) recordRun(cause flappy.Cue) {
	st := m.game.State()
	run := storage.Run{
		Session:  m.opts.Session,
		Theme:    m.set.Theme.ID,
		Score:    st.Score,
		Best:     st.BestScore,
		GodMode:  st.GodMode,
		Cause:    string(cause),
		Duration: m.now - m.roundStart,
	}

	m.logger.Info("round over",
		"session", m.opts.Session,
		"score", flappy.FormatScore(st.Score),
		"best", flappy.FormatScore(st.BestScore),
		"cause", cause,
	)

	if m.opts.Store == nil {
		return
	}
	if _, err := m.opts.Store.SaveRun(run); err != nil {
		m.logger.Warn("could not record run", "error", err)
	}
}

// toggleTheme switches to the next registered theme.
func (m Model) toggleTheme() (tea.Model, tea.Cmd) {
	id := assets.Next(m.set.Theme.ID)
	set, fresh, err := m.library.Load(id)
	if err != nil {
		m.logger.Warn("could not load theme", "theme", id, "error", err)
		return m, nil
	}

	m.set = set
	m.game.SetAssets(set.Assets())
	m.surface.hud = set.Theme.HUDColor()
	m.setStatus("theme: " + set.Theme.Title)

	if fresh {
		return m, loadAssetsCmd(set)
	}
	return m, nil
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusUntil = time.Now().Add(statusTimeout)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.screen) + "\n" + m.renderFooter()
}

// Game returns the hosted game.
func (m Model) Game() *flappy.Game {
	return m.game
}

// Session returns the run log session ID.
func (m Model) Session() string {
	return m.opts.Session
}

// Run starts the Bubble Tea program and returns the final model.
func Run(opts Options) (Model, error) {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks flap
	)

	final, err := p.Run()
	if m, ok := final.(Model); ok {
		return m, err
	}
	return model, err
}

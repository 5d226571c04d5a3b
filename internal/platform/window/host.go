// Package window hosts the game in a native Ebitengine window.
package window

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
	"github.com/vovakirdan/tui-flappy/internal/viewport"
)

// Options configures a window host.
type Options struct {
	Config  config.FlappyConfig
	Runtime core.RuntimeConfig // ScreenW/ScreenH are the initial window size in pixels
	Store   *storage.Store     // Run log; nil disables recording
	Mixer   *assets.Mixer      // Cue output; nil is silent
	Logger  *log.Logger
	Session string // Run log session ID; generated when empty
}

// Host implements ebiten.Game around one flappy game.
type Host struct {
	opts     Options
	game     *flappy.Game
	surface  *imageSurface
	library  *assets.Library
	set      *assets.Set
	loaded   chan *assets.Set
	debounce *viewport.Debouncer
	size     viewport.Size
	logger   *log.Logger

	start      time.Time
	now        time.Duration
	roundStart time.Duration
}

var _ ebiten.Game = (*Host)(nil)

// NewHost creates a host. The initial theme loads in the background and
// resolves on the game goroutine during Update.
func NewHost(opts Options) *Host {
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

	h := &Host{
		opts:     opts,
		game:     flappy.New(opts.Config, set.Assets(), flappy.NewRand(opts.Runtime.Seed)),
		surface:  newImageSurface(),
		library:  library,
		set:      set,
		loaded:   make(chan *assets.Set, 1),
		debounce: viewport.NewDebouncer(opts.Config.Viewport.ResizeDebounce()),
		logger:   logger,
		start:    time.Now(),
	}
	h.surface.hud = set.Theme.HUDRGB()
	h.applySize(viewport.Size{W: opts.Runtime.ScreenW, H: opts.Runtime.ScreenH})
	h.loadSet(set)
	return h
}

// loadSet hands set to the next Update once its sprites are available.
func (h *Host) loadSet(set *assets.Set) {
	go func() { h.loaded <- set }()
}

// Update polls input, resolves loaded themes and applies settled resizes.
func (h *Host) Update() error {
	select {
	case set := <-h.loaded:
		set.Resolve()
	default:
	}

	if size, ok := h.debounce.Due(time.Now()); ok {
		h.applySize(size)
	}

	switch pollAction() {
	case core.ActionQuit:
		return ebiten.Termination
	case core.ActionFlap:
		h.flap()
	case core.ActionTheme:
		h.toggleTheme()
	}
	return nil
}

// pollAction maps this tick's presses to an action.
func pollAction() core.Action {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return core.ActionQuit
	case inpututil.IsKeyJustPressed(ebiten.KeySpace),
		inpututil.IsKeyJustPressed(ebiten.KeyArrowUp),
		inpututil.IsKeyJustPressed(ebiten.KeyW),
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		len(inpututil.AppendJustPressedTouchIDs(nil)) > 0:
		return core.ActionFlap
	case inpututil.IsKeyJustPressed(ebiten.KeyT):
		return core.ActionTheme
	}
	return core.ActionNone
}

func (h *Host) flap() {
	if h.game.State().Phase() != flappy.PhaseRunning {
		h.roundStart = h.now
	}
	h.game.Activate()
	h.handleEvents()
}

// toggleTheme switches to the next registered theme.
func (h *Host) toggleTheme() {
	id := assets.Next(h.set.Theme.ID)
	set, fresh, err := h.library.Load(id)
	if err != nil {
		h.logger.Warn("could not load theme", "theme", id, "error", err)
		return
	}
	h.set = set
	h.game.SetAssets(set.Assets())
	h.surface.hud = set.Theme.HUDRGB()
	if fresh {
		h.loadSet(set)
	}
	h.logger.Debug("theme", "id", id)
}

// Draw runs one game frame. Ebitengine hands out the screen image only here.
func (h *Host) Draw(screen *ebiten.Image) {
	h.now = time.Since(h.start)
	h.surface.dst = screen
	h.game.Frame(h.now, h.surface)
	h.handleEvents()
}

// Layout keeps one board unit per pixel. A changed window size is applied
// once resizing settles.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := viewport.Size{W: outsideWidth, H: outsideHeight}
	if size != h.size && size.W > 0 && size.H > 0 {
		if h.size.W <= 0 || h.size.H <= 0 {
			h.applySize(size)
		} else {
			h.debounce.Trigger(time.Now(), size)
		}
	}
	if h.size.W <= 0 || h.size.H <= 0 {
		return outsideWidth, outsideHeight
	}
	return h.size.W, h.size.H
}

func (h *Host) applySize(size viewport.Size) {
	if size.W <= 0 || size.H <= 0 {
		return
	}
	h.size = size
	h.game.Resize(float64(size.W), float64(size.H))
	h.surface.offsetX = boardOffset(float64(size.W), h.game.Dimensions().BoardW)
	h.logger.Debug("window resized", "width", size.W, "height", size.H)
}

// handleEvents logs drained cues and records the run when a round ends.
func (h *Host) handleEvents() {
	for _, cue := range h.game.DrainEvents() {
		h.logger.Debug("cue", "cue", cue, "session", h.opts.Session)
		if cue != flappy.CueHit && cue != flappy.CueDie {
			continue
		}

		st := h.game.State()
		h.logger.Info("round over",
			"session", h.opts.Session,
			"score", flappy.FormatScore(st.Score),
			"best", flappy.FormatScore(st.BestScore),
			"cause", cue,
		)
		if h.opts.Store == nil {
			continue
		}
		_, err := h.opts.Store.SaveRun(storage.Run{
			Session:  h.opts.Session,
			Theme:    h.set.Theme.ID,
			Score:    st.Score,
			Best:     st.BestScore,
			GodMode:  st.GodMode,
			Cause:    string(cue),
			Duration: h.now - h.roundStart,
		})
		if err != nil {
			h.logger.Warn("could not record run", "error", err)
		}
	}
}

// Game returns the hosted game.
func (h *Host) Game() *flappy.Game {
	return h.game
}

// Session returns the run log session ID.
func (h *Host) Session() string {
	return h.opts.Session
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) (*Host, error) {
	if opts.Runtime.ScreenW <= 0 || opts.Runtime.ScreenH <= 0 {
		opts.Runtime.ScreenW, opts.Runtime.ScreenH = 480, 640
	}
	h := NewHost(opts)

	ebiten.SetWindowTitle(flappy.Title)
	ebiten.SetWindowSize(opts.Runtime.ScreenW, opts.Runtime.ScreenH)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if opts.Runtime.TickRate > 0 {
		ebiten.SetTPS(opts.Runtime.TickRate)
	}

	return h, ebiten.RunGame(h)
}

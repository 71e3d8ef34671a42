package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/ProneilS/flappyBird/internal/config"
	"github.com/ProneilS/flappyBird/internal/core"
	"github.com/ProneilS/flappyBird/internal/loop"
	"github.com/ProneilS/flappyBird/internal/sim"
)

// DefaultTickRate is the simulation rate used when none is given.
const DefaultTickRate = 60

// helpReserve is the number of terminal rows kept below the playfield
// for the help bar.
const helpReserve = 2

// Options configure an interactive game session.
type Options struct {
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 derives one from the wall clock
	Width    int   // Initial terminal width in cells
	Height   int   // Initial terminal height in cells
	Logger   *log.Logger
}

// Model is the Bubble Tea model driving one game session. It owns the
// simulation and the tick scheduler; all state mutation happens inside
// Update, so the single-threaded simulation contract holds.
type Model struct {
	game     *sim.Sim
	clock    *loop.Loop
	ticks    chan TickMsg
	screen   *core.Screen
	cfg      config.Config
	snap     sim.Snapshot
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	quitting bool
}

// NewModel creates a game session model from a validated config.
func NewModel(cfg config.Config, opts Options) Model {
	if opts.TickRate <= 0 {
		opts.TickRate = DefaultTickRate
	}
	// Use time-based seed if not specified
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	game := sim.New(cfg, opts.Seed)
	game.SetObserver(logObserver{logger: opts.Logger})

	ticks := make(chan TickMsg, 1)

	h := help.New()
	h.Width = opts.Width

	m := Model{
		game:   game,
		clock:  loop.New(opts.TickRate, forwardTick(ticks)),
		ticks:  ticks,
		screen: core.NewScreen(opts.Width, core.Max(opts.Height-helpReserve, 1)),
		cfg:    cfg,
		snap:   game.Snapshot(),
		keys:   DefaultKeyMap(),
		help:   h,
		logger: opts.Logger,
	}
	return m
}

// Init starts the tick scheduler and arms the channel listener.
func (m Model) Init() tea.Cmd {
	m.clock.Start()
	return listenForTicks(m.ticks)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input. Inputs apply to the simulation
// immediately; they never wait for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.clock.Stop()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		return m.restart(), nil

	case key.Matches(msg, m.keys.Flap):
		return m.flap(), nil
	}

	return m, nil
}

// handleMouse treats a left click like a flap.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		return m.flap(), nil
	}
	return m, nil
}

// handleResize re-targets the cell grid. The simulation is unaffected.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, core.Max(msg.Height-helpReserve, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the simulation by one step. Ticks queued by a
// stopped or replaced scheduler handle are dropped.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.clock.Running() || msg.Gen != m.clock.Gen() {
		return m, listenForTicks(m.ticks)
	}

	m.game.Step()
	m.snap = m.game.Snapshot()
	return m, listenForTicks(m.ticks)
}

// flap applies a flap to the simulation. From the game over screen a
// flap returns to the menu, which also needs a fresh scheduler handle.
func (m Model) flap() Model {
	wasOver := m.game.Phase() == sim.PhaseGameOver
	m.game.Flap()
	if wasOver {
		m.clock.Restart()
	}
	m.snap = m.game.Snapshot()
	return m
}

// restart resets the simulation and replaces the scheduler handle so no
// queued tick from the old run can advance the fresh one.
func (m Model) restart() Model {
	m.game.Reset()
	m.clock.Restart()
	m.snap = m.game.Snapshot()
	return m
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	drawFrame(m.screen, m.snap, m.cfg)

	helpStyle := colorStyles[core.ColorGray]
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// logObserver forwards simulation events to the session logger.
type logObserver struct {
	logger *log.Logger
}

func (o logObserver) PhaseChanged(from, to sim.Phase) {
	o.logger.Debug("phase changed", "from", from, "to", to)
}

func (o logObserver) ScoreChanged(score int) {
	o.logger.Debug("score changed", "score", score)
}

// Run starts the Bubble Tea program for one game session and blocks
// until it exits.
func Run(cfg config.Config, opts Options) error {
	m := NewModel(cfg, opts)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Click to flap
	)

	_, err := p.Run()
	m.clock.Stop()
	if err != nil {
		return fmt.Errorf("tui: program: %w", err)
	}
	return nil
}

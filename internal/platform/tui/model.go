package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/arcadeworks/tui-snake/internal/config"
	"github.com/arcadeworks/tui-snake/internal/core"
	"github.com/arcadeworks/tui-snake/internal/snake"
)

// Model is the Bubble Tea model driving the game loop: it polls input,
// steps the state machine once per tick and renders the result. One row at
// the bottom of the terminal is reserved for the help line.
type Model struct {
	game     *snake.Game
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	rt       core.RuntimeConfig
	normal   time.Duration // Tick interval at normal speed
	boosted  time.Duration
	interval time.Duration
	pending  core.Action // Last key observed since the previous tick
	state    core.GameState
	quitting bool
}

// NewModel creates the Bubble Tea model for the given game.
// rt.ScreenH is the full terminal height; the game gets one row less.
func NewModel(game *snake.Game, rt core.RuntimeConfig, cfg config.SnakeConfig) Model {
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	normal := time.Duration(cfg.Speed.NormalIntervalMs) * time.Millisecond
	boosted := normal / time.Duration(cfg.Speed.BoostDivisor)

	m := Model{
		game:     game,
		screen:   core.NewScreen(rt.ScreenW, rt.ScreenH-1),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		rt:       rt,
		normal:   normal,
		boosted:  boosted,
		interval: normal,
	}
	m.help.Width = rt.ScreenW

	game.Reset(core.RuntimeConfig{
		ScreenW: rt.ScreenW,
		ScreenH: rt.ScreenH - 1,
		Seed:    rt.Seed,
	})
	m.state = game.State()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.interval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case tea.InterruptMsg:
		// External interrupt is a graceful quit, not a crash
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleKey records the most recent action for the next tick.
// Quit is honored immediately in either state.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	act := m.keys.ActionFor(msg)

	switch act {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionRestart:
		if m.state.GameOver {
			m.pending = act
		}
	case core.ActionNone:
		// Ignore unrecognized keys; the pending action stands
	default:
		m.pending = act
	}

	return m, nil
}

// handleResize re-derives the playable bounds from the new terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.rt.ScreenW = msg.Width
	m.rt.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-1)
	m.help.Width = msg.Width

	// The board geometry depends on the screen, so a resize restarts the
	// round unless the game over screen is showing.
	if !m.state.GameOver {
		m.game.Reset(core.RuntimeConfig{
			ScreenW: msg.Width,
			ScreenH: msg.Height - 1,
			Seed:    time.Now().UnixNano(),
		})
		m.state = m.game.State()
	}

	return m, nil
}

// handleTick runs one simulation step and schedules the next tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.pending)
	m.state = result.State

	// Absence of a key resets to normal; holding the current direction
	// halves the delay until the next tick.
	m.interval = m.normal
	if result.Speed == snake.SpeedBoost {
		m.interval = m.boosted
	}

	// Consume the input so the next tick observes key absence
	m.pending = core.ActionNone

	return m, tickCmd(m.interval)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for the given game and blocks until it
// exits. An external interrupt is treated as a graceful quit.
func Run(game *snake.Game, rt core.RuntimeConfig, cfg config.SnakeConfig) error {
	model := NewModel(game, rt, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer, hides the cursor
	)

	_, err := p.Run()
	return err
}

package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-weather/internal/audio"
	"github.com/vovakirdan/tui-weather/internal/config"
	"github.com/vovakirdan/tui-weather/internal/core"
	"github.com/vovakirdan/tui-weather/internal/weather/scene"
)

// Options control how the scene starts.
type Options struct {
	Thunder bool // Start in thunderstorm mode
	Muted   bool // Start with the thunder sound muted
}

// Model is the Bubble Tea model running the weather scene.
type Model struct {
	scene      *scene.Scene
	screen     *core.Screen
	config     core.RuntimeConfig
	mapper     *KeyMapper
	keys       KeyMap
	help       help.Model
	sound      *audio.Engine
	inputFrame core.InputFrame
	showHelp   bool
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given scene.
func NewModel(sc *scene.Scene, cfg core.RuntimeConfig, sound *audio.Engine, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	sc.Reset(cfg)
	sc.SetThunder(opts.Thunder)
	sound.SetMuted(opts.Muted)

	return Model{
		scene:      sc,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		mapper:     NewKeyMapper(),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		sound:      sound,
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "?" {
		m.showHelp = !m.showHelp
		return m, nil
	}

	action, isQuit := m.mapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionMute:
		m.sound.ToggleMute()
	case core.ActionNone:
		// Unrecognized keys are ignored
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events. The scene discards its
// in-flight state; the next tick repopulates the new grid.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.scene.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width

	return m, nil
}

// handleTick runs one simulation step.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	result := m.scene.Step(now, m.inputFrame)
	if result.Strikes > 0 {
		m.sound.PlayThunder()
	}

	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// View renders the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.scene.Render(m.screen)
	out := RenderScreen(m.screen)

	if m.showHelp && m.screen.Height() > 1 {
		// Replace the bottom row with the key help footer
		if i := strings.LastIndexByte(out, '\n'); i >= 0 {
			out = out[:i+1] + m.help.View(m.keys)
		}
	}
	return out
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(weather config.WeatherConfig, cfg core.RuntimeConfig, opts Options) error {
	sound, err := audio.NewEngine()
	if err != nil {
		log.Warn("audio unavailable, thunder muted", "error", err)
	}

	model := NewModel(scene.New(weather), cfg, sound, opts)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, runErr := p.Run()
	return runErr
}

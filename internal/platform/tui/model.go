package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
	"github.com/vovakirdan/tui-shooter/internal/input"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

// Options configure a play session.
type Options struct {
	Config     config.ShooterConfig
	Runtime    core.RuntimeConfig
	Store      *storage.Store
	Logger     *log.Logger
	Difficulty string

	// Clock defaults to a wall clock.
	Clock input.Clock
}

// frameTouches hands the touches collected in an input frame to the session.
type frameTouches struct {
	frame *core.InputFrame
}

func (f frameTouches) Touches() []core.Point {
	return f.frame.Drain()
}

// Model is the Bubble Tea model for a shooter session.
type Model struct {
	session *shooter.Session
	canvas  *Canvas
	screen  *core.Screen
	frame   *core.InputFrame
	mic     *input.Microphone
	scaler  input.Scaler
	store   *storage.Store
	logger  *log.Logger

	keys   KeyMap
	help   help.Model
	rounds table.Model

	display  config.DisplayConfig
	config   core.RuntimeConfig
	quitting bool
}

// NewModel wires a session to the terminal.
func NewModel(opts Options) (Model, error) {
	cfg := opts.Runtime
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	clock := opts.Clock
	if clock == nil {
		clock = input.NewWallClock()
	}

	frame := core.NewInputFrame()
	canvas := NewCanvas()
	mic := input.NewMicrophone(clock, input.DefaultSampleRate)

	deps := shooter.Deps{
		Clock:      clock,
		Touches:    frameTouches{frame: &frame},
		Volume:     mic,
		Renderer:   canvas,
		Logger:     logger,
		Seed:       cfg.Seed,
		Difficulty: opts.Difficulty,
	}
	// A nil *storage.Store must not become a non-nil interface.
	if opts.Store != nil {
		deps.Recorder = opts.Store
	}

	session, err := shooter.NewSession(opts.Config, deps)
	if err != nil {
		return Model{}, err
	}

	m := Model{
		session: session,
		canvas:  canvas,
		screen:  core.NewScreen(cfg.ScreenW, max(1, cfg.ScreenH-1)),
		frame:   &frame,
		mic:     mic,
		store:   opts.Store,
		logger:  logger,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		rounds:  newRoundsTable(),
		display: opts.Config.Display,
		config:  cfg,
	}
	m.scaler = m.scalerFor(cfg.ScreenW, cfg.ScreenH)
	return m, nil
}

// scalerFor maps the play area, the terminal minus the help line, onto the display.
func (m Model) scalerFor(w, h int) input.Scaler {
	return input.Scaler{Cols: w, Rows: max(1, h-1), Width: m.display.Width, Height: m.display.Height}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
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
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	case core.ActionNone:
	default:
		m.frame.Set(action)
	}
	return m, nil
}

// handleMouse turns left-button presses into touches.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if msg.Y >= m.scaler.Rows {
		return m, nil // help line
	}
	m.frame.Touch(m.scaler.Point(msg.X, msg.Y))
	return m, nil
}

// handleResize processes window resize events. The display keeps its
// pixel size; only the mapping to cells changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(1, msg.Height-1))
	m.scaler = m.scalerFor(msg.Width, msg.Height)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one session frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.frame.Has(core.ActionShout) {
		m.mic.Shout()
	}
	if m.frame.Has(core.ActionAbort) {
		m.session.Abort()
	}

	if m.session.Tick() == shooter.ModeGameOver {
		if err := loadRounds(&m.rounds, m.store); err != nil {
			m.logger.Warn("could not load rounds", "error", err)
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// Session exposes the running session.
func (m Model) Session() *shooter.Session {
	return m.session
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	footer := helpStyle.Render(m.help.View(m.keys))

	if m.canvas.ShowingGameOver() {
		panel := m.gameOverPanel()
		return lipgloss.Place(m.screen.Width(), m.screen.Height(), lipgloss.Center, lipgloss.Center, panel) +
			"\n" + footer
	}

	m.canvas.Render(m.screen, m.scaler)
	return RenderScreen(m.screen) + "\n" + footer
}

func (m Model) gameOverPanel() string {
	score, high := m.canvas.Result()

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	scoreStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	hintStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)

	var b strings.Builder
	b.WriteString(titleStyle.Render("GAME OVER"))
	b.WriteString("\n\n")
	b.WriteString(scoreStyle.Render(fmt.Sprintf("Score %s", humanize.Comma(int64(score)))))
	b.WriteString("   ")
	b.WriteString(fmt.Sprintf("Best %s", humanize.Comma(int64(high))))
	b.WriteString("\n\n")
	if len(m.rounds.Rows()) > 0 {
		b.WriteString(m.rounds.View())
		b.WriteString("\n\n")
	}
	b.WriteString(hintStyle.Render("click left or right to play again"))

	panelStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(1, 3).
		Align(lipgloss.Center)
	return panelStyle.Render(b.String())
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()
	return err
}

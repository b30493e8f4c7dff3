package tui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/botrun/internal/audio"
	"github.com/vovakirdan/botrun/internal/config"
	"github.com/vovakirdan/botrun/internal/core"
	"github.com/vovakirdan/botrun/internal/games/botrun"
	"github.com/vovakirdan/botrun/internal/leaderboard"
	"github.com/vovakirdan/botrun/internal/storage"
)

// Options configures a terminal session.
type Options struct {
	Config  config.BotRunConfig
	Runtime core.RuntimeConfig
	Name    string              // Prefilled player name, empty prompts for one
	Board   *leaderboard.Board  // May be nil
	Store   *storage.Store      // Run history, may be nil
	Sound   *audio.SoundManager // May be nil
	Logger  *log.Logger
}

// Model is the Bubble Tea model for one runner session.
type Model struct {
	game       *botrun.Game
	recorder   *Recorder
	sound      *audio.SoundManager
	screen     *core.Screen
	ticker     *core.Ticker
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	keyMapper  *KeyMapper
	nameInput  textinput.Model
	help       help.Model
	scoreboard *ScoreboardModel // Non-nil while the history view is open
	logger     *log.Logger
	quitting   bool
}

// NewModel creates a new Bubble Tea model on the start screen.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	recorder := NewRecorder(opts.Board, opts.Store, logger)
	game := botrun.New(opts.Config, botrun.WithRecorder(recorder), botrun.WithLogger(logger))
	game.Reset(cfg)
	game.SetName(opts.Name)

	ti := textinput.New()
	ti.Prompt = "Name: "
	ti.Placeholder = leaderboard.DefaultName
	ti.CharLimit = leaderboard.MaxNameLen
	ti.Width = leaderboard.MaxNameLen + 1
	if strings.TrimSpace(opts.Name) != "" {
		ti.SetValue(game.Name())
	} else {
		ti.Focus()
	}

	h := help.New()
	h.Width = cfg.ScreenW

	ticker := core.NewTicker(opts.Config.Clock.MaxDelta)
	logger.Debug("session ready", "screen", fmt.Sprintf("%dx%d", cfg.ScreenW, cfg.ScreenH),
		"tick_rate", cfg.TickRate, "max_delta", ticker.MaxDelta())

	return Model{
		game:       game,
		recorder:   recorder,
		sound:      opts.Sound,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		ticker:     ticker,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		nameInput:  ti,
		help:       h,
		logger:     logger,
	}
}

// Init starts the tick loop and, when prompting for a name, the cursor blink.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}
	if m.nameInput.Focused() {
		cmds = append(cmds, textinput.Blink)
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	// Cursor blink and similar
	if m.nameInput.Focused() {
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.scoreboard != nil {
		return m.updateScoreboard(msg)
	}

	mode := m.game.Mode()

	if mode == botrun.ModeStart && m.nameInput.Focused() {
		return m.handleNameKey(msg)
	}

	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	keys := m.keyMapper.Keys()
	if mode != botrun.ModePlaying {
		switch {
		case mode == botrun.ModeStart && key.Matches(msg, keys.Name):
			cmd := m.nameInput.Focus()
			return m, cmd
		case key.Matches(msg, keys.Scores):
			sb := NewScoreboardModel(m.recorder.Store(), m.config.ScreenW, m.config.ScreenH)
			sb.embedded = true
			m.scoreboard = &sb
			return m, nil
		}
	}

	if m.keyMapper.MapKeyToFrame(msg, mode, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleNameKey edits the player name. Enter confirms and starts the run.
func (m Model) handleNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyEnter:
		m.nameInput.Blur()
		m.game.SetName(m.nameInput.Value())
		m.inputFrame.Set(core.ActionRestart)
		return m, nil
	case tea.KeyEsc, tea.KeyTab:
		m.nameInput.Blur()
		m.game.SetName(m.nameInput.Value())
		return m, nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m Model) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	sb, ok := next.(ScoreboardModel)
	if !ok {
		m.scoreboard = nil
		return m, nil
	}
	switch {
	case sb.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case sb.IsGoingBack():
		m.scoreboard = nil
		return m, nil
	}
	m.scoreboard = &sb
	return m, cmd
}

// handleResize processes window resize events. A running session keeps
// its field; the next one adopts the new aspect.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width

	if m.scoreboard != nil {
		return m.updateScoreboard(msg)
	}
	return m, nil
}

// handleTick converts the tick timestamp to a delta and steps the game.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	dt, ok := m.ticker.Tick(timestampMs(time.Time(msg)))
	if !ok {
		return m, tickCmd(m.config.TickRate)
	}

	m.applyMetaActions()

	result := m.game.Step(dt, m.inputFrame)
	if m.sound != nil {
		m.sound.PlayAll(result.Events)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// applyMetaActions handles the actions that live outside the simulation.
func (m *Model) applyMetaActions() {
	if m.inputFrame.Has(core.ActionMute) && m.sound != nil {
		muted := m.sound.ToggleMute()
		m.logger.Debug("sound toggled", "muted", muted)
	}

	if m.inputFrame.Has(core.ActionClear) && m.game.Mode() != botrun.ModePlaying {
		if board := m.recorder.Board(); board != nil {
			//nolint:errcheck // Failure is logged by the board, memory is already empty
			board.Clear()
			m.logger.Info("high scores cleared")
		}
	}

	if m.inputFrame.Has(core.ActionRestart) && m.game.Mode() == botrun.ModeStart {
		m.game.SetName(m.nameInput.Value())
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	timestamp := time.Now().Format("20060102_150405")
	path, err := xdg.DataFile(fmt.Sprintf("botrun/screenshots/%s_%s.txt", m.game.ID(), timestamp))
	if err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.scoreboard != nil {
		return m.scoreboard.View()
	}

	if m.game.Mode() == botrun.ModeStart {
		return m.startView()
	}

	m.game.Render(m.screen)
	if m.game.Mode() == botrun.ModeGameOver {
		m.drawLeaderboard()
	}
	return RenderScreen(m.screen)
}

// startView shows the title, the name prompt and the top-3 table on the
// daytime sky.
func (m Model) startView() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	panelStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(1, 3)

	var b strings.Builder
	b.WriteString(titleStyle.Render("B O T R U N"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Jump the obstacles, grab the hearts."))
	b.WriteString("\n\n")
	b.WriteString(m.nameInput.View())
	b.WriteString("\n\n")
	b.WriteString("Top scores\n")
	for i, slot := range m.slots() {
		fmt.Fprintf(&b, "%d. %s\n", i+1, slot)
	}
	if m.sound != nil && m.sound.Muted() {
		b.WriteString(dimStyle.Render("(muted)"))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keyMapper.Keys().ForMode(botrun.ModeStart)))

	panel := panelStyle.Render(b.String())
	if m.config.ScreenW <= 0 || m.config.ScreenH <= 0 {
		return panel
	}

	sky := m.game.Snapshot().SkyHex
	return lipgloss.Place(m.config.ScreenW, m.config.ScreenH,
		lipgloss.Center, lipgloss.Center, panel,
		lipgloss.WithWhitespaceBackground(lipgloss.Color(sky)),
	)
}

// drawLeaderboard overlays the top-3 table under the game-over box.
func (m Model) drawLeaderboard() {
	lines := m.slots()
	title := "TOP 3"
	if rank := m.recorder.LastRank(); rank > 0 {
		title = fmt.Sprintf("NEW HIGH SCORE #%d", rank)
	}

	boxW := len([]rune(title))
	for _, l := range lines {
		boxW = core.Max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines) + 3
	boxX := (m.screen.Width() - boxW) / 2
	boxY := m.screen.Height()/2 + 3

	m.screen.DrawRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	m.screen.DrawBox(boxX, boxY, boxW, boxH, core.ColorGray)
	m.screen.DrawTextColored(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, core.ColorBrightYellow)
	for i, l := range lines {
		m.screen.DrawTextColored(boxX+2, boxY+2+i, l, core.ColorBrightWhite)
	}

	hint := "H: history  C: clear  M: mute  Q: quit"
	m.screen.DrawTextCentered(m.screen.Height()-1, hint, core.ColorBrightWhite)
}

func (m Model) slots() []string {
	if board := m.recorder.Board(); board != nil {
		return board.Slots()
	}
	return leaderboard.New(nil, nil).Slots()
}

// Game returns the underlying game.
func (m Model) Game() *botrun.Game {
	return m.game
}

// Run starts the Bubble Tea program for a local session.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}

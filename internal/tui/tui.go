// Package tui is an interactive Bubble Tea front end for watching a game.
package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/bulgarian-solitaire/internal/input"
	"github.com/lox/bulgarian-solitaire/internal/simulator"
	"github.com/lox/bulgarian-solitaire/solitaire"
)

// Phase is the stage the model is in.
type Phase int

const (
	PhaseInput Phase = iota // waiting for a starting configuration
	PhasePlay               // playing rounds
	PhaseDone               // final configuration reached
)

// Options configure a Model.
type Options struct {
	// Board to play. Nil asks the player for a starting configuration.
	Board *solitaire.Board

	// Delay between automatic rounds. Zero plays one round per key press.
	Delay time.Duration

	// MaxRounds stops play early. Zero is unlimited.
	MaxRounds int

	Logger *log.Logger
}

// tickMsg asks for the next automatic round. Ticks from an older
// generation are ignored.
type tickMsg struct {
	gen int
}

// Model is the Bubble Tea model for a single game.
type Model struct {
	board   *solitaire.Board
	logger  *log.Logger
	monitor simulator.Monitor

	history  viewport.Model
	input    textinput.Model
	gameLog  []string
	phase    Phase
	rounds   int
	auto     bool
	tickGen  int
	delay    time.Duration
	maxRound int
	inputErr string
	quitting bool

	width  int
	height int
}

// New creates a model. Play starts immediately when opts.Board is set.
func New(opts Options) *Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	vp := viewport.New(40, 10)

	ti := textinput.New()
	ti.Placeholder = fmt.Sprintf("piles summing to %d, e.g. 10 20 15", solitaire.CardTotal)
	ti.CharLimit = 4 * solitaire.CardTotal
	ti.Width = 60
	ti.Prompt = "> "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	ti.Focus()

	m := &Model{
		logger:   logger.WithPrefix("tui"),
		history:  vp,
		input:    ti,
		phase:    PhaseInput,
		delay:    opts.Delay,
		auto:     opts.Delay > 0,
		maxRound: opts.MaxRounds,
	}
	m.monitor = &historyMonitor{model: m}
	if opts.Board != nil {
		m.start(opts.Board)
	}
	return m
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	if m.phase == PhaseInput {
		return textinput.Blink
	}
	return m.tick()
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.logger.Debug("Updating dimensions", "width", m.width, "height", m.height)
		return m, nil

	case tickMsg:
		if m.phase != PhasePlay || !m.auto || msg.gen != m.tickGen {
			return m, nil
		}
		m.step()
		return m, m.tick()

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyEsc {
			m.quitting = true
			return m, tea.Quit
		}
		switch m.phase {
		case PhaseInput:
			return m.updateInput(msg)
		case PhasePlay:
			return m.updatePlay(msg)
		case PhaseDone:
			switch msg.String() {
			case "q", "enter":
				m.quitting = true
				return m, tea.Quit
			}
		}
	}

	var cmd tea.Cmd
	m.history, cmd = m.history.Update(msg)
	return m, cmd
}

func (m *Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		piles, err := input.Parse(m.input.Value())
		if err != nil {
			m.inputErr = input.Message
			m.logger.Debug("Rejected configuration", "input", m.input.Value(), "error", err)
			return m, nil
		}
		m.inputErr = ""
		m.input.Blur()
		m.start(solitaire.NewBoard(piles))
		return m, m.tick()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) updatePlay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", " ", "space", "n":
		m.step()
		return m, nil
	case "a":
		if m.delay <= 0 {
			return m, nil
		}
		m.auto = !m.auto
		m.tickGen++
		return m, m.tick()
	case "q":
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.history, cmd = m.history.Update(msg)
	return m, cmd
}

func (m *Model) start(board *solitaire.Board) {
	m.board = board
	m.phase = PhasePlay
	m.monitor.OnStart(board.Piles())
	if board.IsDone() {
		m.finish()
	}
}

// step plays one round.
func (m *Model) step() {
	if m.phase != PhasePlay {
		return
	}
	if m.maxRound > 0 && m.rounds >= m.maxRound {
		m.addLog(ErrorStyle.Render(fmt.Sprintf("Stopped after %d rounds", m.rounds)))
		m.phase = PhaseDone
		return
	}

	m.board.PlayRound()
	m.rounds++
	m.monitor.OnRound(m.rounds, m.board.Piles())
	if m.board.IsDone() {
		m.finish()
	}
}

func (m *Model) finish() {
	m.phase = PhaseDone
	m.monitor.OnComplete(m.rounds)
	m.logger.Info("Game finished", "rounds", m.rounds)
}

func (m *Model) tick() tea.Cmd {
	if !m.auto || m.phase != PhasePlay {
		return nil
	}
	gen := m.tickGen
	return tea.Tick(m.delay, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

func (m *Model) addLog(entry string) {
	m.gameLog = append(m.gameLog, entry)
	m.history.SetContent(strings.Join(m.gameLog, "\n"))
	m.history.GotoBottom()
}

func (m *Model) resize() {
	w := m.width - 4
	h := m.height - solitaire.FinalPiles - 10
	m.history.Width = max(w, 1)
	m.history.Height = max(h, 3)
}

// historyMonitor mirrors game events into the scrolling history pane.
type historyMonitor struct {
	model *Model
}

func (h *historyMonitor) OnStart(initial []int) {
	h.model.addLog("Initial configuration: " + simulator.FormatPiles(initial))
}

func (h *historyMonitor) OnRound(round int, piles []int) {
	h.model.addLog(fmt.Sprintf("[%d] current configuration: %s", round, simulator.FormatPiles(piles)))
}

func (h *historyMonitor) OnComplete(int) {
	h.model.addLog(SuccessStyle.Render("Done!"))
}

// View renders the model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render(fmt.Sprintf("Bulgarian Solitaire · %d cards", solitaire.CardTotal)))
	b.WriteString("\n\n")

	if m.phase == PhaseInput {
		b.WriteString(fmt.Sprintf("Enter the initial configuration: a space-separated list of positive integers summing to %d.\n\n", solitaire.CardTotal))
		b.WriteString(m.input.View())
		b.WriteString("\n")
		if m.inputErr != "" {
			b.WriteString(ErrorStyle.Render(m.inputErr))
			b.WriteString("\n")
		}
		b.WriteString(InfoStyle.Render("Enter to start • Esc to quit"))
		return b.String()
	}

	b.WriteString(RenderPiles(m.board.Piles(), m.rounds > 0))
	b.WriteString("\n")
	b.WriteString(PaneStyle.Render(m.history.View()))
	b.WriteString("\n")
	b.WriteString(m.status())
	return b.String()
}

func (m *Model) status() string {
	round := fmt.Sprintf("Round %d", m.rounds)
	switch {
	case m.phase == PhaseDone && m.board.IsDone():
		return SuccessStyle.Render(fmt.Sprintf("Done! Final configuration reached after %d rounds", m.rounds)) +
			"  " + InfoStyle.Render("q to quit")
	case m.phase == PhaseDone:
		return ErrorStyle.Render(round+" • round limit reached") + "  " + InfoStyle.Render("q to quit")
	case m.auto:
		return round + "  " + InfoStyle.Render("a to pause • q to quit")
	default:
		help := "Enter for next round • q to quit"
		if m.delay > 0 {
			help = "Enter for next round • a to autoplay • q to quit"
		}
		return round + "  " + InfoStyle.Render(help)
	}
}

// RenderPiles draws each pile as a bar of cards. The last pile is
// highlighted as the one just formed when highlightNew is set.
func RenderPiles(piles []int, highlightNew bool) string {
	var b strings.Builder
	for i, p := range piles {
		style := PileStyle
		if highlightNew && i == len(piles)-1 {
			style = NewPileStyle
		}
		b.WriteString(fmt.Sprintf("%3d ", p))
		b.WriteString(style.Render(strings.Repeat("▇", p)))
		b.WriteString("\n")
	}
	return b.String()
}

// Phase returns the current phase.
func (m *Model) Phase() Phase {
	return m.phase
}

// Rounds returns the number of rounds played.
func (m *Model) Rounds() int {
	return m.rounds
}

// Board returns the board being played, or nil before one is entered.
func (m *Model) Board() *solitaire.Board {
	return m.board
}

// History returns the configuration lines shown so far.
func (m *Model) History() []string {
	return m.gameLog
}

// Package tui implements the interactive terminal UI for local play against
// the built-in opponent. The model is a thin caller around the game engine:
// every submitted line runs validate -> resolve -> apply and the result is
// appended to the log viewport.
package tui

import (
	"fmt"
	rand "math/rand/v2"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/rpsplus/internal/game"
)

// Model is the Bubble Tea model for a local game.
type Model struct {
	state  *game.GameState
	rng    *rand.Rand
	logger *log.Logger

	logViewport viewport.Model
	moveInput   textinput.Model

	gameLog  []string
	quitting bool

	width       int
	height      int
	initialized bool
}

// NewModel creates a model for one game session using rng for the
// opponent's moves.
func NewModel(rng *rand.Rand, logger *log.Logger) *Model {
	vp := viewport.New(10, 5)
	vp.SetContent("")

	ti := textinput.New()
	ti.Placeholder = "rock, paper, scissors or bomb"
	ti.Focus()
	ti.CharLimit = 32
	ti.Width = 40
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA"))
	ti.Prompt = "> "

	m := &Model{
		state:       game.NewGameState(),
		rng:         rng,
		logger:      logger.WithPrefix("tui"),
		logViewport: vp,
		moveInput:   ti,
		gameLog:     []string{},
	}
	m.appendLog(InfoStyle.Render(fmt.Sprintf(
		"Best of %d rounds. Bomb beats everything but can be played once.", game.TotalRounds)))
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logViewport.Width = msg.Width
		m.logViewport.Height = max(msg.Height-5, 3)
		m.initialized = true
		m.refreshViewport()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			if m.state.GameOver {
				m.quitting = true
				return m, tea.Quit
			}
			input := m.moveInput.Value()
			m.moveInput.Reset()
			if strings.TrimSpace(input) != "" {
				m.playRound(input)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.state.GameOver {
		m.logViewport, cmd = m.logViewport.Update(msg)
	} else {
		m.moveInput, cmd = m.moveInput.Update(msg)
	}
	return m, cmd
}

// playRound runs the engine caller contract for one submitted input.
func (m *Model) playRound(input string) {
	round := m.state.Round

	res := game.Validate(input, m.state)
	if !res.Valid {
		game.Apply(m.state, game.MoveInvalid, game.MoveNone, game.OutcomeInvalid)
		m.appendLog(WarningStyle.Render(fmt.Sprintf("Round %d wasted: %s", round, res.Reason)))
	} else {
		outcome := game.Resolve(res.Move, m.state, m.rng)
		game.Apply(m.state, res.Move, outcome.OpponentMove, outcome.Winner)

		line := fmt.Sprintf("Round %d: you played %s, bot played %s -> %s",
			round, res.Move, outcome.OpponentMove, strings.ToUpper(string(outcome.Winner)))
		switch outcome.Winner {
		case game.OutcomeUser:
			m.appendLog(SuccessStyle.Render(line))
		case game.OutcomeBot:
			m.appendLog(ErrorStyle.Render(line))
		default:
			m.appendLog(GameLogStyle.Render(line))
		}
	}

	if m.state.GameOver {
		m.appendLog("")
		for _, l := range strings.Split(strings.TrimRight(game.Summarize(m.state), "\n"), "\n") {
			m.appendLog(GameLogStyle.Render(l))
		}
		m.appendLog(InfoStyle.Render("Press enter to exit."))
	}
}

func (m *Model) appendLog(line string) {
	m.gameLog = append(m.gameLog, line)
	m.refreshViewport()
}

func (m *Model) refreshViewport() {
	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))
	m.logViewport.GotoBottom()
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	header := HeaderStyle.Render(" ROCK-PAPER-SCISSORS-PLUS ")
	score := ScoreStyle.Render(fmt.Sprintf("Round %d/%d  You %d - %d Bot  Draws %d",
		min(m.state.Round, game.TotalRounds), game.TotalRounds,
		m.state.UserScore, m.state.BotScore, m.state.Draws))

	var input string
	if !m.state.GameOver {
		input = m.moveInput.View()
	}

	return fmt.Sprintf("%s\n%s\n\n%s\n\n%s", header, score, m.logViewport.View(), input)
}

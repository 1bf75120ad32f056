package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/space-garbage/internal/config"
	"github.com/vovakirdan/space-garbage/internal/registry"
	"github.com/vovakirdan/space-garbage/internal/storage"
)

// boardRuns is how many runs each mode tab loads.
const boardRuns = 100

// Fixed column widths; the era column takes what is left.
const (
	rankWidth   = 4
	shotWidth   = 6
	yearWidth   = 6
	playedWidth = 12
	minEraWidth = 12
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Next key.Binding
	Prev key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp implements help.KeyMap.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Prev, k.Back, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Next, k.Prev}, {k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll")),
		Next: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next mode")),
		Prev: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab/←", "prev mode")),
		Back: key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// modeBoard holds the recorded runs of one mode, best first.
type modeBoard struct {
	info     registry.GameInfo
	runs     []storage.ScoreEntry
	best     int // Most garbage shot in one run
	furthest int // Latest year any run reached
	err      error
}

// loadModeBoard reads the runs of one mode. The store already ranks ties on
// the year reached.
func loadModeBoard(store *storage.Store, info registry.GameInfo) modeBoard {
	b := modeBoard{info: info}
	if store == nil {
		return b
	}
	b.runs, b.err = store.TopScores(info.ID, boardRuns)
	for _, r := range b.runs {
		b.best = max(b.best, r.Score)
		b.furthest = max(b.furthest, r.Year)
	}
	return b
}

// ScoreboardModel shows one tab per mode: a summary line with the best run
// and the furthest era reached, over a table of runs.
type ScoreboardModel struct {
	boards   []modeBoard
	cursor   int
	schedule *config.Schedule
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	width    int
	height   int

	quitting  bool
	goingBack bool
}

// NewScoreboardModel loads every registered mode's runs from store.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	cfg, err := config.LoadSpace("")
	if err != nil {
		cfg = config.DefaultSpaceConfig()
	}

	m := ScoreboardModel{
		schedule: config.NewSchedule(cfg.Timeline),
		help:     help.New(),
		keys:     DefaultScoreboardKeyMap(),
		width:    width,
		height:   height,
	}
	for _, info := range registry.List() {
		m.boards = append(m.boards, loadModeBoard(store, info))
	}
	m.table = m.newTable()
	m.showBoard()
	return m
}

// eraWidth is what remains of the row after the fixed columns, the box
// border and the table's cell padding.
func (m ScoreboardModel) eraWidth() int {
	w := m.width - 4 - (rankWidth + shotWidth + yearWidth + playedWidth) - 2*5
	return max(w, minEraWidth)
}

func (m ScoreboardModel) newTable() table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: rankWidth},
			{Title: "Shot", Width: shotWidth},
			{Title: "Year", Width: yearWidth},
			{Title: "Era", Width: m.eraWidth()},
			{Title: "Played", Width: playedWidth},
		}),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// showBoard fills the table with the selected mode's runs.
func (m *ScoreboardModel) showBoard() {
	var rows []table.Row
	if b := m.current(); b != nil {
		rows = make([]table.Row, len(b.runs))
		for i, r := range b.runs {
			rows[i] = table.Row{
				strconv.Itoa(i + 1),
				strconv.Itoa(r.Score),
				strconv.Itoa(r.Year),
				m.schedule.Era(r.Year),
				r.CreatedAt.Format("Jan 02 2006"),
			}
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) current() *modeBoard {
	if len(m.boards) == 0 {
		return nil
	}
	return &m.boards[m.cursor]
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.step(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.step(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.showBoard()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// step moves the mode cursor by delta, wrapping around.
func (m *ScoreboardModel) step(delta int) {
	n := len(m.boards)
	if n == 0 {
		return
	}
	m.cursor = ((m.cursor+delta)%n + n) % n
	m.showBoard()
}

// View implements tea.Model.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString(titleStyle.Render(centerText("SPACE GARBAGE RECORDS", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.tabs(), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.summary(), m.width))
	b.WriteString("\n")
	b.WriteString(boxStyle.Render(m.body()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) tabs() string {
	idle := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	active := idle.Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))

	tabs := make([]string, len(m.boards))
	for i, board := range m.boards {
		if i == m.cursor {
			tabs[i] = active.Render(board.info.Title)
		} else {
			tabs[i] = idle.Render(board.info.Title)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// summary describes the selected mode's records in one line.
func (m ScoreboardModel) summary() string {
	board := m.current()
	switch {
	case board == nil:
		return "No modes registered."
	case board.err != nil:
		return fmt.Sprintf("Could not read runs: %v", board.err)
	case len(board.runs) == 0:
		return ""
	}

	line := fmt.Sprintf("best %d   furthest %d", board.best, board.furthest)
	if era := m.schedule.Era(board.furthest); era != "" {
		line += " - " + era
	}
	return line
}

func (m ScoreboardModel) body() string {
	if board := m.current(); board == nil || len(board.runs) == 0 {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 4).
			Render("No runs recorded yet.\nSurvive a few decades to set a record!")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}

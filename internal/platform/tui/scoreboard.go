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

	"github.com/vovakirdan/gravity-snake/internal/registry"
	"github.com/vovakirdan/gravity-snake/internal/storage"
)

const (
	maxScores   = 100 // Runs loaded per difficulty
	detailWidth = 62  // Below this the Length, Walls and Cause columns are hidden
)

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	boardTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1)
	boardActiveTab  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("10")).Padding(0, 1)
	boardFrameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardEmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true).Padding(1, 2)
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Scroll key.Binding
	Next   key.Binding
	Prev   key.Binding
	Clear  key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Prev, k.Next, k.Clear, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Scroll: key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑/↓", "scroll")),
		Next:   key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→", "harder")),
		Prev:   key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←", "easier")),
		Clear:  key.NewBinding(key.WithKeys("X"), key.WithHelp("X", "clear")),
		Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel shows the best runs of one difficulty at a time, with a
// one-line summary of that difficulty's stats above the table.
type ScoreboardModel struct {
	games      []registry.GameInfo // One entry per difficulty
	gameCursor int
	store      *storage.Store
	runs       []storage.Run
	stats      storage.Stats
	table      table.Model
	help       help.Model
	keys       ScoreboardKeyMap
	width      int
	height     int
	quitting   bool
	goingBack  bool
}

// NewScoreboardModel creates a new scoreboard model opened on the given
// difficulty, or the first one when initial is empty or unknown.
func NewScoreboardModel(store *storage.Store, initial string, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	for i, g := range m.games {
		if g.ID == initial {
			m.gameCursor = i
		}
	}
	m.help.Width = width
	m.reload()
	return m
}

// current returns the ID of the difficulty on display.
func (m ScoreboardModel) current() string {
	if len(m.games) == 0 {
		return ""
	}
	return m.games[m.gameCursor].ID
}

// detailed reports whether the terminal is wide enough for every column.
func (m ScoreboardModel) detailed() bool {
	return m.width-4 >= detailWidth
}

// reload fetches runs and stats for the current difficulty and rebuilds
// the table to fit the terminal.
func (m *ScoreboardModel) reload() {
	m.runs, m.stats = nil, storage.Stats{}
	if id := m.current(); id != "" && m.store != nil {
		if runs, err := m.store.TopScores(id, maxScores); err == nil {
			m.runs = runs
		}
		if st, err := m.store.Stats(id); err == nil && st != nil {
			m.stats = *st
		}
	}

	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 6},
		{Title: "Length", Width: 7},
		{Title: "Walls", Width: 6},
		{Title: "Cause", Width: 15},
		{Title: "Date", Width: 13},
	}
	if !m.detailed() {
		columns = []table.Column{columns[0], columns[1], columns[5]}
	}

	rows := make([]table.Row, 0, len(m.runs))
	for i, r := range m.runs {
		date := r.CreatedAt.Format("Jan 02 15:04")
		if !m.detailed() {
			rows = append(rows, table.Row{fmt.Sprintf("#%d", i+1), strconv.Itoa(r.Score), date})
			continue
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("#%d", i+1),
			strconv.Itoa(r.Score),
			strconv.Itoa(r.Length),
			strconv.Itoa(r.Walls),
			r.DeathCause,
			date,
		})
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).Bold(true)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("10"))

	m.table = table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-10)),
		table.WithStyles(styles),
	)
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
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

		case key.Matches(msg, m.keys.Clear):
			if id := m.current(); id != "" && m.store != nil {
				//nolint:errcheck // Reload shows whatever survived
				m.store.ClearScores(id)
				m.reload()
			}
			return m, nil

		case key.Matches(msg, m.keys.Next), key.Matches(msg, m.keys.Prev):
			if n := len(m.games); n > 0 {
				step := 1
				if key.Matches(msg, m.keys.Prev) {
					step = n - 1
				}
				m.gameCursor = (m.gameCursor + step) % n
				m.reload()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(boardTitleStyle.Render("H I G H   S C O R E S"), m.width))
	b.WriteString("\n\n")

	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.gameCursor {
			tabs[i] = boardActiveTab.Render(g.Title)
		} else {
			tabs[i] = boardTabStyle.Render(g.Title)
		}
	}
	strip := strings.Join(tabs, "")
	if lipgloss.Width(strip) > m.width && len(m.games) > 0 {
		strip = boardActiveTab.Render("< " + m.games[m.gameCursor].Title + " >")
	}
	b.WriteString(centerText(strip, m.width))
	b.WriteString("\n\n")

	b.WriteString(centerText(menuDimStyle.Render(m.summary()), m.width))
	b.WriteString("\n")

	body := boardEmptyStyle.Render("No runs recorded yet.")
	if len(m.runs) > 0 {
		body = m.table.View()
	}
	b.WriteString(centerText(boardFrameStyle.Render(body), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))

	return b.String()
}

// summary describes the current difficulty's aggregate stats.
func (m ScoreboardModel) summary() string {
	if m.stats.RunsCount == 0 {
		return "no runs yet"
	}
	return fmt.Sprintf("%d runs  best %d  avg %.1f  longest %d",
		m.stats.RunsCount, m.stats.HighScore, m.stats.AvgScore, m.stats.Longest)
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen opened on initial.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, initial string, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, initial, width, height), tea.WithAltScreen())

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

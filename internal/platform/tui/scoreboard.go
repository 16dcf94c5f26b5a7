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

	"github.com/vovakirdan/trapfall/internal/registry"
	"github.com/vovakirdan/trapfall/internal/storage"
)

const (
	maxRuns      = 100 // Runs loaded per mode
	boardChrome  = 12  // Rows taken by title, tabs, frame, footer and help
	playerColMin = 10
	playerColMax = 20
)

// boardKeys are the run board bindings. It implements help.KeyMap.
type boardKeys struct {
	Up   key.Binding
	Down key.Binding
	Next key.Binding
	Prev key.Binding
	Back key.Binding
	Quit key.Binding
}

func (k boardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Prev, k.Back, k.Quit}
}

func (k boardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Next, k.Prev}, {k.Back, k.Quit}}
}

func newBoardKeys() boardKeys {
	return boardKeys{
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Next: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next mode")),
		Prev: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab/←", "prev mode")),
		Back: key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boardActiveTab  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).Padding(0, 1)
	boardFrameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardEmptyStyle = boardDimStyle.Italic(true).Padding(1, 2)
)

// ScoreboardModel shows the run board one mode at a time.
type ScoreboardModel struct {
	modes     []registry.GameInfo
	current   int
	store     *storage.Store
	runs      []storage.Run
	stats     *storage.ModeStats
	table     table.Model
	help      help.Model
	keys      boardKeys
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a run board sized to the terminal.
// store may be nil, in which case every mode shows as empty.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		modes:  registry.List(),
		store:  store,
		keys:   newBoardKeys(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.table = newRunTable(width, height)
	m.load()
	return m
}

// newRunTable builds the Rank/Player/Level/Attempts/Date table. The player
// column takes whatever width is left over.
func newRunTable(width, height int) table.Model {
	player := min(max(width-50, playerColMin), playerColMax)
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 5},
			{Title: "Player", Width: player},
			{Title: "Level", Width: 6},
			{Title: "Attempts", Width: 9},
			{Title: "Date", Width: 13},
		}),
		table.WithFocused(true),
		table.WithHeight(max(height-boardChrome, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).BorderBottom(true).Bold(true)
	s.Selected = s.Selected.Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).Bold(false)
	t.SetStyles(s)
	return t
}

// load reads the selected mode's runs and stats into the table.
// Storage errors show as an empty board.
func (m *ScoreboardModel) load() {
	m.runs, m.stats = nil, nil
	if m.store != nil && len(m.modes) > 0 {
		mode := m.modes[m.current].ID
		if runs, err := m.store.TopRuns(mode, maxRuns); err == nil {
			m.runs = runs
		}
		if stats, err := m.store.ModeStats(mode); err == nil {
			m.stats = stats
		}
	}

	rows := make([]table.Row, 0, len(m.runs))
	for i, r := range m.runs {
		player := r.Player
		if player == "" {
			player = "-"
		}
		rows = append(rows, table.Row{
			"#" + strconv.Itoa(i+1),
			player,
			strconv.Itoa(r.Level),
			strconv.Itoa(r.Attempts),
			r.CreatedAt.Format("Jan 02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// cycle moves the mode selection by delta, wrapping around.
func (m *ScoreboardModel) cycle(delta int) {
	if len(m.modes) == 0 {
		return
	}
	m.current = (m.current + delta + len(m.modes)) % len(m.modes)
	m.load()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the run board.
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
			m.cycle(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.cycle(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = newRunTable(msg.Width, msg.Height)
		m.load()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// Title returns the heading for the selected mode.
func (m ScoreboardModel) Title() string {
	if len(m.modes) == 0 {
		return "RUN BOARD"
	}
	return "RUN BOARD - " + m.modes[m.current].Title
}

// View renders the run board.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	body := boardEmptyStyle.Render("No runs recorded yet.\nFall further to get on the board!")
	if len(m.runs) > 0 {
		body = m.table.View()
	}

	sections := []string{
		centerStyled(boardTitleStyle, m.Title(), m.width),
		centerText(m.tabs(), m.width),
		centerText(boardFrameStyle.Render(body), m.width),
		centerStyled(boardDimStyle, m.footer(), m.width),
		m.help.View(m.keys),
	}
	return "\n" + strings.Join(sections, "\n\n")
}

// tabs renders the mode selector, or "< title >" when the tabs do not fit.
func (m ScoreboardModel) tabs() string {
	if len(m.modes) == 0 {
		return ""
	}
	parts := make([]string, len(m.modes))
	for i, g := range m.modes {
		if i == m.current {
			parts[i] = boardActiveTab.Render(g.Title)
		} else {
			parts[i] = boardTabStyle.Render(g.Title)
		}
	}
	line := strings.Join(parts, " ")
	if lipgloss.Width(line) > m.width-4 {
		return fmt.Sprintf("< %s >", m.modes[m.current].Title)
	}
	return line
}

// footer summarizes the selected mode.
func (m ScoreboardModel) footer() string {
	if m.stats == nil || m.stats.Runs == 0 {
		return ""
	}
	return fmt.Sprintf("%d runs · best level %d · %.1f attempts on average",
		m.stats.Runs, m.stats.BestLevel, m.stats.AvgAttempts)
}

// IsGoingBack reports whether the user asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the user asked to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the run board until the user leaves it.
// goBack is true when the user wants the menu again.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}

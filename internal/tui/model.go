// Package tui is a Bubble Tea program that plays a reference board
// against the solver live: every reveal is forwarded to the engine,
// and the tiles in its suggestion set are highlighted as the
// recommended next move.
package tui

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/herbhall/minesolve/internal/config"
	"github.com/herbhall/minesolve/internal/grid"
	"github.com/herbhall/minesolve/internal/refboard"
	"github.com/herbhall/minesolve/internal/stats"
	minesweeper "github.com/herbhall/minesolve"
)

type phase int

const (
	phaseDifficulty phase = iota
	phasePlaying
	phaseGameOver
)

type difficulty int

const (
	beginner difficulty = iota
	intermediate
	expert
	custom
)

var difficultyConfigs = map[difficulty]struct{ width, height, mines int }{
	beginner:     {9, 9, 10},
	intermediate: {16, 16, 40},
	expert:       {30, 16, 99},
}

type tickMsg struct{}

func tickCmd(ms int) tea.Cmd {
	if ms <= 0 {
		return nil
	}
	return tea.Tick(time.Duration(ms)*time.Millisecond, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

// Model is the Bubble Tea model for the solver visualizer.
type Model struct {
	cfg config.Config
	stt *stats.Store

	ref        *refboard.Board
	board      *minesweeper.Board
	rng        *rand.Rand
	sizeKey    string
	customSize struct{ width, height, mines int }

	suggestion []tileXY
	lost       bool

	cursorRow, cursorCol int
	width, height        int
	done                 bool
	phase                phase
	diff                 difficulty
	autoPlaying          bool
}

type tileXY struct{ x, y int }

// New creates a fresh visualizer model at the difficulty selection
// screen, using cfg's defaults and persisting run outcomes to stt.
func New(cfg config.Config, stt *stats.Store) Model {
	return Model{phase: phaseDifficulty, cfg: cfg, stt: stt}
}

// NewWithSize creates a visualizer model that skips the difficulty
// screen and starts playing a width x height board with mines mines
// immediately, seeded deterministically. Used by `minesolve play` when
// the caller passes explicit board-size flags.
func NewWithSize(cfg config.Config, stt *stats.Store, width, height, mines int, seed uint64) Model {
	m := Model{cfg: cfg, stt: stt}
	m.customSize.width, m.customSize.height, m.customSize.mines = width, height, mines
	m.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b9))
	next, _ := m.startGame(custom)
	return next.(Model)
}

// Init returns nil; no initial command needed.
func (m Model) Init() tea.Cmd {
	return nil
}

// Done returns true when the player wants to exit.
func (m Model) Done() bool {
	return m.done
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		if m.phase == phasePlaying && m.autoPlaying {
			return m.playSuggestion()
		}
		return m, nil

	case tea.KeyMsg:
		key := msg.String()
		if key == "ctrl+c" {
			return m, tea.Quit
		}
		var next tea.Model = m
		var cmd tea.Cmd
		switch m.phase {
		case phaseDifficulty:
			next, cmd = m.updateDifficulty(key)
		case phasePlaying:
			next, cmd = m.updatePlaying(key)
		case phaseGameOver:
			next, cmd = m.updateGameOver(key)
		}
		if nm, ok := next.(Model); ok && nm.done {
			return nm, tea.Quit
		}
		return next, cmd
	}
	return m, nil
}

func (m Model) updateDifficulty(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "1":
		return m.startGame(beginner)
	case "2":
		return m.startGame(intermediate)
	case "3":
		return m.startGame(expert)
	case "q", "esc":
		m.done = true
	}
	return m, nil
}

func (m Model) startGame(d difficulty) (tea.Model, tea.Cmd) {
	cfg := difficultyConfigs[d]
	if d == custom {
		cfg.width, cfg.height, cfg.mines = m.customSize.width, m.customSize.height, m.customSize.mines
	}
	m.diff = d
	m.sizeKey = fmt.Sprintf("%dx%dx%d", cfg.width, cfg.height, cfg.mines)
	if m.rng == nil {
		m.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	m.ref = refboard.New(cfg.width, cfg.height, cfg.mines, m.rng)
	m.board = minesweeper.NewBoardWithRand(cfg.width, cfg.height, cfg.mines, m.rng)
	m.phase = phasePlaying
	m.cursorRow, m.cursorCol = 0, 0
	m.suggestion = nil
	m.lost = false
	m.autoPlaying = false
	return m, nil
}

func (m Model) updatePlaying(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "up", "k":
		if m.cursorRow > 0 {
			m.cursorRow--
		}
	case "down", "j":
		if m.cursorRow < m.ref.Height()-1 {
			m.cursorRow++
		}
	case "left", "h":
		if m.cursorCol > 0 {
			m.cursorCol--
		}
	case "right", "l":
		if m.cursorCol < m.ref.Width()-1 {
			m.cursorCol++
		}
	case "enter", " ":
		return m.clickAt(m.cursorCol, m.cursorRow)
	case "a":
		if m.cfg.AutoPlayTickMs() == 0 {
			return m.playSuggestion()
		}
		m.autoPlaying = !m.autoPlaying
		if m.autoPlaying {
			return m, tickCmd(m.cfg.AutoPlayTickMs())
		}
	case "n":
		return m.startGame(m.diff)
	case "q", "esc":
		m.done = true
	}
	return m, nil
}

func (m Model) updateGameOver(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "n":
		return m.startGame(m.diff)
	case "d":
		m.phase = phaseDifficulty
	case "q", "esc":
		m.done = true
	}
	return m, nil
}

// playSuggestion reveals a uniformly random tile from the solver's
// suggestion set, or a uniformly random hidden tile if the solver has
// no suggestion.
func (m Model) playSuggestion() (tea.Model, tea.Cmd) {
	if m.phase != phasePlaying {
		return m, nil
	}
	var target tileXY
	if len(m.suggestion) > 0 {
		target = m.suggestion[m.rng.IntN(len(m.suggestion))]
	} else {
		target = m.randomHiddenTile()
	}
	next, cmd := m.clickAt(target.x, target.y)
	nm := next.(Model)
	if nm.phase == phasePlaying && nm.autoPlaying {
		return nm, tea.Batch(cmd, tickCmd(nm.cfg.AutoPlayTickMs()))
	}
	return nm, cmd
}

func (m Model) randomHiddenTile() tileXY {
	var hidden []tileXY
	for _, t := range m.board.Tiles() {
		if !t.Revealed() {
			hidden = append(hidden, tileXY{t.X, t.Y})
		}
	}
	if len(hidden) == 0 {
		return tileXY{}
	}
	return hidden[m.rng.IntN(len(hidden))]
}

func (m Model) clickAt(x, y int) (tea.Model, tea.Cmd) {
	outcome, reveals := m.ref.Click(x, y)
	switch outcome {
	case refboard.OutOfBounds, refboard.AlreadyRevealed:
		return m, nil
	case refboard.Mine:
		m.lost = true
		m.phase = phaseGameOver
		m.autoPlaying = false
		m.stt.RecordMineHit(m.sizeKey)
		return m, nil
	}

	pairs := make([]minesweeper.Pair, len(reveals))
	for i, r := range reveals {
		pairs[i] = minesweeper.Pair{X: r.X, Y: r.Y, Number: r.Number}
	}
	suggested := m.board.Reveal(pairs)
	m.suggestion = make([]tileXY, len(suggested))
	for i, t := range suggested {
		m.suggestion[i] = tileXY{t.X, t.Y}
	}

	if m.ref.Solved() {
		m.phase = phaseGameOver
		m.autoPlaying = false
		m.stt.RecordClean(m.sizeKey)
	}
	return m, nil
}

// --- View ---

func (m Model) View() string {
	switch m.phase {
	case phaseDifficulty:
		return m.viewDifficulty()
	case phasePlaying, phaseGameOver:
		return m.viewGame()
	}
	return ""
}

func (m Model) viewDifficulty() string {
	sections := []string{
		titleStyle.Render("M I N E S O L V E"),
		"",
		headerStyle.Render("Select Difficulty"),
		"",
		optionStyle.Render("  [1]  Beginner      9 x 9    10 mines"),
		optionStyle.Render("  [2]  Intermediate  16 x 16  40 mines"),
		optionStyle.Render("  [3]  Expert        30 x 16  99 mines"),
		"",
		footerStyle.Render("Q Quit"),
	}
	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) viewGame() string {
	if m.ref == nil {
		return ""
	}
	var sections []string

	diffNames := map[difficulty]string{beginner: "Beginner", intermediate: "Intermediate", expert: "Expert"}
	sections = append(sections, titleStyle.Render(fmt.Sprintf("Minesolve - %s", diffNames[m.diff])), "")

	status := statusStyle.Render(fmt.Sprintf("Mines: %d  Suggestions: %d  Auto: %v", m.ref.TotalMines(), len(m.suggestion), m.autoPlaying))
	sections = append(sections, status, "", m.renderGrid(), "")

	if m.phase == phaseGameOver {
		if m.lost {
			sections = append(sections, loseStyle.Render("GAME OVER - Mine hit!"))
		} else {
			sections = append(sections, winStyle.Render("SOLVED!"))
		}
		sections = append(sections, "")
	}

	footer := "Arrows Move | Enter Reveal | A Auto-play | N New | Q Quit"
	if m.phase == phaseGameOver {
		footer = "N New Game | D Difficulty | Q Quit"
	}
	sections = append(sections, footerStyle.Render(footer))

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) renderGrid() string {
	suggested := make(map[tileXY]bool, len(m.suggestion))
	for _, s := range m.suggestion {
		suggested[s] = true
	}

	var rows []string
	for y := 0; y < m.ref.Height(); y++ {
		var cells []string
		for x := 0; x < m.ref.Width(); x++ {
			tile := m.board.TileAt(x, y)
			isCursor := y == m.cursorRow && x == m.cursorCol
			isSuggested := suggested[tileXY{x, y}]
			isMine := m.lost && m.ref.MineAt(x, y)

			text := renderCell(tile, isMine)
			style := cellStyle(tile, isCursor, isSuggested)
			cells = append(cells, style.Render(text))
		}
		rows = append(rows, strings.Join(cells, ""))
	}
	return strings.Join(rows, "\n")
}

func renderCell(t *grid.Tile, isMine bool) string {
	if isMine {
		return "* "
	}
	if !t.Revealed() {
		return "##"
	}
	if t.Number == 0 {
		return "  "
	}
	return fmt.Sprintf("%d ", t.Number)
}

func cellStyle(t *grid.Tile, isCursor, isSuggested bool) lipgloss.Style {
	base := lipgloss.NewStyle().Width(2).Foreground(cellForeground(t))
	if isSuggested {
		base = base.Background(lipgloss.Color("#004400"))
	}
	if isCursor {
		base = base.Bold(true).Background(lipgloss.Color("#444444"))
	}
	return base
}

func cellForeground(t *grid.Tile) lipgloss.Color {
	if !t.Revealed() {
		return lipgloss.Color("#808080")
	}
	return numberColor(t.Number)
}

func numberColor(n int) lipgloss.Color {
	switch n {
	case 1:
		return lipgloss.Color("#0000FF")
	case 2:
		return lipgloss.Color("#008200")
	case 3:
		return lipgloss.Color("#FF0000")
	case 4:
		return lipgloss.Color("#000084")
	case 5:
		return lipgloss.Color("#840000")
	case 6:
		return lipgloss.Color("#008284")
	case 7:
		return lipgloss.Color("#840084")
	case 8:
		return lipgloss.Color("#808080")
	default:
		return lipgloss.Color("#FFFFFF")
	}
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Underline(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242"))

	optionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00E632"))

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	winStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00E632"))

	loseStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF0000"))
)

package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordsearch/internal/catalog"
	"github.com/robalobadob/wordsearch/internal/game"
	"github.com/robalobadob/wordsearch/internal/grid"
)

type screen int

const (
	screenCategories screen = iota
	screenLevels
	screenBoard
)

// Board geometry in terminal cells. Each letter occupies cellWidth columns.
const (
	boardTop  = 2
	boardLeft = 2
	cellWidth = 3
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#001858"))
	itemStyle      = lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("#001858")).Background(lipgloss.Color("#f3d2c1"))
	activeStyle    = itemStyle.Copy().Background(lipgloss.Color("#a2d2ff")).Bold(true)
	cellStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#001858")).Background(lipgloss.Color("#f1bece")).Bold(true)
	markedStyle    = cellStyle.Copy().Foreground(lipgloss.Color("#FFF7F3")).Background(lipgloss.Color("#A888B5"))
	wordStyle      = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("#001858"))
	foundWordStyle = wordStyle.Copy().Foreground(lipgloss.Color("#FFF7F3")).Background(lipgloss.Color("#A888B5")).Strikethrough(true)
	panelStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#624E88")).
			Padding(1, 4).Foreground(lipgloss.Color("#624E88")).Bold(true)
	helpStyle = lipgloss.NewStyle().Faint(true)
)

type model struct {
	categories []catalog.Category
	cfg        game.Config

	screen   screen
	catIdx   int
	levelIdx int
	sess     *game.Session
	won      bool
}

func newModel(categories []catalog.Category, cfg game.Config) model {
	return model{categories: categories, cfg: cfg}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		if m.screen == screenBoard {
			m.updateMouse(msg)
		}
	}
	return m, nil
}

func (m model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	}

	switch m.screen {
	case screenCategories:
		switch msg.String() {
		case "up", "k":
			m.catIdx = max(0, m.catIdx-1)
		case "down", "j":
			m.catIdx = min(len(m.categories)-1, m.catIdx+1)
		case "enter", " ":
			m.screen = screenLevels
			m.levelIdx = 0
		}
	case screenLevels:
		levels := m.categories[m.catIdx].Levels
		switch msg.String() {
		case "left", "h", "up", "k":
			m.levelIdx = max(0, m.levelIdx-1)
		case "right", "l", "down", "j":
			m.levelIdx = min(len(levels)-1, m.levelIdx+1)
		case "enter", " ":
			m.startLevel()
		case "esc":
			m.screen = screenCategories
		}
	case screenBoard:
		switch msg.String() {
		case "r":
			m.sess.Reset()
			m.won = false
			log.Info().Str("gameId", m.sess.ID).Msg("game reset")
		case "esc":
			m.screen = screenLevels
			m.sess = nil
			m.won = false
		}
	}
	return m, nil
}

func (m *model) startLevel() {
	cat := m.categories[m.catIdx]
	lvl := cat.Levels[m.levelIdx]
	m.sess = game.New(m.cfg, cat.Name, lvl.Number, lvl.Words)
	m.won = false
	m.screen = screenBoard
	if len(m.sess.Board.Unplaced) > 0 {
		log.Warn().Strs("unplaced", m.sess.Board.Unplaced).Msg("words left off the board")
	}
	log.Info().Str("gameId", m.sess.ID).Str("category", cat.Name).Int("level", lvl.Number).Msg("game started")
}

// updateMouse maps terminal mouse events onto the selection engine.
// Releasing the button off the board abandons the selection.
func (m *model) updateMouse(msg tea.MouseMsg) {
	if m.won {
		return
	}
	c, onBoard := m.cellAt(msg.X, msg.Y)
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if onBoard {
			m.sess.Begin(c.Row, c.Col)
		}
	case msg.Action == tea.MouseActionMotion:
		if onBoard {
			m.sess.Extend(c.Row, c.Col)
		}
	case msg.Action == tea.MouseActionRelease:
		if !onBoard {
			m.sess.Cancel()
			return
		}
		out := m.sess.End()
		if out.Found {
			log.Info().Str("gameId", m.sess.ID).Str("word", out.Word).Msg("word found")
		}
		if out.Completed {
			m.won = true
		}
	}
}

// cellAt converts a terminal position to a board cell.
func (m model) cellAt(x, y int) (grid.Coord, bool) {
	if m.sess == nil || x < boardLeft || y < boardTop {
		return grid.Coord{}, false
	}
	c := grid.C(y-boardTop, (x-boardLeft)/cellWidth)
	return c, c.In(m.sess.Board.Size)
}

// screenPos is the inverse of cellAt: the middle column of c's letter.
func screenPos(c grid.Coord) (x, y int) {
	return boardLeft + c.Col*cellWidth + 1, boardTop + c.Row
}

func (m model) View() string {
	switch m.screen {
	case screenLevels:
		return m.viewLevels()
	case screenBoard:
		return m.viewBoard()
	default:
		return m.viewCategories()
	}
}

func (m model) viewCategories() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Selecciona una Categoría"))
	b.WriteString("\n\n")
	for i, c := range m.categories {
		style := itemStyle
		if i == m.catIdx {
			style = activeStyle
		}
		b.WriteString("  " + style.Render(c.Name) + "\n")
	}
	b.WriteString("\n" + helpStyle.Render("↑/↓ elegir • enter abrir • q salir"))
	return b.String()
}

func (m model) viewLevels() string {
	cat := m.categories[m.catIdx]
	var items []string
	for i, l := range cat.Levels {
		style := itemStyle
		if i == m.levelIdx {
			style = activeStyle
		}
		items = append(items, style.Render(fmt.Sprintf("Nivel %d", l.Number)))
	}
	return titleStyle.Render("Niveles de "+cat.Name) + "\n\n  " +
		lipgloss.JoinHorizontal(lipgloss.Top, items...) + "\n\n" +
		helpStyle.Render("←/→ elegir • enter jugar • esc categorías • q salir")
}

func (m model) viewBoard() string {
	s := m.sess
	var rows []string
	for r, row := range s.Board.Cells {
		var line strings.Builder
		line.WriteString(strings.Repeat(" ", boardLeft))
		for col, ch := range row {
			c := grid.C(r, col)
			style := cellStyle
			if s.IsConfirmed(c) || s.IsSelected(c) {
				style = markedStyle
			}
			line.WriteString(style.Render(" " + string(ch) + " "))
		}
		rows = append(rows, line.String())
	}
	board := strings.Join(rows, "\n")

	var words []string
	for _, w := range s.Words {
		switch {
		case s.IsFound(w):
			words = append(words, foundWordStyle.Render(w))
		case !s.Board.Placed(w):
			words = append(words, helpStyle.Render(w))
		default:
			words = append(words, wordStyle.Render(w))
		}
	}
	side := lipgloss.JoinVertical(lipgloss.Left, words...)
	side = lipgloss.NewStyle().MarginLeft(3).Render(side +
		fmt.Sprintf("\n\n%d / %d", len(s.Found), s.Target()))

	title := titleStyle.Render(fmt.Sprintf("%s - Nivel %d", s.Category, s.Level))
	body := lipgloss.JoinHorizontal(lipgloss.Top, board, side)
	if m.won {
		body = lipgloss.JoinHorizontal(lipgloss.Center, board, "   ",
			panelStyle.Render("¡Felicidades! :3\n\nHas encontrado todas las palabras\n\nr reintentar • esc volver a niveles"))
	}
	return title + "\n\n" + body + "\n\n" +
		helpStyle.Render("arrastra con el ratón para marcar • r reiniciar • esc niveles • q salir")
}

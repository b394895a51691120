package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordsearch/internal/catalog"
	"github.com/robalobadob/wordsearch/internal/game"
	"github.com/robalobadob/wordsearch/internal/grid"
)

func testModel() model {
	cats := []catalog.Category{
		{Name: "Animales", Levels: []catalog.Level{
			{Number: 1, Words: []string{"GATO", "PERRO"}},
			{Number: 2, Words: []string{"CABALLO"}},
		}},
		{Name: "Frutas", Levels: []catalog.Level{
			{Number: 1, Words: []string{"PERA"}},
		}},
	}
	return newModel(cats, game.Config{Size: grid.Size, Seed: 7, Seeded: true})
}

func send(t *testing.T, m model, msgs ...tea.Msg) model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(model)
	}
	return m
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func mouse(c grid.Coord, action tea.MouseAction) tea.MouseMsg {
	x, y := screenPos(c)
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft}
}

// dragWord replays the pointer events of a user tracing word on the board.
func dragWord(t *testing.T, m model, word string) model {
	t.Helper()
	path := m.sess.Board.Positions[word]
	require.NotEmpty(t, path, "word %s not placed", word)
	msgs := []tea.Msg{mouse(path[0], tea.MouseActionPress)}
	for _, c := range path[1:] {
		msgs = append(msgs, mouse(c, tea.MouseActionMotion))
	}
	msgs = append(msgs, mouse(path[len(path)-1], tea.MouseActionRelease))
	return send(t, m, msgs...)
}

func TestMenuNavigation(t *testing.T) {
	m := testModel()
	require.Equal(t, screenCategories, m.screen)
	require.Contains(t, m.View(), "Animales")

	m = send(t, m, key("down"), key("enter"))
	require.Equal(t, screenLevels, m.screen)
	require.Equal(t, 1, m.catIdx)
	require.Contains(t, m.View(), "Niveles de Frutas")

	m = send(t, m, key("esc"), key("k"), key("enter"), key("right"), key("enter"))
	require.Equal(t, screenBoard, m.screen)
	require.Equal(t, "Animales", m.sess.Category)
	require.Equal(t, 2, m.sess.Level)
	require.Contains(t, m.View(), "CABALLO")

	m = send(t, m, key("esc"))
	require.Equal(t, screenLevels, m.screen)
	require.Nil(t, m.sess)
}

func TestCellAt(t *testing.T) {
	m := send(t, testModel(), key("enter"), key("enter"))

	c, ok := m.cellAt(boardLeft, boardTop)
	require.True(t, ok)
	require.Equal(t, grid.C(0, 0), c)

	c, ok = m.cellAt(boardLeft+cellWidth*5+2, boardTop+3)
	require.True(t, ok)
	require.Equal(t, grid.C(3, 5), c)

	_, ok = m.cellAt(boardLeft-1, boardTop)
	require.False(t, ok)
	_, ok = m.cellAt(boardLeft+cellWidth*grid.Size, boardTop)
	require.False(t, ok)
	_, ok = m.cellAt(boardLeft, boardTop+grid.Size)
	require.False(t, ok)
}

func TestMouseDragFindsWordsAndWins(t *testing.T) {
	m := send(t, testModel(), key("enter"), key("enter"))
	require.Empty(t, m.sess.Board.Unplaced)

	m = dragWord(t, m, "GATO")
	require.True(t, m.sess.IsFound("GATO"))
	require.False(t, m.won)

	m = dragWord(t, m, "PERRO")
	require.True(t, m.sess.IsFound("PERRO"))
	require.True(t, m.won)
	require.Contains(t, m.View(), "Felicidades")

	// Restart clears progress and hides the panel.
	m = send(t, m, key("r"))
	require.False(t, m.won)
	require.Empty(t, m.sess.Found)
}

func TestReleaseOffBoardCancels(t *testing.T) {
	m := send(t, testModel(), key("enter"), key("enter"))
	path := m.sess.Board.Positions["GATO"]

	m = send(t, m,
		mouse(path[0], tea.MouseActionPress),
		mouse(path[len(path)-1], tea.MouseActionMotion),
		tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft},
	)
	require.False(t, m.sess.Drag.Active)
	require.Empty(t, m.sess.Found)
}

func TestQuit(t *testing.T) {
	_, cmd := testModel().Update(key("q"))
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

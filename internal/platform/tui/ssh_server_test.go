package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/core"
)

func stepSession(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm
}

func TestSessionMenuGameMenu(t *testing.T) {
	m := NewSessionModel(Options{Player: "alice"}, testRuntime())
	m.Init()

	m = stepSession(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = stepSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.current != screenGame || m.gameModel == nil {
		t.Fatalf("Enter should start a game, screen = %d", m.current)
	}

	game, ok := m.gameModel.game.(*scriptedGame)
	if !ok {
		t.Fatalf("session runs %T", m.gameModel.game)
	}

	// Back is ignored while the run is live.
	m = stepSession(t, m, runeKey('b'))
	if m.current != screenGame {
		t.Fatal("b during play should not leave the game")
	}

	game.state = core.GameState{GameOver: true, Level: 1}
	m = stepSession(t, m, TickMsg{})
	m = stepSession(t, m, runeKey('b'))
	if m.current != screenMenu || m.gameModel != nil {
		t.Fatalf("b after game over should return to the menu, screen = %d", m.current)
	}
	if got := m.menu.Difficulty(); got != "easy" {
		t.Errorf("menu difficulty after a game = %q, expected easy", got)
	}
}

func TestSessionScoreboardRoundTrip(t *testing.T) {
	m := NewSessionModel(Options{}, testRuntime())

	m = stepSession(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.current != screenScores {
		t.Fatalf("Tab should open the scoreboard, screen = %d", m.current)
	}
	if m.View() == "" {
		t.Error("scoreboard View() is empty")
	}

	m = stepSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.current != screenMenu {
		t.Fatalf("Esc should return to the menu, screen = %d", m.current)
	}

	m = stepSession(t, m, runeKey('q'))
	if !m.quitting || m.View() != "" {
		t.Error("q on the menu should end the session")
	}
}

func TestSessionTracksWindowSize(t *testing.T) {
	m := NewSessionModel(Options{}, testRuntime())
	m = stepSession(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.config.ScreenW != 120 || m.config.ScreenH != 40 {
		t.Errorf("config size = %dx%d, expected 120x40", m.config.ScreenW, m.config.ScreenH)
	}
}

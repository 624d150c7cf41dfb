package tetris

import (
	"fmt"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/engine"
)

// Visual characters for rendering
const (
	BlockChar = '█'
	GhostChar = '░'
	EmptyChar = ' '
)

// panelWidth is the width of the side panel boxes.
const panelWidth = 14

// panelHeight is the number of rows the side panel needs.
const panelHeight = 20

var pieceColors = [engine.PieceCount]core.Color{
	engine.PieceI: core.ColorCyan,
	engine.PieceJ: core.ColorBlue,
	engine.PieceL: core.ColorOrange,
	engine.PieceO: core.ColorYellow,
	engine.PieceS: core.ColorGreen,
	engine.PieceT: core.ColorMagenta,
	engine.PieceZ: core.ColorRed,
}

// PieceColor returns the display color of a piece type.
func PieceColor(t engine.PieceType) core.Color {
	if !t.Valid() {
		return core.ColorDefault
	}
	return pieceColors[t]
}

type layout struct {
	cellW    int
	board    core.Rect // Framed board including the border
	panelX   int
	minW     int
	minH     int
	tooSmall bool
}

func computeLayout(cfg config.TetrisConfig, w, h int) layout {
	cw := core.Clamp(cfg.Display.CellWidth, 1, 2)
	boardW := cfg.Board.Width*cw + 2
	boardH := cfg.Board.Height + 2
	total := boardW + 1 + panelWidth

	l := layout{
		cellW: cw,
		minW:  total,
		minH:  max(boardH, panelHeight),
	}
	if w < l.minW || h < l.minH {
		l.tooSmall = true
		return l
	}
	left := (w - total) / 2
	top := (h - l.minH) / 2
	l.board = core.NewRect(left, top, boardW, boardH)
	l.panelX = left + boardW + 1
	return l
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.layout.tooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorYellow)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", g.layout.minW, g.layout.minH), core.ColorGray)
		return
	}

	snap := g.eng.Snapshot()
	g.renderBoard(dst, snap)
	g.renderPanel(dst, snap)
	g.renderOverlay(dst, snap)
}

func (g *Game) drawBlock(dst *core.Screen, x, y int, r rune, c core.Color) {
	for i := 0; i < g.layout.cellW; i++ {
		dst.SetColored(x+i, y, r, c)
	}
}

// renderBoard draws the frame, locked cells, ghost and active piece. Only
// the visible rows are drawn; the hidden buffer stays off screen.
func (g *Game) renderBoard(dst *core.Screen, snap engine.Snapshot) {
	dst.DrawBox(g.layout.board, core.ColorGray)
	inner := g.layout.board.Inner()

	for y := 0; y < snap.Height; y++ {
		row := inner.Y + (snap.Height - 1 - y)
		for x := 0; x < snap.Width; x++ {
			col := inner.X + x*g.layout.cellW
			switch {
			case snap.IsActive(x, y):
				g.drawBlock(dst, col, row, BlockChar, PieceColor(snap.Active.Type))
			case snap.CellAt(x, y) != engine.Empty:
				t, _ := snap.CellAt(x, y).Piece()
				g.drawBlock(dst, col, row, BlockChar, PieceColor(t))
			case g.cfg.Display.Ghost && snap.IsGhost(x, y):
				g.drawBlock(dst, col, row, GhostChar, core.ColorGray)
			default:
				g.drawBlock(dst, col, row, EmptyChar, core.ColorDefault)
			}
		}
	}
}

func (g *Game) renderPanel(dst *core.Screen, snap engine.Snapshot) {
	x := g.layout.panelX
	y := g.layout.board.Y

	g.renderPreview(dst, x, y, "NEXT", snap.Next, true, core.ColorGray)

	holdColor := core.ColorGray
	if !snap.Hold.CanHold {
		holdColor = core.ColorDim
	}
	g.renderPreview(dst, x, y+5, "HOLD", snap.Hold.Piece, snap.Hold.Held, holdColor)

	stats := []struct {
		label string
		value int
	}{
		{"SCORE", snap.Score},
		{"LINES", snap.Lines},
		{"LEVEL", snap.Level},
	}
	for i, s := range stats {
		row := y + 10 + i*2
		dst.DrawTextColored(x+1, row, s.label, core.ColorGray)
		dst.DrawTextColored(x+1, row+1, fmt.Sprintf("%d", s.value), core.ColorWhite)
	}

	dst.DrawTextColored(x+1, y+17, g.Title(), core.ColorCyan)
	dst.DrawTextColored(x+1, y+18, "P pause", core.ColorDim)
	dst.DrawTextColored(x+1, y+19, "C hold", core.ColorDim)
}

// renderPreview draws a boxed piece in its spawn orientation. A dimmed
// frame dims the piece as well.
func (g *Game) renderPreview(dst *core.Screen, x, y int, title string, t engine.PieceType, show bool, frame core.Color) {
	box := core.NewRect(x, y, panelWidth, 4)
	dst.DrawBox(box, frame)
	dst.DrawTextColored(x+2, y, " "+title+" ", frame)
	if !show {
		return
	}

	color := PieceColor(t)
	if frame == core.ColorDim {
		color = core.ColorDim
	}
	left := x + (panelWidth-4*g.layout.cellW)/2
	for _, o := range engine.Shape(t, engine.RotationSpawn) {
		col := left + (o.X+1)*g.layout.cellW
		row := y + 1 + (1 - o.Y)
		g.drawBlock(dst, col, row, BlockChar, color)
	}
}

func (g *Game) renderOverlay(dst *core.Screen, snap engine.Snapshot) {
	b := g.layout.board
	center := func(row int, text string, c core.Color) {
		dst.DrawTextColored(b.X+(b.W-len(text))/2, row, text, c)
	}
	mid := b.Y + b.H/2

	switch {
	case snap.Mode == engine.ModeGameOver:
		center(mid-2, " GAME OVER ", core.ColorRed)
		center(mid, fmt.Sprintf(" Score %d ", snap.Score), core.ColorWhite)
		center(mid+2, " R restart ", core.ColorGray)
		center(mid+3, " B menu ", core.ColorGray)
	case g.paused:
		center(mid, " PAUSED ", core.ColorYellow)
		center(mid+2, " P resume ", core.ColorGray)
	}
}

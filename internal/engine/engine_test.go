package engine

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T, pieces ...PieceType) *Engine {
	t.Helper()
	cfg := DefaultConfig()
	if len(pieces) > 0 {
		cfg.Source = NewSequence(pieces...)
	}
	e, err := New(cfg)
	require.NoError(t, err)
	return e
}

func fillRow(b *Board, y int, gaps ...int) {
	skip := make(map[int]bool, len(gaps))
	for _, x := range gaps {
		skip[x] = true
	}
	for x := 0; x < b.Width(); x++ {
		if !skip[x] {
			b.Set(x, y, PieceZ.Cell())
		}
	}
}

func kinds(events []Event) []EventKind {
	out := make([]EventKind, 0, len(events))
	for _, ev := range events {
		out = append(out, ev.Kind)
	}
	return out
}

func TestNewRejectsInvalidBoards(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		hidden        int
	}{
		{"zero width", 0, 20, 2},
		{"negative height", 10, -1, 2},
		{"negative hidden rows", 10, 20, -1},
		{"too narrow for I", 4, 20, 2},
		{"too short to spawn", 10, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Width, cfg.Height, cfg.HiddenRows = tt.width, tt.height, tt.hidden
			_, err := New(cfg)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidBoard))
		})
	}

	cfg := DefaultConfig()
	cfg.Width, cfg.Height, cfg.HiddenRows = 5, 2, 0
	_, err := New(cfg)
	assert.NoError(t, err, "smallest playable board")
}

func TestNewRejectsUnknownRandomizer(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Randomizer = "marble"
	_, err := New(cfg)
	assert.Error(t, err)
}

func TestKickTables(t *testing.T) {
	pairs := []kickPair{{0, 1}, {1, 0}, {1, 2}, {2, 1}, {2, 3}, {3, 2}, {3, 0}, {0, 3}}
	for _, table := range []map[kickPair][]Point{jlstzKicks, iKicks} {
		assert.Len(t, table, 8)
		for _, p := range pairs {
			kicks, ok := table[p]
			require.True(t, ok, "missing pair %v", p)
			assert.Len(t, kicks, 5)
			assert.Equal(t, Point{}, kicks[0], "first kick must be identity for %v", p)
		}
	}

	assert.Equal(t, []Point{{0, 0}}, Kicks(PieceO, 0, 1))
	assert.Equal(t, []Point{{0, 0}}, Kicks(PieceT, 0, 2), "non-adjacent pair")
	assert.Equal(t, Point{-1, 0}, Kicks(PieceT, 0, 1)[1])
	assert.Equal(t, Point{-2, 0}, Kicks(PieceI, 0, 1)[1])
	assert.Equal(t, Point{1, 2}, Kicks(PieceI, 0, 1)[4])
}

func TestKickTablesMatchSRS(t *testing.T) {
	// SRS wall kick data, y up, in the order the kicks are tried.
	jlstz := []struct {
		from, to Rotation
		want     []Point
	}{
		{0, 1, []Point{{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}}},
		{1, 0, []Point{{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}}},
		{1, 2, []Point{{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}}},
		{2, 1, []Point{{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}}},
		{2, 3, []Point{{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}}},
		{3, 2, []Point{{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}}},
		{3, 0, []Point{{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}}},
		{0, 3, []Point{{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}}},
	}
	i := []struct {
		from, to Rotation
		want     []Point
	}{
		{0, 1, []Point{{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}}},
		{1, 0, []Point{{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}}},
		{1, 2, []Point{{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}}},
		{2, 1, []Point{{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}}},
		{2, 3, []Point{{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}}},
		{3, 2, []Point{{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}}},
		{3, 0, []Point{{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}}},
		{0, 3, []Point{{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}}},
	}

	for _, piece := range []PieceType{PieceJ, PieceL, PieceS, PieceT, PieceZ} {
		for _, tt := range jlstz {
			assert.Equal(t, tt.want, Kicks(piece, tt.from, tt.to), "%s %d->%d", piece, tt.from, tt.to)
		}
	}
	for _, tt := range i {
		assert.Equal(t, tt.want, Kicks(PieceI, tt.from, tt.to), "I %d->%d", tt.from, tt.to)
	}
	for _, tt := range jlstz {
		assert.Equal(t, []Point{{0, 0}}, Kicks(PieceO, tt.from, tt.to), "O %d->%d", tt.from, tt.to)
	}
}

func TestShapesHaveDistinctCells(t *testing.T) {
	for _, p := range AllPieces {
		for r := Rotation(0); r < 4; r++ {
			seen := map[Point]bool{}
			for _, c := range Shape(p, r) {
				assert.False(t, seen[c], "%s rotation %d repeats %v", p, r, c)
				seen[c] = true
			}
		}
	}
	assert.Equal(t, Shape(PieceO, 0), Shape(PieceO, 3))
}

func TestRotateUsesFirstValidKick(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, piece := range AllPieces {
		for from := Rotation(0); from < 4; from++ {
			for _, dir := range []Direction{Clockwise, CounterClockwise} {
				for trial := 0; trial < 50; trial++ {
					e := newTestEngine(t)
					start := ActivePiece{Type: piece, Pivot: Point{5, 10}, Rotation: from}
					occupied := map[Point]bool{}
					for _, c := range start.Cells() {
						occupied[c] = true
					}
					for y := 4; y < 17; y++ {
						for x := 0; x < e.board.Width(); x++ {
							if !occupied[Point{x, y}] && rng.Intn(10) < 3 {
								e.board.Set(x, y, PieceJ.Cell())
							}
						}
					}
					e.active, e.hasActive = start, true

					to := from.Apply(dir)
					want := start
					wantOK := false
					for _, k := range Kicks(piece, from, to) {
						candidate := ActivePiece{Type: piece, Pivot: start.Pivot.Add(k), Rotation: to}
						if e.board.Fits(candidate.Cells()) {
							want, wantOK = candidate, true
							break
						}
					}

					ok := e.Rotate(dir)
					assert.Equal(t, wantOK, ok)
					assert.Equal(t, want, e.active)
				}
			}
		}
	}
}

func TestMoveIsAtomic(t *testing.T) {
	e := newTestEngine(t)
	require.True(t, e.Spawn(PieceI))
	for e.Move(-1, 0) {
	}
	before := e.active
	assert.Equal(t, 0, before.Cells()[0].X)

	assert.False(t, e.Move(-1, 0))
	assert.Equal(t, before, e.active)

	// Block only one of the four target cells.
	e.board.Set(3, before.Pivot.Y-1, PieceO.Cell())
	assert.False(t, e.Move(0, -1))
	assert.Equal(t, before, e.active)
}

func TestClearFullRows(t *testing.T) {
	tests := []struct {
		name    string
		full    []int
		partial []int
		want    int
	}{
		{"none", nil, []int{0}, 0},
		{"single", []int{0}, nil, 1},
		{"double", []int{0, 1}, []int{2}, 2},
		{"triple gap", []int{0, 2, 4}, []int{1, 3}, 3},
		{"tetris", []int{3, 4, 5, 6}, []int{0}, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBoard(10, 22)
			require.NoError(t, err)
			for _, y := range tt.full {
				fillRow(b, y)
			}
			for _, y := range tt.partial {
				fillRow(b, y, 9)
			}
			got := b.ClearFullRows()
			assert.Equal(t, tt.want, got)
			for y := 0; y < b.Height(); y++ {
				assert.False(t, b.RowFull(y), "row %d still full", y)
			}
			assert.Equal(t, len(tt.partial)*9, b.Occupied())
			for i := range tt.partial {
				assert.Equal(t, Empty, b.At(9, i))
				assert.NotEqual(t, Empty, b.At(0, i), "partial rows settle at the bottom")
			}
		})
	}
}

func TestScoringFormulas(t *testing.T) {
	assert.Equal(t, 0, LineClearPoints(0))
	assert.Equal(t, 100, LineClearPoints(1))
	assert.Equal(t, 200, LineClearPoints(2))
	assert.Equal(t, 400, LineClearPoints(3))
	assert.Equal(t, 800, LineClearPoints(4))

	assert.Equal(t, 1, LevelForLines(0))
	assert.Equal(t, 1, LevelForLines(9))
	assert.Equal(t, 2, LevelForLines(10))
	assert.Equal(t, 4, LevelForLines(35))

	g := DefaultGravity()
	assert.Equal(t, 500*time.Millisecond, g.Interval(1))
	assert.InDelta(t, float64(400*time.Millisecond), float64(g.Interval(2)), float64(time.Microsecond))
	assert.InDelta(t, float64(320*time.Millisecond), float64(g.Interval(3)), float64(time.Microsecond))
	assert.Equal(t, 50*time.Millisecond, g.Interval(20))
	assert.Equal(t, 50*time.Millisecond, g.Interval(100))
}

func TestLockScoresOncePerLockAndLevelsUp(t *testing.T) {
	e := newTestEngine(t, PieceT)
	for round := 1; round <= 3; round++ {
		for y := 0; y < 4; y++ {
			fillRow(e.board, y)
		}
		require.True(t, e.Spawn(PieceT))
		e.DrainEvents()
		require.True(t, e.Lock())

		assert.Equal(t, 800*round, e.Score().Score)
		assert.Equal(t, 4*round, e.Score().Lines)
		events := e.DrainEvents()
		if round == 3 {
			assert.Equal(t, []EventKind{EventLocked, EventLinesCleared, EventLevelUp}, kinds(events))
			assert.Equal(t, 2, events[2].Level)
		} else {
			assert.Equal(t, []EventKind{EventLocked, EventLinesCleared}, kinds(events))
		}
		assert.Equal(t, 4, events[1].Lines)
	}
	assert.Equal(t, 2, e.Score().Level)
	assert.Equal(t, DefaultGravity().Interval(2), e.GravityInterval())
}

func TestLockWithoutClearKeepsScore(t *testing.T) {
	e := newTestEngine(t)
	fillRow(e.board, 0, 3)
	require.True(t, e.Spawn(PieceO))
	require.True(t, e.Lock())
	assert.Equal(t, ScoreState{Level: 1}, e.Score())
	assert.Equal(t, 9+4, e.board.Occupied())
	assert.True(t, e.HoldSlot().CanHold)
}

func TestHoldOncePerLock(t *testing.T) {
	e := newTestEngine(t, PieceT, PieceI, PieceO)
	e.Tick(nil, 0)
	active, ok := e.Active()
	require.True(t, ok)
	require.Equal(t, PieceT, active.Type)

	require.True(t, e.Hold())
	_, ok = e.Active()
	assert.False(t, ok, "held piece is not locked")
	assert.Equal(t, 0, e.board.Occupied())
	assert.Equal(t, HoldSlot{Piece: PieceT, Held: true, CanHold: false}, e.HoldSlot())

	e.Tick(nil, 0)
	active, _ = e.Active()
	assert.Equal(t, PieceI, active.Type, "next piece comes from the queue")

	assert.False(t, e.Hold())
	assert.Equal(t, HoldSlot{Piece: PieceT, Held: true, CanHold: false}, e.HoldSlot())
	active, _ = e.Active()
	assert.Equal(t, PieceI, active.Type)

	require.True(t, e.HardDrop())
	assert.True(t, e.HoldSlot().CanHold, "lock restores hold")

	e.Tick(nil, 0)
	active, _ = e.Active()
	require.Equal(t, PieceO, active.Type)

	next := e.Next()
	require.True(t, e.Hold())
	active, ok = e.Active()
	require.True(t, ok)
	assert.Equal(t, PieceT, active.Type, "held piece swaps in immediately")
	assert.Equal(t, e.SpawnPivot(), active.Pivot)
	assert.Equal(t, RotationSpawn, active.Rotation)
	assert.Equal(t, next, e.Next(), "swap does not consume the queue")
	assert.Equal(t, HoldSlot{Piece: PieceO, Held: true, CanHold: false}, e.HoldSlot())
}

func TestHoldSwapCanEndGame(t *testing.T) {
	e := newTestEngine(t, PieceT, PieceI, PieceI)
	e.Tick(nil, 0)
	require.True(t, e.Hold())
	e.Tick(nil, 0)
	require.True(t, e.HardDrop())
	e.Tick(nil, 0)

	// Held T would cover (4..6, 18) and (5, 19); block it.
	e.board.Set(5, 19, PieceS.Cell())
	active, ok := e.Active()
	require.True(t, ok)
	require.NotContains(t, active.Cells(), Point{5, 19})

	require.True(t, e.Hold())
	assert.Equal(t, ModeGameOver, e.Mode())
	_, ok = e.Active()
	assert.False(t, ok)
}

func TestScenarioIPieceFillsGap(t *testing.T) {
	e := newTestEngine(t)
	fillRow(e.board, 0, 5)

	require.True(t, e.Spawn(PieceI))
	require.True(t, e.Rotate(Clockwise))
	require.True(t, e.Move(-1, 0))
	for _, c := range e.active.Cells() {
		require.Equal(t, 5, c.X)
	}
	require.True(t, e.HardDrop())

	assert.Equal(t, 100, e.Score().Score)
	assert.Equal(t, 1, e.Score().Lines)
	for x := 0; x < 10; x++ {
		if x == 5 {
			assert.Equal(t, PieceI.Cell(), e.board.At(x, 0))
		} else {
			assert.Equal(t, Empty, e.board.At(x, 0))
		}
	}
	assert.Equal(t, 3, e.board.Occupied())
}

func TestScenarioHorizontalIPieceClearsRow(t *testing.T) {
	e := newTestEngine(t)
	fillRow(e.board, 0, 4, 5, 6, 7)

	require.True(t, e.Spawn(PieceI))
	require.True(t, e.HardDrop())

	assert.Equal(t, 100, e.Score().Score)
	assert.Equal(t, 1, e.Score().Lines)
	assert.Equal(t, 0, e.board.Occupied())
}

func TestScenarioSpawnBlockedIsGameOver(t *testing.T) {
	e := newTestEngine(t)
	pivot := e.SpawnPivot()
	e.board.Set(pivot.X, pivot.Y, PieceL.Cell())
	e.board.Set(pivot.X-1, pivot.Y, PieceL.Cell())

	assert.False(t, e.Spawn(PieceT))
	_, ok := e.Active()
	assert.False(t, ok)
	assert.Equal(t, ModeGameOver, e.Mode())
	assert.Equal(t, []EventKind{EventGameOver}, kinds(e.DrainEvents()))
}

func TestScenarioTPieceKicksOffBlock(t *testing.T) {
	e := newTestEngine(t)
	require.True(t, e.Spawn(PieceT))
	require.True(t, e.Move(3, 0))
	require.Equal(t, Point{8, 18}, e.active.Pivot)

	// The naive R state needs (8, 17).
	e.board.Set(8, 17, PieceJ.Cell())
	e.DrainEvents()

	require.True(t, e.Rotate(Clockwise))
	assert.Equal(t, ActivePiece{Type: PieceT, Pivot: Point{7, 18}, Rotation: RotationRight}, e.active)
	assert.Equal(t, CellsAt(PieceT, RotationRight, Point{7, 18}), e.active.Cells())
	assert.Equal(t, []EventKind{EventRotated}, kinds(e.DrainEvents()))
}

func TestRotateFourTimesRoundTrips(t *testing.T) {
	for _, piece := range AllPieces {
		t.Run(piece.String(), func(t *testing.T) {
			e := newTestEngine(t)
			require.True(t, e.Spawn(piece))
			start := e.active
			for i := 0; i < 4; i++ {
				require.True(t, e.Rotate(Clockwise))
				assert.Equal(t, start.Pivot, e.active.Pivot, "no kick needed on an empty board")
			}
			assert.Equal(t, start, e.active)
			assert.Equal(t, start.Cells(), e.active.Cells())
		})
	}
}

func TestRotateRejectedLeavesPieceUnchanged(t *testing.T) {
	e := newTestEngine(t)
	require.True(t, e.Spawn(PieceT))
	before := e.active
	for y := 0; y < e.board.Height(); y++ {
		for x := 0; x < e.board.Width(); x++ {
			if !containsPoint(before.Cells(), Point{x, y}) {
				e.board.Set(x, y, PieceZ.Cell())
			}
		}
	}
	e.DrainEvents()
	assert.False(t, e.Rotate(Clockwise))
	assert.False(t, e.Rotate(CounterClockwise))
	assert.Equal(t, before, e.active)
	assert.Empty(t, e.DrainEvents(), "failed rotations are silent")
}

func TestHiddenRowsAllowKickAboveField(t *testing.T) {
	setup := func(hidden int) *Engine {
		cfg := DefaultConfig()
		cfg.HiddenRows = hidden
		e, err := New(cfg)
		require.NoError(t, err)
		require.True(t, e.Spawn(PieceT))
		e.board.Set(5, 17, PieceJ.Cell())
		e.board.Set(4, 17, PieceJ.Cell())
		return e
	}

	buffered := setup(2)
	require.True(t, buffered.Rotate(Clockwise))
	assert.Equal(t, Point{4, 19}, buffered.active.Pivot)
	assert.Contains(t, buffered.active.Cells(), Point{4, 20})

	flush := setup(0)
	before := flush.active
	assert.False(t, flush.Rotate(Clockwise), "no room above a field without a buffer")
	assert.Equal(t, before, flush.active)
}

func TestGameOverIgnoresEverythingButRestart(t *testing.T) {
	e := newTestEngine(t, PieceT)
	pivot := e.SpawnPivot()
	e.board.Set(pivot.X, pivot.Y, PieceL.Cell())
	res := e.Tick(nil, 0)
	require.Equal(t, ModeGameOver, res.Mode)
	assert.Equal(t, []EventKind{EventGameOver}, kinds(res.Events))

	board := e.board.Rows()
	assert.False(t, e.Move(1, 0))
	assert.False(t, e.Rotate(Clockwise))
	assert.False(t, e.Hold())
	assert.False(t, e.SoftDrop())
	assert.False(t, e.HardDrop())
	assert.False(t, e.GravityStep())
	assert.False(t, e.Lock())
	assert.False(t, e.Spawn(PieceO))

	res = e.Tick([]Command{CmdMoveLeft, CmdRotateCW, CmdHold, CmdHardDrop}, time.Minute)
	assert.Empty(t, res.Events)
	assert.Equal(t, ModeGameOver, res.Mode)
	assert.Equal(t, board, e.board.Rows())

	res = e.Tick([]Command{CmdMoveLeft, CmdRestart}, 0)
	assert.Equal(t, ModePlaying, res.Mode)
	assert.Equal(t, []EventKind{EventRestarted}, kinds(res.Events))
	assert.Equal(t, 0, e.board.Occupied())
	assert.Equal(t, ScoreState{Level: 1}, e.Score())
	assert.Equal(t, newHoldSlot(), e.HoldSlot())
	_, ok := e.Active()
	assert.True(t, ok, "restart spawns within the same tick")
}

func TestRestartIgnoredWhilePlaying(t *testing.T) {
	e := newTestEngine(t, PieceO)
	e.Tick(nil, 0)
	require.True(t, e.Move(1, 0))
	e.DrainEvents()
	before := e.Snapshot()
	res := e.Tick([]Command{CmdRestart}, 0)
	assert.Empty(t, res.Events)
	assert.Equal(t, before, e.Snapshot())
}

func TestGravityFiresAtMostOncePerTick(t *testing.T) {
	e := newTestEngine(t, PieceO)
	e.Tick(nil, 0)
	start := e.active.Pivot.Y

	for i := 0; i < 4; i++ {
		e.Tick(nil, 100*time.Millisecond)
	}
	assert.Equal(t, start, e.active.Pivot.Y)

	res := e.Tick(nil, 100*time.Millisecond)
	assert.Equal(t, start-1, e.active.Pivot.Y)
	assert.Empty(t, res.Events, "gravity moves are silent")

	e.Tick(nil, 10*time.Second)
	assert.Equal(t, start-2, e.active.Pivot.Y, "missed intervals are not batched")
}

func TestBlockedGravityLocksAndSpawnsSameTick(t *testing.T) {
	e := newTestEngine(t, PieceO)
	e.Tick(nil, 0)
	interval := e.GravityInterval()

	lockedAt := 0
	for i := 1; i <= 40 && lockedAt == 0; i++ {
		res := e.Tick(nil, interval)
		for _, ev := range res.Events {
			if ev.Kind == EventLocked {
				lockedAt = i
			}
		}
	}
	assert.Equal(t, 19, lockedAt, "18 rows of fall then one blocked step")
	active, ok := e.Active()
	require.True(t, ok)
	assert.Equal(t, e.SpawnPivot(), active.Pivot)
	assert.Equal(t, PieceO.Cell(), e.board.At(5, 0))
	assert.Equal(t, PieceO.Cell(), e.board.At(6, 1))
}

func TestSoftDropBlockedDoesNotLock(t *testing.T) {
	e := newTestEngine(t)
	require.True(t, e.Spawn(PieceO))
	for e.SoftDrop() {
	}
	_, ok := e.Active()
	assert.True(t, ok)
	assert.Equal(t, 0, e.board.Occupied())
	assert.Equal(t, 0, e.active.Pivot.Y)
}

func TestHardDropMatchesGhost(t *testing.T) {
	e := newTestEngine(t)
	fillRow(e.board, 0)
	fillRow(e.board, 1, 2)
	require.True(t, e.Spawn(PieceL))

	ghost, ok := e.Ghost()
	require.True(t, ok)
	before := e.active
	_, _ = e.Ghost()
	assert.Equal(t, before, e.active, "ghost is read-only")

	e.DrainEvents()
	require.True(t, e.HardDrop())
	for _, c := range ghost {
		assert.Equal(t, PieceL.Cell(), e.board.At(c.X, c.Y-1), "row 0 cleared and everything shifted down")
	}
	assert.Equal(t, []EventKind{EventMoved, EventLocked, EventLinesCleared}, kinds(e.DrainEvents()))
}

func TestTickIsDeterministic(t *testing.T) {
	script := []Command{CmdMoveLeft, CmdRotateCW, CmdNone, CmdMoveRight, CmdSoftDrop, CmdHold, CmdRotateCCW, CmdHardDrop, CmdNone, CmdNone}
	for _, kind := range []RandomizerKind{RandomUniform, RandomBag} {
		t.Run(string(kind), func(t *testing.T) {
			newEngine := func() *Engine {
				cfg := DefaultConfig()
				cfg.Randomizer = kind
				cfg.Seed = 42
				e, err := New(cfg)
				require.NoError(t, err)
				return e
			}
			a, b := newEngine(), newEngine()
			for i := 0; i < 600; i++ {
				cmds := []Command{script[i%len(script)]}
				if a.Mode() == ModeGameOver {
					cmds = append(cmds, CmdRestart)
				}
				ra := a.Tick(cmds, 50*time.Millisecond)
				rb := b.Tick(cmds, 50*time.Millisecond)
				require.Equal(t, ra, rb, "tick %d", i)
			}
			assert.Equal(t, a.Snapshot(), b.Snapshot())
		})
	}
}

func TestBagDealsEveryPiecePerSeven(t *testing.T) {
	bag := NewBag(3)
	for round := 0; round < 10; round++ {
		seen := map[PieceType]bool{}
		for i := 0; i < PieceCount; i++ {
			seen[bag.Next()] = true
		}
		assert.Len(t, seen, PieceCount, "round %d", round)
	}
}

func TestUniformIsSeeded(t *testing.T) {
	a, b := NewUniform(9), NewUniform(9)
	for i := 0; i < 100; i++ {
		p := a.Next()
		require.True(t, p.Valid())
		require.Equal(t, p, b.Next())
	}
}

func TestSnapshotCopiesBoard(t *testing.T) {
	e := newTestEngine(t, PieceS)
	e.Tick(nil, 0)
	snap := e.Snapshot()
	assert.Equal(t, 22, len(snap.Board))
	assert.True(t, snap.HasActive)
	for _, c := range snap.ActiveCells {
		assert.True(t, snap.IsActive(c.X, c.Y))
	}
	for _, c := range snap.GhostCells {
		assert.True(t, snap.IsGhost(c.X, c.Y))
	}

	snap.Board[0][0] = PieceI.Cell()
	assert.Equal(t, Empty, e.board.At(0, 0))
	assert.Equal(t, Empty, snap.CellAt(-1, 0))
}

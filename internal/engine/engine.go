package engine

import (
	"fmt"
	"time"
)

// Mode is the top-level engine state.
type Mode uint8

const (
	ModePlaying Mode = iota
	ModeGameOver
)

func (m Mode) String() string {
	if m == ModeGameOver {
		return "game_over"
	}
	return "playing"
}

// Command is one discrete input applied during a tick.
type Command uint8

const (
	CmdNone Command = iota
	CmdMoveLeft
	CmdMoveRight
	CmdSoftDrop
	CmdHardDrop
	CmdRotateCW
	CmdRotateCCW
	CmdHold
	CmdRestart
)

// Config defines the board and rules of one engine.
type Config struct {
	// Width and Height are the visible field size.
	Width  int
	Height int
	// HiddenRows are extra rows above the visible field where pieces may
	// rotate and stack before the game ends.
	HiddenRows int

	Randomizer RandomizerKind
	Seed       int64
	// Source overrides Randomizer and Seed when set.
	Source Randomizer

	Gravity Gravity
}

// DefaultConfig returns the classic 10x20 field with a two row buffer.
func DefaultConfig() Config {
	return Config{
		Width:      10,
		Height:     20,
		HiddenRows: 2,
		Randomizer: RandomUniform,
		Gravity:    DefaultGravity(),
	}
}

// Engine owns the whole game state. It is not safe for concurrent use; a
// single driver calls Tick (or the individual operations) from one goroutine.
type Engine struct {
	cfg   Config
	board *Board
	rng   Randomizer

	active    ActivePiece
	hasActive bool
	next      PieceType
	hold      HoldSlot
	score     ScoreState
	mode      Mode

	gravity gravityTimer
	events  []Event
}

// New creates an engine in the Playing mode with an empty board. The first
// piece spawns on the first tick.
func New(cfg Config) (*Engine, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.HiddenRows < 0 {
		return nil, fmt.Errorf("%w: %dx%d+%d", ErrInvalidBoard, cfg.Width, cfg.Height, cfg.HiddenRows)
	}
	if cfg.Gravity == (Gravity{}) {
		cfg.Gravity = DefaultGravity()
	}
	board, err := NewBoard(cfg.Width, cfg.Height+cfg.HiddenRows)
	if err != nil {
		return nil, err
	}
	rng := cfg.Source
	if rng == nil {
		rng, err = NewRandomizer(cfg.Randomizer, cfg.Seed)
		if err != nil {
			return nil, err
		}
	}

	e := &Engine{cfg: cfg, board: board, rng: rng}
	pivot := e.SpawnPivot()
	for _, t := range AllPieces {
		if !board.Fits(CellsAt(t, RotationSpawn, pivot)) {
			return nil, fmt.Errorf("%w: %dx%d cannot spawn %s", ErrInvalidBoard, cfg.Width, cfg.Height, t)
		}
	}
	e.reset()
	return e, nil
}

func (e *Engine) reset() {
	e.board.Clear()
	e.active = ActivePiece{}
	e.hasActive = false
	e.hold = newHoldSlot()
	e.score = newScoreState()
	e.mode = ModePlaying
	e.gravity.reset(e.cfg.Gravity.Interval(1))
	e.next = e.rng.Next()
}

// Reset reinitializes the game regardless of mode. The randomizer keeps its
// position so successive games differ.
func (e *Engine) Reset() {
	e.reset()
	e.events = nil
}

// Restart resets the game. It is accepted only in GameOver mode.
func (e *Engine) Restart() bool {
	if e.mode != ModeGameOver {
		return false
	}
	e.reset()
	e.emit(Event{Kind: EventRestarted})
	return true
}

// TickResult reports what happened during one tick.
type TickResult struct {
	Events []Event
	Mode   Mode
}

// Tick advances the game by dt. The order is fixed: spawn if due, apply the
// commands in order, advance gravity by at most one row, then spawn again if
// the piece locked. During GameOver only CmdRestart has an effect.
func (e *Engine) Tick(cmds []Command, dt time.Duration) TickResult {
	if e.mode == ModeGameOver {
		for _, c := range cmds {
			if c == CmdRestart {
				e.Restart()
				e.spawnIfDue()
				break
			}
		}
		return TickResult{Events: e.DrainEvents(), Mode: e.mode}
	}

	e.spawnIfDue()
	for _, c := range cmds {
		e.Apply(c)
	}
	if e.mode == ModePlaying && e.hasActive && e.gravity.advance(dt) {
		e.GravityStep()
	}
	e.spawnIfDue()
	return TickResult{Events: e.DrainEvents(), Mode: e.mode}
}

// Apply executes one command immediately and reports whether state changed.
func (e *Engine) Apply(c Command) bool {
	switch c {
	case CmdMoveLeft:
		return e.Move(-1, 0)
	case CmdMoveRight:
		return e.Move(1, 0)
	case CmdSoftDrop:
		return e.SoftDrop()
	case CmdHardDrop:
		return e.HardDrop()
	case CmdRotateCW:
		return e.Rotate(Clockwise)
	case CmdRotateCCW:
		return e.Rotate(CounterClockwise)
	case CmdHold:
		return e.Hold()
	case CmdRestart:
		return e.Restart()
	}
	return false
}

// Mode returns the current mode.
func (e *Engine) Mode() Mode { return e.mode }

// Board returns the live board. Callers must treat it as read-only.
func (e *Engine) Board() *Board { return e.board }

// Next returns the lookahead piece type.
func (e *Engine) Next() PieceType { return e.next }

// Score returns score, lines and level.
func (e *Engine) Score() ScoreState { return e.score }

// GravityInterval returns the current fall interval.
func (e *Engine) GravityInterval() time.Duration { return e.gravity.interval }

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config { return e.cfg }

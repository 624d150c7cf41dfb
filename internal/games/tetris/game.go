// Package tetris adapts the falling-block engine to the terminal platform:
// it maps platform actions to engine commands, runs one engine tick per
// platform tick, forwards engine events and draws the playfield.
package tetris

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/engine"
	"github.com/vovakirdan/blockfall/internal/registry"
)

// Mode selects the piece randomizer.
type Mode int

const (
	ModeClassic Mode = iota // Uniform random pieces
	ModeBag                 // 7-bag
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the gravity preset applied on every Reset.
// Unknown names fall back to the loaded configuration.
func SetDifficultyPreset(preset string) {
	p, err := config.ParseDifficulty(preset)
	if err != nil {
		logger.Warn("ignoring difficulty preset", "preset", preset, "err", err)
		p = ""
	}
	difficultyPreset = p
}

// SetLogger sets the logger used for configuration problems.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game implements registry.Game on top of engine.Engine.
type Game struct {
	mode       Mode
	difficulty config.DifficultyPreset // overrides the CLI preset when set
	eng        *engine.Engine
	cfg        config.TetrisConfig
	runtime    core.RuntimeConfig

	dt     time.Duration
	tick   uint64
	paused bool
	layout layout
}

// New creates a game with the uniform randomizer.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewBag creates a game with the 7-bag randomizer.
func NewBag() *Game {
	return &Game{mode: ModeBag}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeBag {
		return "tetris_bag"
	}
	return "tetris"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeBag {
		return "Tetris (7-bag)"
	}
	return "Tetris"
}

// Reset loads the configuration and starts a new game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	runtime.TickRate = runtime.Rate()
	g.runtime = runtime
	g.dt = runtime.TickInterval()
	g.tick = 0
	g.paused = false

	cfg, src, err := config.LoadTetris(configPath)
	if err != nil {
		logger.Warn("config unusable, using defaults", "path", configPath, "err", err)
		cfg = config.DefaultTetrisConfig()
	} else {
		logger.Debug("config loaded", "source", src)
	}
	if preset := g.preset(); preset != "" {
		config.ApplyPreset(&cfg, preset)
	}
	if g.mode == ModeBag {
		cfg.Randomizer = string(engine.RandomBag)
	}

	eng, err := engine.New(cfg.EngineConfig(runtime.Seed))
	if err != nil {
		logger.Error("engine rejected config, using defaults", "err", err)
		eng, cfg = defaultEngine(g.mode, runtime.Seed)
	}
	g.cfg = cfg
	g.eng = eng
	g.layout = computeLayout(cfg, runtime.ScreenW, runtime.ScreenH)
}

// defaultEngine builds an engine from the built-in configuration. Those
// defaults are always accepted, so a failure here is a programming error.
func defaultEngine(mode Mode, seed int64) (*engine.Engine, config.TetrisConfig) {
	cfg := config.DefaultTetrisConfig()
	if mode == ModeBag {
		cfg.Randomizer = string(engine.RandomBag)
	}
	eng, err := engine.New(cfg.EngineConfig(seed))
	if err != nil {
		logger.Error("built-in config rejected", "err", err)
		panic(fmt.Sprintf("tetris: built-in config rejected: %v", err))
	}
	return eng, cfg
}

// SetDifficulty picks the gravity preset for this game from the next Reset
// on. Unknown names are ignored.
func (g *Game) SetDifficulty(preset string) {
	p, err := config.ParseDifficulty(preset)
	if err != nil {
		logger.Warn("ignoring difficulty preset", "preset", preset, "err", err)
		return
	}
	g.difficulty = p
}

func (g *Game) preset() config.DifficultyPreset {
	if g.difficulty != "" {
		return g.difficulty
	}
	return difficultyPreset
}

// Resize adapts the layout to a new terminal size without restarting.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.layout = computeLayout(g.cfg, w, h)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.layout.tooSmall {
		return core.StepResult{State: g.State()}
	}

	over := g.eng.Mode() == engine.ModeGameOver
	if in.Has(core.ActionPause) && !over {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	res := g.eng.Tick(commands(in), g.dt)
	return core.StepResult{State: g.State(), Events: translate(res.Events)}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := g.eng.Score()
	return core.GameState{
		Score:    s.Score,
		Lines:    s.Lines,
		Level:    s.Level,
		GameOver: g.eng.Mode() == engine.ModeGameOver,
		Paused:   g.paused || g.layout.tooSmall,
	}
}

// Engine exposes the underlying engine for inspection.
func (g *Game) Engine() *engine.Engine {
	return g.eng
}

var actionCommands = map[core.Action]engine.Command{
	core.ActionLeft:      engine.CmdMoveLeft,
	core.ActionRight:     engine.CmdMoveRight,
	core.ActionSoftDrop:  engine.CmdSoftDrop,
	core.ActionHardDrop:  engine.CmdHardDrop,
	core.ActionRotateCW:  engine.CmdRotateCW,
	core.ActionRotateCCW: engine.CmdRotateCCW,
	core.ActionHold:      engine.CmdHold,
	core.ActionRestart:   engine.CmdRestart,
}

// commands maps the frame's actions to engine commands, keeping order.
func commands(in core.InputFrame) []engine.Command {
	if in.Len() == 0 {
		return nil
	}
	cmds := make([]engine.Command, 0, in.Len())
	for _, a := range in.Actions() {
		if c, ok := actionCommands[a]; ok {
			cmds = append(cmds, c)
		}
	}
	return cmds
}

// translate converts engine events into platform events.
func translate(events []engine.Event) []core.Event {
	if len(events) == 0 {
		return nil
	}
	out := make([]core.Event, 0, len(events))
	for _, ev := range events {
		switch ev.Kind {
		case engine.EventMoved:
			out = append(out, core.Event{Kind: core.EventMove})
		case engine.EventRotated:
			out = append(out, core.Event{Kind: core.EventRotate})
		case engine.EventHeld:
			out = append(out, core.Event{Kind: core.EventHold})
		case engine.EventLocked:
			out = append(out, core.Event{Kind: core.EventLock})
		case engine.EventLinesCleared:
			out = append(out, core.Event{Kind: core.EventLineClear, Value: ev.Lines})
		case engine.EventLevelUp:
			out = append(out, core.Event{Kind: core.EventLevelUp, Value: ev.Level})
		case engine.EventGameOver:
			out = append(out, core.Event{Kind: core.EventGameOver})
		case engine.EventRestarted:
			out = append(out, core.Event{Kind: core.EventRestart})
		}
	}
	return out
}

func init() {
	registry.Register(registry.GameInfo{
		ID:          "tetris",
		Title:       "Tetris",
		Description: "SRS rotation, uniform random pieces",
	}, func() registry.Game {
		return New()
	})
	registry.Register(registry.GameInfo{
		ID:          "tetris_bag",
		Title:       "Tetris (7-bag)",
		Description: "Every piece once per seven",
	}, func() registry.Game {
		return NewBag()
	})
}

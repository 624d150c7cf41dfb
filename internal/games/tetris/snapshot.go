package tetris

import "github.com/vovakirdan/blockfall/internal/engine"

// Snapshot is the game state plus platform-level bookkeeping.
type Snapshot struct {
	Tick   uint64
	Paused bool
	Engine engine.Snapshot
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:   g.tick,
		Paused: g.paused,
		Engine: g.eng.Snapshot(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	e := &snap.Engine
	h := snap.Tick
	h = h*31 + uint64(e.Score)           //#nosec G115 -- hash computation
	h = h*31 + uint64(e.Lines)           //#nosec G115 -- hash computation
	h = h*31 + uint64(e.Level)           //#nosec G115 -- hash computation
	h = h*31 + uint64(e.Mode)            //#nosec G115 -- hash computation
	h = h*31 + uint64(e.Next)            //#nosec G115 -- hash computation
	h = h*31 + uint64(e.Hold.Piece)      //#nosec G115 -- hash computation
	h = h*31 + uint64(e.Active.Type)     //#nosec G115 -- hash computation
	h = h*31 + uint64(e.Active.Rotation) //#nosec G115 -- hash computation
	h = h*31 + uint64(e.Active.Pivot.X)  //#nosec G115 -- hash computation
	h = h*31 + uint64(e.Active.Pivot.Y)  //#nosec G115 -- hash computation
	if e.HasActive {
		h = h*31 + 1
	}
	if e.Hold.CanHold {
		h = h*31 + 1
	}
	for _, row := range e.Board {
		for _, c := range row {
			h = h*31 + uint64(c)
		}
	}
	return h
}

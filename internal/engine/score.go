package engine

import (
	"math"
	"time"
)

// LinesPerLevel is the number of cleared lines between level increases.
const LinesPerLevel = 10

// Gravity describes the fall interval curve:
// interval(level) = max(Min, Base * Decay^(level-1)).
type Gravity struct {
	Base  time.Duration
	Decay float64
	Min   time.Duration
}

// DefaultGravity returns the standard curve: 0.5s at level 1, shrinking by
// a factor of 0.8 per level, never below 50ms.
func DefaultGravity() Gravity {
	return Gravity{
		Base:  500 * time.Millisecond,
		Decay: 0.8,
		Min:   50 * time.Millisecond,
	}
}

// Interval returns the gravity interval at the given level.
func (g Gravity) Interval(level int) time.Duration {
	if level < 1 {
		level = 1
	}
	seconds := g.Base.Seconds() * math.Pow(g.Decay, float64(level-1))
	interval := time.Duration(seconds * float64(time.Second))
	if interval < g.Min {
		return g.Min
	}
	return interval
}

// LineClearPoints returns the score awarded for clearing k rows in a single
// lock: 100, 200, 400, 800 for k = 1..4 and 0 for k = 0.
func LineClearPoints(k int) int {
	if k <= 0 {
		return 0
	}
	return 100 << (k - 1)
}

// LevelForLines returns the level reached after clearing the given total.
func LevelForLines(lines int) int {
	return lines/LinesPerLevel + 1
}

// ScoreState tracks cumulative score, lines and the derived level.
type ScoreState struct {
	Score int
	Lines int
	Level int
}

func newScoreState() ScoreState {
	return ScoreState{Level: 1}
}

// apply records one lock event that cleared k rows. It reports whether the
// level increased.
func (s *ScoreState) apply(k int) bool {
	if k <= 0 {
		return false
	}
	s.Score += LineClearPoints(k)
	s.Lines += k
	level := LevelForLines(s.Lines)
	if level > s.Level {
		s.Level = level
		return true
	}
	return false
}

// gravityTimer accumulates elapsed time and fires at most once per advance.
type gravityTimer struct {
	interval time.Duration
	elapsed  time.Duration
}

// advance adds dt and reports whether the interval elapsed. Missed
// intervals are not batched: the remainder is kept modulo the interval.
func (t *gravityTimer) advance(dt time.Duration) bool {
	if dt > 0 {
		t.elapsed += dt
	}
	if t.interval <= 0 {
		t.elapsed = 0
		return true
	}
	if t.elapsed < t.interval {
		return false
	}
	t.elapsed %= t.interval
	return true
}

func (t *gravityTimer) reset(interval time.Duration) {
	t.interval = interval
	t.elapsed = 0
}

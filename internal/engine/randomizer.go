package engine

import (
	"fmt"
	"math/rand"
)

// Randomizer produces the sequence of upcoming piece types.
type Randomizer interface {
	Next() PieceType
}

// RandomizerKind names a randomizer implementation.
type RandomizerKind string

const (
	// RandomUniform draws each piece independently with replacement.
	RandomUniform RandomizerKind = "uniform"
	// RandomBag deals all seven pieces in shuffled batches.
	RandomBag RandomizerKind = "bag"
)

// NewRandomizer creates a seeded randomizer of the given kind.
func NewRandomizer(kind RandomizerKind, seed int64) (Randomizer, error) {
	switch kind {
	case RandomUniform, "":
		return NewUniform(seed), nil
	case RandomBag:
		return NewBag(seed), nil
	default:
		return nil, fmt.Errorf("engine: unknown randomizer %q", kind)
	}
}

// Uniform picks every piece uniformly at random. Streaks and droughts are
// possible.
type Uniform struct {
	rng *rand.Rand
}

// NewUniform creates a uniform randomizer.
func NewUniform(seed int64) *Uniform {
	return &Uniform{rng: rand.New(rand.NewSource(seed))}
}

// Next returns the next piece type.
func (u *Uniform) Next() PieceType {
	return AllPieces[u.rng.Intn(PieceCount)]
}

// Bag deals the seven piece types in random order, reshuffling once the
// batch is exhausted, so every type appears exactly once per seven draws.
type Bag struct {
	rng  *rand.Rand
	bag  []PieceType
	next int
}

// NewBag creates a 7-bag randomizer.
func NewBag(seed int64) *Bag {
	return &Bag{rng: rand.New(rand.NewSource(seed))}
}

// Next returns the next piece type.
func (b *Bag) Next() PieceType {
	if b.next >= len(b.bag) {
		b.refill()
	}
	p := b.bag[b.next]
	b.next++
	return p
}

func (b *Bag) refill() {
	b.bag = append(b.bag[:0], AllPieces[:]...)
	b.rng.Shuffle(len(b.bag), func(i, j int) {
		b.bag[i], b.bag[j] = b.bag[j], b.bag[i]
	})
	b.next = 0
}

// sequence replays a fixed list of pieces, cycling when exhausted.
// Used to script deterministic games.
type sequence struct {
	pieces []PieceType
	pos    int
}

// NewSequence returns a randomizer that yields pieces in the given order,
// repeating from the start once exhausted. It panics on an empty list.
func NewSequence(pieces ...PieceType) Randomizer {
	if len(pieces) == 0 {
		panic("engine: empty piece sequence")
	}
	return &sequence{pieces: append([]PieceType(nil), pieces...)}
}

func (s *sequence) Next() PieceType {
	p := s.pieces[s.pos%len(s.pieces)]
	s.pos++
	return p
}

package engine

// kickPair is an ordered (from, to) rotation transition.
type kickPair struct {
	from, to Rotation
}

// Wall kick data from the SRS reference, y pointing up. Each list is tried in
// order and the first entry is always the identity offset.
var (
	jlstzKicks = map[kickPair][]Point{
		{0, 1}: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
		{1, 0}: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
		{1, 2}: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
		{2, 1}: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
		{2, 3}: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
		{3, 2}: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
		{3, 0}: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
		{0, 3}: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	}

	iKicks = map[kickPair][]Point{
		{0, 1}: {{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
		{1, 0}: {{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
		{1, 2}: {{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
		{2, 1}: {{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
		{2, 3}: {{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
		{3, 2}: {{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
		{3, 0}: {{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
		{0, 3}: {{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
	}

	identityKick = []Point{{0, 0}}
)

// Kicks returns the candidate pivot corrections for rotating piece t from
// one state to another, in priority order. Pairs that are not adjacent
// rotations, and every pair for O, yield only the identity offset.
// The returned slice must not be modified.
func Kicks(t PieceType, from, to Rotation) []Point {
	var table map[kickPair][]Point
	switch t {
	case PieceO:
		return identityKick
	case PieceI:
		table = iKicks
	default:
		table = jlstzKicks
	}
	if kicks, ok := table[kickPair{from % 4, to % 4}]; ok {
		return kicks
	}
	return identityKick
}

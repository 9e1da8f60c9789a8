package engine

// Rand is the random source the bag draws permutations from.
// *math/rand.Rand satisfies it.
type Rand interface {
	// Intn returns a uniform value in [0, n).
	Intn(n int) int
}

// Bag produces an infinite sequence of piece types using the 7-bag rule:
// every aligned run of seven draws contains each piece type exactly once.
type Bag struct {
	rng      Rand
	shuffled [PieceCount]PieceType
	index    int
}

// NewBag creates a bag drawing from rng. The first call to Next shuffles.
func NewBag(rng Rand) *Bag {
	return &Bag{
		rng:   rng,
		index: PieceCount,
	}
}

// Next returns the next piece type, refilling the bag when it is empty.
func (b *Bag) Next() PieceType {
	if b.index == PieceCount {
		b.refill()
	}

	p := b.shuffled[b.index]
	b.index++
	return p
}

// refill draws a fresh uniform permutation (Fisher-Yates) and rewinds the cursor.
func (b *Bag) refill() {
	b.shuffled = AllPieces
	for i := PieceCount - 1; i > 0; i-- {
		j := b.rng.Intn(i + 1)
		b.shuffled[i], b.shuffled[j] = b.shuffled[j], b.shuffled[i]
	}
	b.index = 0
}

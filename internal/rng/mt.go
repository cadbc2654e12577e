package rng

const (
	mtN         = 624
	mtM         = 397
	mtUpperMask = 0x80000000
	mtLowerMask = 0x7fffffff
	mtInitMul   = 1812433253
)

var mtMag01 = [2]uint32{0, 0x9908b0df}

// MT19937 is the 32-bit Mersenne Twister.
type MT19937 struct {
	state [mtN]uint32
	index int
}

// NewMT19937 returns a twister seeded with seed.
func NewMT19937(seed uint32) *MT19937 {
	g := &MT19937{}
	g.Reset(seed)
	return g
}

// Reset re-initialises the state array from seed.
func (g *MT19937) Reset(seed uint32) {
	g.state[0] = seed
	for i := 1; i < mtN; i++ {
		prev := g.state[i-1]
		g.state[i] = mtInitMul*(prev^(prev>>30)) + uint32(i)
	}
	g.index = mtN
}

// generateWords twists the whole state array.
func (g *MT19937) generateWords() {
	for i := 0; i < mtN; i++ {
		y := (g.state[i] & mtUpperMask) | (g.state[(i+1)%mtN] & mtLowerMask)
		g.state[i] = g.state[(i+mtM)%mtN] ^ (y >> 1) ^ mtMag01[y&1]
	}
	g.index = 0
}

// Next returns the next tempered word.
func (g *MT19937) Next() uint32 {
	if g.index >= mtN {
		g.generateWords()
	}
	y := g.state[g.index]
	g.index++

	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18
	return y
}

package rng

// Complementary multiply-with-carry generator (Marsaglia).
const (
	cmwcCycle      = 512 // lag table size, must be a power of two
	cmwcMultiplier = 18782
	cmwcModulus    = 0xfffffffe
	cmwcCarryMax   = 809430660
)

// CMWC is a lag-512 complementary multiply-with-carry generator.
type CMWC struct {
	q [cmwcCycle]uint32
	c uint32
	i uint32
}

// NewCMWC seeds a CMWC generator. The lag table is filled from a xorshift
// stream derived from seed and the initial carry is rejection-sampled below
// cmwcCarryMax.
func NewCMWC(seed uint32) *CMWC {
	s := newSeeder(seed)
	g := &CMWC{}
	for i := range g.q {
		g.q[i] = s.next()
	}
	g.c = s.next()
	for g.c >= cmwcCarryMax {
		g.c = s.next()
	}
	g.i = cmwcCycle - 1
	return g
}

// Next returns the next word.
func (g *CMWC) Next() uint32 {
	g.i = (g.i + 1) & (cmwcCycle - 1)
	t := uint64(cmwcMultiplier)*uint64(g.q[g.i]) + uint64(g.c)
	g.c = uint32(t >> 32)
	x := uint32(t) + g.c
	if x < g.c {
		x++
		g.c++
	}
	g.q[g.i] = cmwcModulus - x
	return g.q[g.i]
}

// seeder is a xorshift32 stream used only to expand a seed into the lag table.
type seeder struct {
	s uint32
}

func newSeeder(seed uint32) *seeder {
	s := seed ^ 0x9e3779b9
	if s == 0 {
		s = 0x6d2b79f5
	}
	return &seeder{s: s}
}

func (x *seeder) next() uint32 {
	x.s ^= x.s << 13
	x.s ^= x.s >> 17
	x.s ^= x.s << 5
	return x.s
}

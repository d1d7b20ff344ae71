package geo

import (
	"hash/fnv"
	"strconv"
)

// Rand is a xorshift64 generator. The zero value is not usable; use NewRand
// or SeedRand.
type Rand struct {
	state uint64
}

// NewRand returns a generator for the given seed. A zero seed is remapped
// because xorshift never leaves the all-zero state.
func NewRand(seed uint64) *Rand {
	if seed == 0 {
		seed = 0x9E3779B97F4A7C15
	}
	return &Rand{state: seed}
}

// SeedRand derives a generator from a string key, a floor position and an
// index, so the same item in the same place always draws the same numbers.
func SeedRand(key string, x, z float64, index int) *Rand {
	h := fnv.New64a()
	h.Write([]byte(key))
	h.Write([]byte{0})
	h.Write([]byte(strconv.FormatFloat(x, 'f', 4, 64)))
	h.Write([]byte{0})
	h.Write([]byte(strconv.FormatFloat(z, 'f', 4, 64)))
	h.Write([]byte{0})
	h.Write([]byte(strconv.Itoa(index)))
	return NewRand(h.Sum64())
}

// Next advances the generator (shifts 13, 7, 17).
func (r *Rand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	r.state = x
	return x
}

// Float64 returns a value in [0, 1).
func (r *Rand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Range returns a value in [lo, hi).
func (r *Rand) Range(lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float64()
}

// Signed returns a value in [-amp, amp).
func (r *Rand) Signed(amp float64) float64 {
	return (r.Float64()*2 - 1) * amp
}

// Intn returns a value in [0, n). It returns 0 for n <= 0.
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

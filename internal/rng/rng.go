// Package rng provides the pipeline's deterministic random stream.
// Every layer of the generator forks its own child stream from this one
// (see design doc / spec §4.1, §9 "Random-stream forking") so that two
// runs with the same (width, height, seed) are bit-exact regardless of
// how much work any one layer does with its share of randomness.
//
// The underlying generator is a 32-bit mulberry32-style mixer, chosen
// deliberately over math/rand: math/rand's algorithm is not specified
// to be stable across Go versions, and the spec requires byte-identical
// output forever, not merely "statistically similar". See DESIGN.md.
package rng

import "math"

// Stream is a forkable, seedable deterministic random source.
type Stream struct {
	state uint32
}

// New creates a stream seeded from the given 32-bit value. Negative or
// out-of-range seeds are folded into uint32 range.
func New(seed int64) *Stream {
	return &Stream{state: uint32(seed)}
}

// nextUint32 advances the mixer and returns the next raw 32-bit value.
func (s *Stream) nextUint32() uint32 {
	s.state += 0x6D2B79F5
	t := s.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return t ^ (t >> 14)
}

// Next returns a float64 in [0,1).
func (s *Stream) Next() float64 {
	return float64(s.nextUint32()) / 4294967296.0
}

// NextInt returns an integer in [a,b], inclusive of both ends.
func (s *Stream) NextInt(a, b int) int {
	if b <= a {
		return a
	}
	span := b - a + 1
	v := a + int(s.Next()*float64(span))
	if v > b {
		v = b
	}
	return v
}

// NextFloat returns a float64 in [a,b).
func (s *Stream) NextFloat(a, b float64) float64 {
	return a + s.Next()*(b-a)
}

// Chance returns true with probability p.
func (s *Stream) Chance(p float64) bool {
	return s.Next() < p
}

// Pick returns a uniformly random element of seq. Panics on empty input,
// same as indexing an empty slice would.
func Pick[T any](s *Stream, seq []T) T {
	return seq[s.NextInt(0, len(seq)-1)]
}

// Shuffle permutes seq in place using Fisher-Yates, iterating from the
// last index down to 1 as required by spec §4.1.
func Shuffle[T any](s *Stream, seq []T) {
	for i := len(seq) - 1; i > 0; i-- {
		j := s.NextInt(0, i)
		seq[i], seq[j] = seq[j], seq[i]
	}
}

// Weighted is one candidate in a WeightedPick call.
type Weighted[T any] struct {
	Item   T
	Weight float64
}

// WeightedPick rolls a uniform fraction of the total weight and walks
// the list subtracting each candidate's weight until it underruns.
// Per spec §9 "weighted selection edge case", floating point rounding
// can leave the running sum positive after the last subtraction; the
// final item is always returned in that case rather than skipped.
func WeightedPick[T any](s *Stream, items []Weighted[T]) T {
	var total float64
	for _, it := range items {
		total += it.Weight
	}
	r := s.Next() * total
	for _, it := range items {
		r -= it.Weight
		if r <= 0 {
			return it.Item
		}
	}
	return items[len(items)-1].Item
}

// Gaussian draws from a normal distribution via Box-Muller, consuming
// exactly two successive Next() calls.
func (s *Stream) Gaussian(mean, stddev float64) float64 {
	u1 := s.Next()
	u2 := s.Next()
	if u1 <= 0 {
		u1 = 1e-12
	}
	z0 := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
	return mean + z0*stddev
}

// Fork draws one integer from this stream and uses it to seed a new,
// independent child stream. This is the only sanctioned way layers
// acquire their own stream — see spec §9.
func (s *Stream) Fork() *Stream {
	seed := s.NextInt(0, 2147483647)
	return New(int64(seed))
}

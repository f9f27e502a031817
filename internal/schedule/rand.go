// Poemclock - Poem/1 Compatible Time-Synchronized Content Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/poemclock

package schedule

// lcgModulus, lcgMultiplier and lcgIncrement are the parameters of the
// classic Lehmer-style generator used for daily shuffles. They are part of
// the wire-level contract: changing them changes every published schedule.
const (
	lcgMultiplier = 9301
	lcgIncrement  = 49297
	lcgModulus    = 233280
)

// SeededRand is a linear congruential generator producing a deterministic
// stream of floats in [0,1) from an integer seed. The same seed always
// yields the same sequence.
//
// A SeededRand has a single logical owner for the duration of one schedule
// build; it is not safe for concurrent use.
type SeededRand struct {
	state int64
}

// NewSeededRand returns a generator seeded with the given value.
func NewSeededRand(seed int64) *SeededRand {
	return &SeededRand{state: seed}
}

// Next advances the generator and returns the next value in [0,1).
func (r *SeededRand) Next() float64 {
	r.state = (r.state*lcgMultiplier + lcgIncrement) % lcgModulus
	// Go's % keeps the dividend's sign; fold negative states back into
	// [0, modulus) so the [0,1) contract holds for any seed.
	if r.state < 0 {
		r.state += lcgModulus
	}
	return float64(r.state) / lcgModulus
}

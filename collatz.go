package collatz

import "iter"

// Step applies one Collatz transition to n.
// Odd n maps to 3n+1, which wraps modulo 2^64.
func Step(n uint64) uint64 {
	if n%2 == 0 {
		return n / 2
	}
	return 3*n + 1
}

// Length returns the number of steps needed for n to reach 1.
// ok is false when n is 0, which has no Collatz sequence.
// Length(1) is 0.
func Length(n uint64) (steps uint64, ok bool) {
	if n < 1 {
		return 0, false
	}
	for n > 1 {
		n = Step(n)
		steps++
	}
	return steps, true
}

// Steps is Length for signed input. ok is false for n < 1.
func Steps(n int64) (steps uint64, ok bool) {
	if n < 1 {
		return 0, false
	}
	return Length(uint64(n))
}

// Trajectory yields n followed by every value Length visits on the way down.
// It yields nothing for 0. For n >= 1 it yields Length(n)+1 values, the last
// of which is 1 unless overflow wrapped the sequence to 0.
func Trajectory(n uint64) iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		if n < 1 {
			return
		}
		if !yield(n) {
			return
		}
		for v := n; v > 1; {
			v = Step(v)
			if !yield(v) {
				return
			}
		}
	}
}

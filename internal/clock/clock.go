// Package clock abstracts time capture so the store can be tested
// against a fixed clock instead of the wall clock.
package clock

import "time"

// Clock supplies the current time for timestamping mutations.
type Clock interface {
	Now() time.Time
}

// System reads the wall clock in the local zone; when no local zone
// information is available the returned time carries UTC.
type System struct{}

// Now returns the current local time.
func (System) Now() time.Time {
	return time.Now()
}

// Fixed is a clock pinned to a single instant, for tests.
type Fixed struct {
	T time.Time
}

// Now returns the pinned instant.
func (f Fixed) Now() time.Time {
	return f.T
}

// Sequence returns each configured instant in order, repeating the
// last one once the sequence is exhausted.
type Sequence struct {
	Times []time.Time
	next  int
}

// Now returns the next instant in the sequence.
func (s *Sequence) Now() time.Time {
	if len(s.Times) == 0 {
		return time.Time{}
	}
	if s.next >= len(s.Times) {
		return s.Times[len(s.Times)-1]
	}
	t := s.Times[s.next]
	s.next++
	return t
}

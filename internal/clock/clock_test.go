package clock

import (
	"testing"
	"time"
)

func TestFixedReturnsPinnedInstant(t *testing.T) {
	want := time.Date(2026, 8, 29, 10, 30, 0, 0, time.UTC)
	c := Fixed{T: want}

	if got := c.Now(); !got.Equal(want) {
		t.Errorf("Now = %v, want %v", got, want)
	}
	if got := c.Now(); !got.Equal(want) {
		t.Errorf("second Now = %v, want %v", got, want)
	}
}

func TestSequenceAdvancesThenRepeats(t *testing.T) {
	t0 := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	t1 := t0.Add(time.Minute)
	c := &Sequence{Times: []time.Time{t0, t1}}

	if got := c.Now(); !got.Equal(t0) {
		t.Errorf("first Now = %v, want %v", got, t0)
	}
	if got := c.Now(); !got.Equal(t1) {
		t.Errorf("second Now = %v, want %v", got, t1)
	}
	if got := c.Now(); !got.Equal(t1) {
		t.Errorf("exhausted Now = %v, want %v", got, t1)
	}
}

func TestSystemReturnsCurrentTime(t *testing.T) {
	before := time.Now().Add(-time.Second)
	got := System{}.Now()
	after := time.Now().Add(time.Second)

	if got.Before(before) || got.After(after) {
		t.Errorf("Now = %v, outside [%v, %v]", got, before, after)
	}
}

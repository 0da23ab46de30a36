package status

import (
	"math"
	"sync/atomic"
)

// Float is a float64 gauge stored as its IEEE bits
type Float struct {
	bits atomic.Uint64
}

func (f *Float) Store(v float64) { f.bits.Store(math.Float64bits(v)) }
func (f *Float) Load() float64   { return math.Float64frombits(f.bits.Load()) }

// MaxTextLen bounds Text values; a match id fits
const MaxTextLen = 36

// Text is a short string value, truncated to MaxTextLen
type Text struct {
	p atomic.Pointer[string]
}

func (s *Text) Store(v string) {
	if len(v) > MaxTextLen {
		v = v[:MaxTextLen]
	}
	s.p.Store(&v)
}

func (s *Text) Load() string {
	if p := s.p.Load(); p != nil {
		return *p
	}
	return ""
}

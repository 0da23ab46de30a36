package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metric keys published by the engine
const (
	KeyTicks   = "engine.ticks"
	KeyHits    = "match.hits"
	KeyBounces = "match.bounces"
	KeyPoints  = "match.points"
	KeyMatchID = "match.id"
	KeyPaused  = "engine.paused"

	KeyBallSpeed = "match.ball_speed"
)

// Registry is the central metrics facade
// The engine caches pointers at construction; the tick loop writes directly to atomics
type Registry struct {
	Bools   *Table[atomic.Bool]
	Ints    *Table[atomic.Int64]
	Floats  *Table[Float]
	Strings *Table[Text]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   newTable[atomic.Bool](),
		Ints:    newTable[atomic.Int64](),
		Floats:  newTable[Float](),
		Strings: newTable[Text](),
	}
}

// Summary formats counters, gauges, then text values as "key=value" pairs in key order
func (r *Registry) Summary() string {
	var parts []string
	r.Ints.Each(func(key string, v *atomic.Int64) {
		parts = append(parts, fmt.Sprintf("%s=%d", key, v.Load()))
	})
	r.Floats.Each(func(key string, v *Float) {
		parts = append(parts, fmt.Sprintf("%s=%.1f", key, v.Load()))
	})
	r.Strings.Each(func(key string, v *Text) {
		parts = append(parts, fmt.Sprintf("%s=%s", key, v.Load()))
	})
	return strings.Join(parts, " ")
}

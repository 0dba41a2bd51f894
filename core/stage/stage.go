// Package stage provides an ordered, fold-composed collection of
// configuration stages for one subsystem. An Accumulator collects named
// transformations of a subsystem-builder value and composes them, in
// declaration order, into a single transformer applied once at Finalize.
//
// Accumulator is a persistent value type: Append returns a new accumulator
// and never mutates the receiver, so partially-built accumulators can be
// shared and extended independently.
//
//	logging := stage.Empty[*slog.LevelVar]().
//		Append(func(v *slog.LevelVar) *slog.LevelVar { v.Set(slog.LevelDebug); return v })
//	v := logging.Finalize(new(slog.LevelVar))
package stage

// Stage transforms a subsystem-builder value into its successor.
type Stage[B any] func(B) B

// Predicate gates a conditional stage. It is evaluated once, at Finalize
// time, against the builder value as produced by all preceding stages.
type Predicate[B any] func(B) bool

// entry is the tagged stage variant: unconditional (pred == nil) or
// predicate-gated.
type entry[B any] struct {
	pred  Predicate[B]
	stage Stage[B]
}

// Accumulator is an ordered collection of stages for one subsystem.
// The zero value is usable and equivalent to Empty.
type Accumulator[B any] struct {
	entries []entry[B]
}

// Empty returns an accumulator whose Finalize is the identity transformer.
func Empty[B any]() Accumulator[B] {
	return Accumulator[B]{}
}

// Append returns a new accumulator with the stage added after all existing
// ones. Declaration order is preserved; stages are never reordered or
// deduplicated.
func (a Accumulator[B]) Append(s Stage[B]) Accumulator[B] {
	return a.append(entry[B]{stage: s})
}

// AppendIf returns a new accumulator with a conditional stage. The predicate
// runs at Finalize time against the live builder value; when false, the
// stage is identity at its position and the accumulated state passes through
// unchanged.
func (a Accumulator[B]) AppendIf(p Predicate[B], s Stage[B]) Accumulator[B] {
	if p == nil {
		return a.Append(s)
	}
	return a.append(entry[B]{pred: p, stage: s})
}

// AppendIfNot is AppendIf with the predicate negated.
func (a Accumulator[B]) AppendIfNot(p Predicate[B], s Stage[B]) Accumulator[B] {
	if p == nil {
		return a.Append(s)
	}
	return a.AppendIf(func(b B) bool { return !p(b) }, s)
}

// Len reports the number of declared stages, conditional ones included.
func (a Accumulator[B]) Len() int {
	return len(a.entries)
}

// Finalize folds all declared stages over the initial builder value, in
// declaration order, and returns the result. The accumulator itself is a
// value and remains unchanged, but by contract it is consumed here: callers
// must not finalize the same declaration set twice against live subsystems.
func (a Accumulator[B]) Finalize(initial B) B {
	b := initial
	for _, e := range a.entries {
		if e.pred != nil && !e.pred(b) {
			continue
		}
		b = e.stage(b)
	}
	return b
}

// append copies the entry slice so sibling accumulators derived from the
// same value never observe each other's stages.
func (a Accumulator[B]) append(e entry[B]) Accumulator[B] {
	entries := make([]entry[B], len(a.entries), len(a.entries)+1)
	copy(entries, a.entries)
	return Accumulator[B]{entries: append(entries, e)}
}

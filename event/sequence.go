package event

import "sync/atomic"

// Once wraps seq so it can be ranged over a single time; later ranges yield nothing.
// Algorithms own mutable scratch state, so replaying them is never meaningful.
func Once[T any](seq Sequence[T]) Sequence[T] {
	var used atomic.Bool

	return func(yield func(Event[T]) bool) {
		if !used.CompareAndSwap(false, true) {
			return
		}
		seq(yield)
	}
}

// Collect drains seq into a slice.
func Collect[T any](seq Sequence[T]) []Event[T] {
	var out []Event[T]
	for ev := range seq {
		out = append(out, ev)
	}

	return out
}

// Last drains seq and returns its final event; ok is false for an empty sequence.
func Last[T any](seq Sequence[T]) (last Event[T], ok bool) {
	for ev := range seq {
		last, ok = ev, true
	}

	return last, ok
}

// Filter returns the events of evs whose kind is k, preserving order.
func Filter[T any](evs []Event[T], k Kind) []Event[T] {
	var out []Event[T]
	for _, ev := range evs {
		if ev.Kind == k {
			out = append(out, ev)
		}
	}

	return out
}

// Count returns how many events of evs have kind k.
func Count[T any](evs []Event[T], k Kind) int {
	n := 0
	for _, ev := range evs {
		if ev.Kind == k {
			n++
		}
	}

	return n
}

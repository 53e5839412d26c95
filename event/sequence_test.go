package event_test

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/searchviz/event"
)

// counting yields n Visit events followed by Completed and records how many were produced.
func counting(n int, produced *int) event.Sequence[int] {
	return func(yield func(event.Event[int]) bool) {
		for i := 0; i < n; i++ {
			*produced++
			if !yield(event.Event[int]{Kind: event.Visit, At: i}) {
				return
			}
		}
		*produced++
		yield(event.Event[int]{Kind: event.Completed})
	}
}

func TestOnce_SecondRangeIsEmpty(t *testing.T) {
	var produced int
	seq := event.Once(counting(3, &produced))

	first := event.Collect(seq)
	require.Len(t, first, 4)
	assert.Empty(t, event.Collect(seq))
	assert.Equal(t, 4, produced)
}

func TestSequence_LazyPull(t *testing.T) {
	var produced int
	next, stop := iter.Pull(counting(10, &produced))
	defer stop()

	ev, ok := next()
	require.True(t, ok)
	assert.Equal(t, 0, ev.At)
	assert.Equal(t, 1, produced, "producer must not run ahead of the consumer")

	_, _ = next()
	assert.Equal(t, 2, produced)
	stop()
	assert.Equal(t, 2, produced)
}

func TestLastFilterCount(t *testing.T) {
	var produced int
	last, ok := event.Last(counting(2, &produced))
	require.True(t, ok)
	assert.Equal(t, event.Completed, last.Kind)

	_, ok = event.Last(event.Once(counting(0, &produced)))
	assert.True(t, ok)

	evs := event.Collect(counting(3, &produced))
	assert.Equal(t, 3, event.Count(evs, event.Visit))
	assert.Len(t, event.Filter(evs, event.Completed), 1)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "target-found", event.TargetFound.String())
	assert.Equal(t, "kind(42)", event.Kind(42).String())
	assert.True(t, event.Unreachable.Terminal())
	assert.False(t, event.PathStep.Terminal())
}

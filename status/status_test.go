package status

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricMapGetCaches(t *testing.T) {
	m := NewMetricMap[Float]()
	a := m.Get("world.ticks")
	b := m.Get("world.ticks")
	require.Same(t, a, b)
	assert.True(t, m.Has("world.ticks"))
	assert.False(t, m.Has("missing"))
	assert.Equal(t, 1, m.Count())
}

func TestMetricMapConcurrentGet(t *testing.T) {
	m := NewMetricMap[Float]()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Get("shared").Add(1)
		}()
	}
	wg.Wait()
	assert.Equal(t, 16.0, m.Get("shared").Load())
}

func TestLabelTruncates(t *testing.T) {
	var l Label
	assert.Equal(t, "", l.Load())
	l.Store(strings.Repeat("x", 50))
	assert.Len(t, l.Load(), MaxLabelLen)

	// Multi-byte names are cut before a partial rune
	l.Store(strings.Repeat("x", 35) + "é")
	assert.Equal(t, strings.Repeat("x", 35), l.Load())
}

func TestRegistrySummarySorted(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get("combat.hits").Store(3)
	r.Ints.Get("alive").Store(2)
	r.Bools.Get("match.active").Store(true)
	r.Labels.Get("match.winner").Store("Ada")
	r.Floats.Get("match.elapsed").Store(1.5)

	assert.Equal(t, 5, r.TotalCount())
	assert.Equal(t, "match.winner=Ada match.active=true alive=2 combat.hits=3 match.elapsed=1.500", r.Summary())
	assert.Equal(t, []string{"alive", "combat.hits"}, r.Ints.Keys())
}

package bloom_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/wikipedia/bloom"
	"github.com/stretchr/testify/assert"
)

func TestFilter_AddAndTest(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	// Title not yet added should return false
	assert.False(t, f.Test("Edsger W. Dijkstra"))

	// Add title
	f.Add("Edsger W. Dijkstra")

	// Now it should return true
	assert.True(t, f.Test("Edsger W. Dijkstra"))

	// Different title should still return false
	assert.False(t, f.Test("Tony Hoare"))
}

func TestFilter_CanonicalTitles(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)
	f.Add("Edsger W. Dijkstra")

	assert.True(t, f.Test("Edsger_W._Dijkstra"))
	assert.True(t, f.Test("edsger W. Dijkstra"))
	assert.True(t, f.Test("  Edsger   W. Dijkstra "))
	assert.False(t, f.Test("Edsger w. dijkstra"))
}

func TestFilter_Seen(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	assert.False(t, f.Seen("Łódź"))
	assert.True(t, f.Seen("łódź"))
	assert.True(t, f.Test("Łódź"))
}

func TestFilter_EstimatedCount(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	// Empty filter should have count near 0
	assert.Equal(t, uint(0), f.EstimatedCount())

	for i := range 100 {
		f.Add(fmt.Sprintf("Page %d", i))
	}

	// Approximation within a reasonable margin
	assert.InDelta(t, 100, f.EstimatedCount(), 10)
}

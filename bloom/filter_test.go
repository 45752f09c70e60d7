package bloom_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/lexarchive/bloom"
	"github.com/stretchr/testify/assert"
)

func TestFilter_AddAndTest(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	assert.False(t, f.Test("https://en.wiktionary.org/wiki/amo"))

	f.Add("https://en.wiktionary.org/wiki/amo")

	assert.True(t, f.Test("https://en.wiktionary.org/wiki/amo"))
	assert.False(t, f.Test("https://en.wiktionary.org/wiki/amas"))
}

func TestFilter_EstimatedCount(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)
	assert.Equal(t, uint(0), f.EstimatedCount())

	for _, word := range []string{"amo", "amas", "amat"} {
		f.Add("https://en.wiktionary.org/wiki/" + word)
	}
	// Re-adding must not grow the estimate.
	f.Add("https://en.wiktionary.org/wiki/amo")

	count := f.EstimatedCount()
	assert.True(t, count >= 2 && count <= 4, "expected count near 3, got %d", count)
}

func TestFilter_FalsePositiveRate(t *testing.T) {
	t.Parallel()

	const n = 5000
	f := bloom.NewFilter(n, 0.01)
	for i := range n {
		f.Add(fmt.Sprintf("https://example.org/wiki/added-%d", i))
	}

	falsePositives := 0
	for i := range n {
		if f.Test(fmt.Sprintf("https://example.org/wiki/other-%d", i)) {
			falsePositives++
		}
	}

	rate := float64(falsePositives) / n
	assert.Less(t, rate, 0.02, "false positive rate %f exceeds 2%%", rate)
}

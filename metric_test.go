package statsd

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatLine(t *testing.T) {
	assert.Equal(t, "x:1|c", formatLine("", "x", "1", typeCounter, 1, ""))
	assert.Equal(t, "app.x:-1|c", formatLine("app.", "x", "-1", typeCounter, 1, ""))
	assert.Equal(t, "x:250|ms", formatLine("", "x", "250", typeTimer, 1, ""))
	assert.Equal(t, "x:3|h|#a:1,b:2", formatLine("", "x", "3", typeHistogram, 1, "|#a:1,b:2"))
}

func TestFormatLineRateSegment(t *testing.T) {
	line := formatLine("", "x", "1", typeCounter, 0.5, "")
	assert.Equal(t, "x:1|c|@0.500000", line)
	assert.Equal(t, 1, strings.Count(line, "|@"))

	assert.NotContains(t, formatLine("", "x", "1", typeCounter, 1, ""), "|@")
}

func TestFormatFloatSixDecimals(t *testing.T) {
	assert.Equal(t, "0.333333", formatFloat(1.0 / 3))
	assert.Equal(t, "2.500000", formatFloat(2.5))
	assert.Equal(t, "-0.000001", formatFloat(-0.0000005001))
}

func TestTagSuffixEmpty(t *testing.T) {
	assert.Equal(t, "", tagSuffix(nil, nil))
	assert.Equal(t, "", tagSuffix([]string{}, []string{}))
}

func TestTagSuffixOneSided(t *testing.T) {
	assert.Equal(t, "|#env:prod", tagSuffix([]string{"env:prod"}, nil))
	assert.Equal(t, "|#region:us", tagSuffix(nil, []string{"region:us"}))
}

// Constant tags come first, then call-site tags, each list in the order the
// caller supplied it.
func TestTagSuffixPreservesGivenOrder(t *testing.T) {
	suffix := tagSuffix([]string{"env:prod", "dc:east"}, []string{"region:us", "shard:3", "canary"})
	assert.Equal(t, "|#env:prod,dc:east,region:us,shard:3,canary", suffix)
}

func TestTagSuffixSeparators(t *testing.T) {
	suffix := tagSuffix([]string{"a", "b"}, []string{"c", "d", "e"})
	assert.True(t, strings.HasPrefix(suffix, "|#"))
	assert.Equal(t, 4, strings.Count(suffix, ","))
	assert.False(t, strings.HasSuffix(suffix, ","))
}

func TestSampleRateOneDrawsNoRandomness(t *testing.T) {
	for i := 0; i < 10000; i++ {
		emitted := sample(1.0, func() float64 {
			t.Fatal("randomness drawn for rate 1.0")
			return 0
		})
		assert.True(t, emitted)
	}
}

func TestSampleRateZeroNeverEmits(t *testing.T) {
	random := rand.New(rand.NewSource(1)).Float64
	for i := 0; i < 10000; i++ {
		if sample(0.0, random) {
			t.Fatal("emitted at rate 0.0")
		}
	}
}

func TestSampleThreshold(t *testing.T) {
	assert.True(t, sample(0.5, func() float64 { return 0.5 }))
	assert.True(t, sample(0.5, func() float64 { return 0.1 }))
	assert.False(t, sample(0.5, func() float64 { return 0.500001 }))
}

package numbers

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"1234", 1234, true},
		{"$1,234.50", 1234.50, true},
		{"  2,000 ", 2000, true},
		{`"3,500"`, 3500, true},
		{"45%", 45, true},
		{"-12.5", -12.5, true},
		{"€ 99", 99, true},
		{"1.2.3", 1.2, true},
		{"5-3", 5, true},
		{"7.", 7, true},
		{"abc", 0, false},
		{"", 0, false},
		{"-", 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := Normalize(tc.in)
			assert.Equal(t, tc.ok, ok)
			assert.InDelta(t, tc.want, got, 1e-9)
		})
	}
}

func TestNormalizeIsIdempotentOnCleanInput(t *testing.T) {
	for _, in := range []string{"0", "1234", "1234.5", "-7"} {
		first, ok := Normalize(in)
		assert.True(t, ok)

		second, ok := Normalize(strconv.FormatFloat(first, 'f', -1, 64))
		assert.True(t, ok)
		assert.Equal(t, first, second)
	}
}

func TestParseCount(t *testing.T) {
	assert.Equal(t, 1234, ParseCount("1,234"))
	assert.Equal(t, 12, ParseCount("12.7"))
	assert.Equal(t, 0, ParseCount("abc"))
	assert.Equal(t, 0, ParseCount("-5"))
}

func TestParseCost(t *testing.T) {
	assert.Equal(t, 1234.5, ParseCost("$1,234.50"))
	assert.Equal(t, 0.0, ParseCost("n/a"))
	assert.Equal(t, 0.0, ParseCost("-10"))
}

func TestParseGoal(t *testing.T) {
	assert.True(t, math.IsNaN(ParseGoal("abc")))
	assert.Equal(t, 40.0, ParseGoal("40%"))
	assert.Equal(t, 7_000_000.0, ParseGoal("$7,000,000"))
}

package detect

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMooreTrace(t *testing.T) {
	td := []struct {
		name   string
		stream string
		expect string
	}{
		{"basic", "1011", "00001"},
		{"overlap", "1011011", "00001001"},
		{"consecutive overlaps", "10111011", "000010001"},
		{"all zeros", "0000000", "00000000"},
		{"alternating", "1010101010", "00000000000"},
		{"empty", "", "0"},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			trace, err := MooreTrace(d.stream)
			require.NoError(t, err)
			assert.Equal(t, d.expect, formatTrace(trace))
		})
	}
}

// The Moore output asserts one cycle after the final 1 of a match and
// holds for exactly one cycle.
func TestMooreLatencyAndWidth(t *testing.T) {
	s := Reset()
	var detected bool
	for _, b := range []bool{true, false, true, true} {
		s, detected = MooreStep(s, b)
		require.False(t, detected, "no detection while the match is still in flight")
	}
	require.Equal(t, Saw1011, s)
	require.True(t, MooreOutput(s))

	// one more cycle: the output asserts, then the state moves on and
	// the output drops
	s, detected = MooreStep(s, false)
	assert.True(t, detected)
	assert.Equal(t, Saw10, s)
	_, detected = MooreStep(s, false)
	assert.False(t, detected)
}

// The Moore trace is the Mealy trace delayed by one cycle.
func TestMooreIsDelayedMealy(t *testing.T) {
	rng := rand.New(rand.NewSource(1101))
	for i := 0; i < 50; i++ {
		stream := randStream(rng, 48)
		mealy, err := MealyTrace(stream)
		require.NoError(t, err)
		moore, err := MooreTrace(stream)
		require.NoError(t, err)
		require.Len(t, moore, len(mealy)+1)
		assert.False(t, moore[0])
		for j := range mealy {
			assert.Equal(t, mealy[j], moore[j+1], "stream %s offset %d", stream, j)
		}
	}
}

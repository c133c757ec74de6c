package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Both next-state functions must be total: every (state, input) pair,
// including out of range state values, maps to a valid state.
func TestStepTotality(t *testing.T) {
	steps := map[string]func(State, bool) (State, bool){
		"mealy": MealyStep,
		"moore": MooreStep,
	}
	for name, step := range steps {
		t.Run(name, func(t *testing.T) {
			for s := State(0); s < 8; s++ {
				for _, bit := range []bool{false, true} {
					next, _ := step(s, bit)
					assert.Less(t, next, numStates, "step(%v, %v)", s, bit)
				}
			}
		})
	}
}

// Out of range states must recover to the Idle successor path.
func TestStepOutOfRangeRecovers(t *testing.T) {
	for s := numStates; s < 8; s++ {
		next, detected := MealyStep(s, true)
		assert.Equal(t, Idle, next)
		assert.False(t, detected)
		next, detected = MooreStep(s, true)
		assert.Equal(t, Idle, next)
		assert.False(t, detected)
	}
	// Saw1011 is not a Mealy state; it recovers too
	next, _ := MealyStep(Saw1011, true)
	assert.Equal(t, Idle, next)
}

func TestResetIdempotent(t *testing.T) {
	s := Reset()
	require.Equal(t, Idle, s)
	for i := 0; i < 3; i++ {
		s = Reset()
		assert.Equal(t, Idle, s)
	}
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "Idle", Idle.String())
	assert.Equal(t, "Saw1011", Saw1011.String())
	assert.Equal(t, "State(7)", State(7).String())
}

func TestParseStream(t *testing.T) {
	bits, err := ParseStream("1011")
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, true, true}, bits)

	_, err = ParseStream("10x1")
	assert.Error(t, err)
}

package detect_test

import (
	"testing"

	"github.com/synbit/seqsim"
	"github.com/synbit/seqsim/detect"
	"github.com/synbit/seqsim/seqtest"
)

// The behavioral parts and their gate-level builds must agree cycle for
// cycle, state encoding included, under arbitrary input and reset
// streams.

func TestMealyGateLevel(t *testing.T) {
	gl, err := detect.Mealy1011Chip()
	if err != nil {
		t.Fatal(err)
	}
	seqtest.ComparePart(t, 16, detect.Mealy1011, gl)
}

func TestMooreGateLevel(t *testing.T) {
	gl, err := detect.Moore1011Chip()
	if err != nil {
		t.Fatal(err)
	}
	seqtest.ComparePart(t, 16, detect.Moore1011, gl)
}

// A Moore detector is a Mealy detector with a registered output: wrap
// the behavioral Moore part down to its out pin and compare it against
// the Mealy part followed by a reset-gated DFF.
func TestMooreEqualsRegisteredMealy(t *testing.T) {
	mo, err := seqsim.Chip("MOORE_OUT", "in, reset", "out", seqsim.Parts{
		detect.Moore1011("in=in, reset=reset, out=out"),
	})
	if err != nil {
		t.Fatal(err)
	}
	reg, err := detect.MooreFromMealy()
	if err != nil {
		t.Fatal(err)
	}
	seqtest.ComparePart(t, 16, mo, reg)
}

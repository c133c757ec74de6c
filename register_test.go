package seqsim_test

import (
	"math/rand"
	"testing"
	"time"

	sim "github.com/synbit/seqsim"
	"github.com/synbit/seqsim/logic"
)

func TestDFF(t *testing.T) {
	var (
		in, out int64
	)

	dff4, err := sim.Chip("DFF4", "in[4]", "out[4]", sim.Parts{
		logic.DFF("in=in[0], out=out[0]"),
		logic.DFF("in=in[1], out=out[1]"),
		logic.DFF("in=in[2], out=out[2]"),
		logic.DFF("in=in[3], out=out[3]"),
	})
	if err != nil {
		t.Fatal(err)
	}

	c, err := sim.NewCircuit(0, 4, sim.Parts{
		sim.InputN(4, func() int64 { return in })("out[0..3]=in[0..3]"),
		dff4("in[0..3]=in[0..3], out[0..3]=out[0..3]"),
		sim.OutputN(4, func(o int64) { out = o })("in[0..3]=out[0..3]"),
	})
	if err != nil {
		t.Fatal(err)
	}
	defer c.Dispose()

	var prev int64
	for i := int64(15); i >= 0; i-- {
		// because inputs are delayed by one tick, DFFs do not see the new
		// value when we change it right at the beginning of a new clock
		// cycle: the registered output shows the value fed in during the
		// previous cycle.

		in = i

		c.TickTock()

		if prev != out {
			t.Fatalf("bad output for input %d: expected out = %d, got %d", prev, prev, out)
		}

		// here's the value that we should see at the end of the next cycle
		prev = i
	}
}

func Test_bit_register(t *testing.T) {
	reg, err := sim.Chip("BITREG", "in, load", "out", sim.Parts{
		logic.Mux("a=out, b=in, sel=load, out=muxOut"),
		logic.DFF("in=muxOut, out=out"),
	})
	if err != nil {
		t.Fatal(err)
	}

	var in, load, out bool

	c, err := sim.NewCircuit(0, 4, sim.Parts{
		sim.Input(func() bool { return in })("out=regI"),
		sim.Input(func() bool { return load })("out=regLD"),
		reg("in=regI, load=regLD, out=regO"),
		sim.Output(func(b bool) { out = b })("in=regO"),
	})
	if err != nil {
		t.Fatal(err)
	}
	defer c.Dispose()

	rand.Seed(time.Now().UnixNano())

	p := in
	for i := 0; i < 1000; i++ {
		in = rand.Int63()&(1<<62) != 0
		load = rand.Int63()&(1<<62) != 0
		c.TickTock()
		if p != out {
			t.Fatal("p != out")
		}
		if load {
			p = in
		}
	}
}

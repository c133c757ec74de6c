package detect_test

import (
	"testing"

	"github.com/synbit/seqsim"
	"github.com/synbit/seqsim/detect"
)

const testTPC = 8

// mealyHarness drives the behavioral Mealy part one input bit per clock
// cycle and records the out pin and the state bus.
//
// Inputs settle during the cycle preceding the edge that samples them,
// so after TickTock for bit i the probes show the output for cycle i:
// the state with bits 0..i-1 consumed, combined with input bit i.
func TestMealy1011(t *testing.T) {
	var (
		in, rst bool
		out     bool
		state   int64
	)

	c, err := seqsim.NewCircuit(0, testTPC, seqsim.Parts{
		seqsim.Input(func() bool { return in })("out=din"),
		seqsim.Input(func() bool { return rst })("out=drst"),
		detect.Mealy1011("in=din, reset=drst, out=dout, s[0..1]=st[0..1]"),
		seqsim.Output(func(b bool) { out = b })("in=dout"),
		seqsim.OutputN(2, func(v int64) { state = v })("in[0..1]=st[0..1]"),
	})
	if err != nil {
		t.Fatal(err)
	}
	defer c.Dispose()

	td := []struct {
		name    string
		stream  string
		resetAt int
	}{
		{"overlap", "1011011", -1},
		{"consecutive", "10111011", -1},
		{"reset then redetect", "10101011", 3},
		{"alternating", "1010101010", -1},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			bits, err := detect.ParseStream(d.stream)
			if err != nil {
				t.Fatal(err)
			}
			// make sure a previous subtest leaves no residue
			rst = true
			c.TickTock()
			rst = false

			st := detect.Reset()
			for i, b := range bits {
				in = b
				rst = d.resetAt == i
				c.TickTock()

				_, expected := detect.MealyStep(st, b)
				if out != expected {
					t.Errorf("tick %d: detected = %v, expected %v", i, out, expected)
				}
				if state != int64(st) {
					t.Errorf("tick %d: state = %d, expected %v", i, state, st)
				}
				if d.resetAt == i {
					st = detect.Reset()
				} else {
					st, _ = detect.MealyStep(st, b)
				}
			}
		})
	}
}

func TestMoore1011(t *testing.T) {
	var (
		in, rst bool
		out     bool
		state   int64
	)

	c, err := seqsim.NewCircuit(0, testTPC, seqsim.Parts{
		seqsim.Input(func() bool { return in })("out=din"),
		seqsim.Input(func() bool { return rst })("out=drst"),
		detect.Moore1011("in=din, reset=drst, out=dout, s[0..2]=st[0..2]"),
		seqsim.Output(func(b bool) { out = b })("in=dout"),
		seqsim.OutputN(3, func(v int64) { state = v })("in[0..2]=st[0..2]"),
	})
	if err != nil {
		t.Fatal(err)
	}
	defer c.Dispose()

	td := []struct {
		name    string
		stream  string
		resetAt int
	}{
		{"overlap", "1011011", -1},
		{"reset clears output", "1011011", 4},
		{"reset then redetect", "10101011", 3},
		{"all zeros", "00000000", -1},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			bits, err := detect.ParseStream(d.stream)
			if err != nil {
				t.Fatal(err)
			}
			rst = true
			c.TickTock()
			rst = false

			st := detect.Reset()
			check := func(i int) {
				if out != detect.MooreOutput(st) {
					t.Errorf("tick %d: detected = %v, expected %v", i, out, detect.MooreOutput(st))
				}
				if state != int64(st) {
					t.Errorf("tick %d: state = %d, expected %v", i, state, st)
				}
			}
			for i, b := range bits {
				in = b
				rst = d.resetAt == i
				c.TickTock()
				check(i)
				if d.resetAt == i {
					st = detect.Reset()
				} else {
					st, _ = detect.MooreStep(st, b)
				}
			}
			// the registered output needs one more cycle to show a match
			// ending on the last bit
			in, rst = false, false
			c.TickTock()
			check(len(bits))
		})
	}
}

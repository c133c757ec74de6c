package detect

import (
	"github.com/synbit/seqsim"
)

// pin names shared by all detector parts
const (
	pIn    = "in"
	pReset = "reset"
	pOut   = "out"
	pS     = "s"
)

var mealySpec = &seqsim.PartSpec{
	Name:    "MEALY1011",
	Inputs:  []string{pIn, pReset},
	Outputs: seqsim.IO("out, s[2]"),
	Mount: func(s *seqsim.Socket) []seqsim.Component {
		in, rst, out := s.Pin(pIn), s.Pin(pReset), s.Pin(pOut)
		sbus := s.Bus(pS, 2)
		st := Reset()
		return []seqsim.Component{
			func(c *seqsim.Circuit) {
				if c.AtTick() {
					if c.Get(rst) {
						// synchronous reset preempts the transition
						st = Reset()
					} else {
						st, _ = MealyStep(st, c.Get(in))
					}
				}
				// output is combinational in the current input
				_, detected := MealyStep(st, c.Get(in))
				c.Set(out, detected)
				c.Set(sbus[0], st&1 != 0)
				c.Set(sbus[1], st&2 != 0)
			}}
	},
}

// Mealy1011 returns the behavioral Mealy "1011" detector.
//
//	Inputs: in, reset
//	Outputs: out, s[2]
//	Function: out = (state == Saw101) && in; s exposes the state encoding.
//
// The state register advances on the rising clock edge; reset
// synchronously forces it to Idle. out asserts on the same cycle as the
// final 1 of a match.
//
func Mealy1011(w string) seqsim.Part { return mealySpec.NewPart(w) }

var mooreSpec = &seqsim.PartSpec{
	Name:    "MOORE1011",
	Inputs:  []string{pIn, pReset},
	Outputs: seqsim.IO("out, s[3]"),
	Mount: func(s *seqsim.Socket) []seqsim.Component {
		in, rst, out := s.Pin(pIn), s.Pin(pReset), s.Pin(pOut)
		sbus := s.Bus(pS, 3)
		st := Reset()
		return []seqsim.Component{
			func(c *seqsim.Circuit) {
				if c.AtTick() {
					if c.Get(rst) {
						st = Reset()
					} else {
						st, _ = MooreStep(st, c.Get(in))
					}
				}
				// output is registered: a function of state alone
				c.Set(out, MooreOutput(st))
				c.Set(sbus[0], st&1 != 0)
				c.Set(sbus[1], st&2 != 0)
				c.Set(sbus[2], st&4 != 0)
			}}
	},
}

// Moore1011 returns the behavioral Moore "1011" detector.
//
//	Inputs: in, reset
//	Outputs: out, s[3]
//	Function: out = (state == Saw1011); s exposes the state encoding.
//
// out asserts one cycle after the final 1 of a match, for exactly one
// cycle. A synchronous reset forces Idle and thus clears out on the next
// edge.
//
func Moore1011(w string) seqsim.Part { return mooreSpec.NewPart(w) }

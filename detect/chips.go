package detect

import (
	"github.com/synbit/seqsim"
	"github.com/synbit/seqsim/logic"
)

// Mealy1011Chip builds the Mealy detector as a gate-level chip with the
// same pin interface as Mealy1011: a 2 bit state register (two DFFs)
// and the next-state equations
//
//	s0' = in && !reset
//	s1' = !reset && ((s0 && !in) || (s1 && !s0 && in))
//	out = s1 && s0 && in
//
// which realize the transition table with the encoding Idle=00, Saw1=01,
// Saw10=10, Saw101=11.
func Mealy1011Chip() (seqsim.NewPartFn, error) {
	return seqsim.Chip("MEALY1011_GL", "in, reset", "out, s[2]", seqsim.Parts{
		logic.Not("in=reset, out=nr"),
		logic.Not("in=in, out=ni"),
		logic.Not("in=s[0], out=ns0"),
		// s0' = in && !reset
		logic.And("a=in, b=nr, out=d0"),
		logic.DFF("in=d0, out=s[0]"),
		// s1' = !reset && ((s0 && !in) || (s1 && !s0 && in))
		logic.And("a=s[0], b=ni, out=w0"),
		logic.And("a=s[1], b=in, out=w1a"),
		logic.And("a=w1a, b=ns0, out=w1"),
		logic.Or("a=w0, b=w1, out=t1"),
		logic.And("a=t1, b=nr, out=d1"),
		logic.DFF("in=d1, out=s[1]"),
		// out = s1 && s0 && in
		logic.And("a=s[1], b=s[0], out=m"),
		logic.And("a=m, b=in, out=out"),
	})
}

// Moore1011Chip builds the Moore detector as a gate-level chip with the
// same pin interface as Moore1011: a 3 bit state register and next-state
// equations for the encoding Idle=000, Saw1=001, Saw10=010, Saw101=011,
// Saw1011=100. The three unused encodings decode as invalid and fall
// back to Idle on the next edge.
func Moore1011Chip() (seqsim.NewPartFn, error) {
	return seqsim.Chip("MOORE1011_GL", "in, reset", "out, s[3]", seqsim.Parts{
		logic.Not("in=reset, out=nr"),
		logic.Not("in=in, out=ni"),
		logic.Not("in=s[0], out=ns0"),
		logic.Not("in=s[2], out=ns2"),
		// valid = !(s2 && (s1 || s0))
		logic.Or("a=s[1], b=s[0], out=lo"),
		logic.And("a=s[2], b=lo, out=badhi"),
		logic.Not("in=badhi, out=valid"),
		// s0' = in && !(s1 && s0) && valid && !reset
		logic.And("a=s[1], b=s[0], out=s10"),
		logic.Not("in=s10, out=ns10"),
		logic.And("a=in, b=ns10, out=d0a"),
		logic.And("a=d0a, b=valid, out=d0b"),
		logic.And("a=d0b, b=nr, out=d0"),
		logic.DFF("in=d0, out=s[0]"),
		// s1' = valid && !reset &&
		//       (((s0 || s2) && !in) || (!s0 && !s2 && s1 && in))
		logic.Or("a=s[0], b=s[2], out=s02"),
		logic.And("a=s02, b=ni, out=w0"),
		logic.And("a=ns0, b=ns2, out=n02"),
		logic.And("a=s[1], b=in, out=w1a"),
		logic.And("a=n02, b=w1a, out=w1"),
		logic.Or("a=w0, b=w1, out=t1"),
		logic.And("a=t1, b=valid, out=d1a"),
		logic.And("a=d1a, b=nr, out=d1"),
		logic.DFF("in=d1, out=s[1]"),
		// s2' = !s2 && s1 && s0 && in && !reset
		logic.And("a=ns2, b=s10, out=t2"),
		logic.And("a=t2, b=in, out=d2a"),
		logic.And("a=d2a, b=nr, out=d2"),
		logic.DFF("in=d2, out=s[2]"),
		// out = s2
		logic.Or("a=s[2], b=false, out=out"),
	})
}

// MooreFromMealy composes a Moore-style detector from the behavioral
// Mealy part by registering its output through a DFF. The register input
// is gated with !reset so a synchronous reset clears the detection on
// the same edge that clears the state. Only the out pin is exposed: the
// composition has no Moore state encoding to publish.
func MooreFromMealy() (seqsim.NewPartFn, error) {
	return seqsim.Chip("MOORE1011_REG", "in, reset", "out", seqsim.Parts{
		Mealy1011("in=in, reset=reset, out=m"),
		logic.Not("in=reset, out=nr"),
		logic.And("a=m, b=nr, out=d"),
		logic.DFF("in=d, out=out"),
	})
}

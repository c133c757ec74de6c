// Copyright 2025 The seqsim authors
// Licensed under the MIT license. See license text in the LICENSE file.

package logic

import "github.com/synbit/seqsim"

// DFF returns a clocked data flip-flop.
//
//	Inputs: in
//	Outputs: out
//	Function: out(t) = in(t-1) // where t is the current clock cycle.
//
func DFF(w string) seqsim.Part {
	return (&seqsim.PartSpec{
		Name:    "DFF",
		Inputs:  []string{pIn},
		Outputs: []string{pOut},
		Mount: func(s *seqsim.Socket) []seqsim.Component {
			in, out := s.Pin(pIn), s.Pin(pOut)
			var curOut bool
			return []seqsim.Component{
				func(c *seqsim.Circuit) {
					// rising edge?
					if c.AtTick() {
						curOut = c.Get(in)
					}
					c.Set(out, curOut)
				}}
		}}).NewPart(w)
}

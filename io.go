// Copyright 2025 The seqsim authors
// Licensed under the MIT license. See license text in the LICENSE file.

package seqsim

import (
	"strconv"
)

// Input returns a 1 bit input part updated from the host program.
// The function f is polled on every simulation step.
//
//	Outputs: out
//	Function: out = f()
//
func Input(f func() bool) NewPartFn {
	p := &PartSpec{
		Name:    "INPUT",
		Inputs:  nil,
		Outputs: []string{"out"},
		Mount: func(s *Socket) []Component {
			pin := s.Pin("out")
			return []Component{
				func(c *Circuit) { c.Set(pin, f()) },
			}
		}}
	return p.NewPart
}

// Output returns a 1 bit output part, or probe. The function f is called
// with the state of the input pin on every simulation step.
//
//	Inputs: in
//	Function: f(in)
//
func Output(f func(value bool)) NewPartFn {
	p := &PartSpec{
		Name:    "OUTPUT",
		Inputs:  []string{"in"},
		Outputs: nil,
		Mount: func(s *Socket) []Component {
			pin := s.Pin("in")
			return []Component{
				func(c *Circuit) { f(c.Get(pin)) },
			}
		}}
	return p.NewPart
}

// InputN returns an input bus of the given bits size. Bit 0 of the value
// returned by f drives out[0].
//
//	Outputs: out[bits]
//	Function: out = f()
//
func InputN(bits int, f func() int64) NewPartFn {
	bs := strconv.Itoa(bits)
	return (&PartSpec{
		Name:    "INPUT" + bs,
		Inputs:  nil,
		Outputs: IO("out[" + bs + "]"),
		Mount: func(s *Socket) []Component {
			pins := s.Bus("out", bits)
			return []Component{
				func(c *Circuit) {
					v := f()
					for i, pin := range pins {
						c.Set(pin, v&(1<<uint(i)) != 0)
					}
				}}
		}}).NewPart
}

// OutputN returns an output bus of the given bits size. The state of
// in[0] maps to bit 0 of the value passed to f.
//
//	Inputs: in[bits]
//	Function: f(in)
//
func OutputN(bits int, f func(int64)) NewPartFn {
	bs := strconv.Itoa(bits)
	return (&PartSpec{
		Name:    "OUTPUT" + bs,
		Inputs:  IO("in[" + bs + "]"),
		Outputs: nil,
		Mount: func(s *Socket) []Component {
			pins := s.Bus("in", bits)
			return []Component{
				func(c *Circuit) {
					var v int64
					for i, pin := range pins {
						if c.Get(pin) {
							v |= 1 << uint(i)
						}
					}
					f(v)
				}}
		}}).NewPart
}

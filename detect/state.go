// Package detect models "1011" sequence detectors over a serial bit
// stream, in both their Mealy and Moore renditions, with overlapping
// occurrences recognized (the stream 1011011 yields two detections).
//
// The machines come in two shapes: pure step functions operating on an
// explicit State value (MealyStep, MooreStep), and seqsim circuit parts
// (Mealy1011, Moore1011 and their gate-level counterparts) driven by the
// simulated clock and a synchronous reset.
package detect

import (
	"strconv"

	"github.com/pkg/errors"
)

// A State identifies how much of the "1011" pattern has been recognized
// so far. The zero value is Idle. State values double as the binary
// register encoding used by the gate-level chips.
type State uint8

const (
	Idle    State = iota // nothing matched
	Saw1                 // seen 1
	Saw10                // seen 10
	Saw101               // seen 101
	Saw1011              // seen 1011; Moore accepting state

	numStates
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Saw1:
		return "Saw1"
	case Saw10:
		return "Saw10"
	case Saw101:
		return "Saw101"
	case Saw1011:
		return "Saw1011"
	}
	return "State(" + strconv.Itoa(int(s)) + ")"
}

// Reset returns the initial machine state. Both machines reset to Idle;
// re-applying Reset without stepping is stable.
func Reset() State {
	return Idle
}

// ParseStream converts a literal bit string like "1011011" to a slice of
// input bits.
func ParseStream(stream string) ([]bool, error) {
	bits := make([]bool, len(stream))
	for i, r := range stream {
		switch r {
		case '0':
		case '1':
			bits[i] = true
		default:
			return nil, errors.Errorf("invalid bit %q at offset %d in stream %q", r, i, stream)
		}
	}
	return bits, nil
}

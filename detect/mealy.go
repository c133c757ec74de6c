package detect

// MealyStep advances the Mealy detector by one clock cycle. The detected
// output is combinational: it depends on the current state and the
// current input bit, and asserts on the very cycle that processes the
// final 1 of a "1011" occurrence.
//
// The transition table re-enters the matching path on overlap: from
// Saw101 an input of 1 completes a match and moves to Saw1 (the trailing
// 1 also starts the next potential match), never back to Idle.
func MealyStep(s State, bit bool) (next State, detected bool) {
	detected = s == Saw101 && bit
	switch s {
	case Idle:
		if bit {
			next = Saw1
		} else {
			next = Idle
		}
	case Saw1:
		if bit {
			next = Saw1
		} else {
			next = Saw10
		}
	case Saw10:
		if bit {
			next = Saw101
		} else {
			next = Idle
		}
	case Saw101:
		if bit {
			next = Saw1
		} else {
			next = Saw10
		}
	default:
		// out of range states recover to Idle
		next = Idle
	}
	return next, detected
}

// MealyTrace runs the Mealy detector from Idle over a literal bit stream
// and returns the detected signal for each cycle.
func MealyTrace(stream string) ([]bool, error) {
	bits, err := ParseStream(stream)
	if err != nil {
		return nil, err
	}
	out := make([]bool, len(bits))
	s := Reset()
	for i, b := range bits {
		s, out[i] = MealyStep(s, b)
	}
	return out, nil
}

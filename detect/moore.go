package detect

// MooreOutput is the Moore detector's output function. It depends on the
// registered state only: detection asserts while the machine sits in
// Saw1011, one cycle after the final 1 of a match was sampled, and holds
// for exactly one cycle.
func MooreOutput(s State) bool {
	return s == Saw1011
}

// MooreStep advances the Moore detector by one clock cycle. The detected
// return value is MooreOutput of the state current during that cycle,
// i.e. the value observed on the output wire before the clock edge that
// commits next.
//
// Saw1011 transitions like Saw1: the trailing 1 of a completed match is
// also the first 1 of the next potential match.
func MooreStep(s State, bit bool) (next State, detected bool) {
	detected = MooreOutput(s)
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
			next = Saw1011
		} else {
			next = Saw10
		}
	case Saw1011:
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

// MooreTrace runs the Moore detector from Idle over a literal bit stream
// and returns the detected signal for each cycle, plus one trailing
// sample for the cycle following the last input bit. Without the trailing
// sample, a match ending on the last bit of the stream would be
// invisible: the Moore output lags the Mealy output by one cycle.
func MooreTrace(stream string) ([]bool, error) {
	bits, err := ParseStream(stream)
	if err != nil {
		return nil, err
	}
	out := make([]bool, len(bits)+1)
	s := Reset()
	for i, b := range bits {
		s, out[i] = MooreStep(s, b)
	}
	out[len(bits)] = MooreOutput(s)
	return out, nil
}

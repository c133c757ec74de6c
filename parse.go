package seqsim

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// busPinName returns the name of the i-th pin in bus b.
//
func busPinName(b string, i int) string {
	return b + "[" + strconv.Itoa(i) + "]"
}

func validIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z':
		case '0' <= r && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// ParseIO parses an I/O pin specification string and returns individual
// pin names in a slice, also expanding bus declarations to individual pin
// names. For example:
//
//	ParseIO("in[2], sel") // returns []string{"in[0]", "in[1]", "sel"}, nil
//
func ParseIO(spec string) ([]string, error) {
	var out []string
	if strings.TrimSpace(spec) == "" {
		return nil, nil
	}
	for _, tok := range strings.Split(spec, ",") {
		tok = strings.TrimSpace(tok)
		i := strings.IndexRune(tok, '[')
		if i < 0 {
			if !validIdent(tok) {
				return nil, errors.Errorf("invalid pin name %q in %q", tok, spec)
			}
			out = append(out, tok)
			continue
		}
		name := tok[:i]
		if !validIdent(name) {
			return nil, errors.Errorf("invalid bus name %q in %q", name, spec)
		}
		if !strings.HasSuffix(tok, "]") {
			return nil, errors.Errorf("missing ] in bus declaration %q", tok)
		}
		size, err := strconv.Atoi(tok[i+1 : len(tok)-1])
		if err != nil || size <= 0 {
			return nil, errors.Errorf("invalid bus size in %q", tok)
		}
		for j := 0; j < size; j++ {
			out = append(out, busPinName(name, j))
		}
	}
	return out, nil
}

// IO is like ParseIO but panics on error. It is meant to be used in
// package level variable initialization and part literals:
//
//	var mySpec = &PartSpec{
//		Name:    "FOO",
//		Inputs:  IO("a, b, sel"),
//		Outputs: IO("out[2]"),
//		...
//	}
//
func IO(spec string) []string {
	p, err := ParseIO(spec)
	if err != nil {
		panic(err)
	}
	return p
}

// A Connection maps a part's I/O pin PP to one or more pins CP in its
// host chip.
//
type Connection struct {
	PP string
	CP []string
}

// ParseConnections parses a connection configuration string and returns
// the resulting connections. The syntax is a comma separated list of pin
// assignments:
//
//	"partPin=chipPin, aBus[0..3]=b[0..3], bit=someBus[2]"
//
// where the left hand side of an assignment is a pin or bus range of the
// part being connected, and the right hand side names pins in the
// enclosing chip. A bus range b[x..y] expands to the individual pins
// b[x], b[x+1], ..., b[y].
//
func ParseConnections(c string) ([]Connection, error) {
	var conns []Connection
	if strings.TrimSpace(c) == "" {
		return nil, nil
	}
	for _, tok := range strings.Split(c, ",") {
		tok = strings.TrimSpace(tok)
		eq := strings.IndexRune(tok, '=')
		if eq < 0 {
			return nil, errors.Errorf("missing = in pin assignment %q", tok)
		}
		l, r := strings.TrimSpace(tok[:eq]), strings.TrimSpace(tok[eq+1:])
		ls, err := expandRange(l)
		if err != nil {
			return nil, errors.Wrapf(err, "expand %q", l)
		}
		rs, err := expandRange(r)
		if err != nil {
			return nil, errors.Wrapf(err, "expand %q", r)
		}
		switch {
		case len(ls) == len(rs):
			// many to many
			for i := range ls {
				conns = append(conns, Connection{PP: ls[i], CP: []string{rs[i]}})
			}
		case len(ls) == 1:
			// one to many
			conns = append(conns, Connection{PP: l, CP: rs})
		case len(rs) == 1:
			// many to one
			for _, l := range ls {
				conns = append(conns, Connection{PP: l, CP: rs})
			}
		default:
			return nil, errors.Errorf("pin count mismatch in pin assignment %q", tok)
		}
	}
	return conns, nil
}

// expandRange expands a bus range like "b[0..3]" to individual pin names.
// Plain pin names and indexed pins like "b[1]" expand to themselves.
//
func expandRange(name string) ([]string, error) {
	i := strings.IndexRune(name, '[')
	if i < 0 {
		if !validIdent(name) {
			return nil, errors.Errorf("invalid pin name %q", name)
		}
		return []string{name}, nil
	}
	bus := name[:i]
	if !validIdent(bus) {
		return nil, errors.Errorf("invalid bus name %q", bus)
	}
	if !strings.HasSuffix(name, "]") {
		return nil, errors.New("no terminating ] in bus index")
	}
	n := name[i+1 : len(name)-1]
	j := strings.Index(n, "..")
	if j < 0 {
		if _, err := strconv.Atoi(n); err != nil {
			return nil, errors.Errorf("invalid bus index %q", n)
		}
		return []string{name}, nil
	}
	start, err := strconv.Atoi(n[:j])
	if err != nil {
		return nil, err
	}
	end, err := strconv.Atoi(n[j+2:])
	if err != nil {
		return nil, err
	}
	if end < start {
		return nil, errors.Errorf("invalid bus range %q", name)
	}
	r := make([]string, 0, end-start+1)
	for i := start; i <= end; i++ {
		r = append(r, busPinName(bus, i))
	}
	return r, nil
}

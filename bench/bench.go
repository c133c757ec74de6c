// Package bench runs fixed testbench vectors against the sequence
// detectors and reports per-tick signal traces.
//
// Vectors live in YAML files: a named suite of input streams with the
// expected detection trace for either machine, optionally asserting the
// synchronous reset on a given tick.
package bench

import (
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/synbit/seqsim/detect"
)

// Machine names accepted in vector files.
const (
	MachineMealy = "mealy"
	MachineMoore = "moore"
)

// A Vector is a single testbench case: a literal bit stream driven into
// one of the two machines, and the expected detection trace.
//
// For the Moore machine the expected trace is one sample longer than the
// stream: the last sample is the registered output observed after the
// final clock edge (see detect.MooreTrace).
type Vector struct {
	Name    string `yaml:"name"`
	Machine string `yaml:"machine"`
	Stream  string `yaml:"stream"`
	// ResetAt asserts the synchronous reset on the given tick: the
	// transition on that tick is preempted and the next state is Idle.
	// The output on the reset tick itself is still the machine's normal
	// output (Mealy: combinational with the input; Moore: registered
	// state), matching the hardware behavior of a reset wired to the
	// state register only.
	ResetAt *int   `yaml:"resetAt,omitempty"`
	Expect  string `yaml:"expect"`
}

// A Suite is a named list of vectors, as read from a YAML file.
type Suite struct {
	Name    string   `yaml:"name"`
	Vectors []Vector `yaml:"vectors"`
}

// Load reads a vector suite from a YAML file.
func Load(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read vector file")
	}
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrapf(err, "parse vector file %s", path)
	}
	if len(s.Vectors) == 0 {
		return nil, errors.Errorf("vector file %s contains no vectors", path)
	}
	for i := range s.Vectors {
		v := &s.Vectors[i]
		if v.Machine != MachineMealy && v.Machine != MachineMoore {
			return nil, errors.Errorf("vector %q: unknown machine %q", v.Name, v.Machine)
		}
	}
	return &s, nil
}

// A Result reports the outcome of one vector.
type Result struct {
	Name string
	Got  string
	Want string
	Pass bool
}

// A Runner executes testbench vectors through the pure step functions,
// tracing every tick through its logger.
type Runner struct {
	log zerolog.Logger
}

// NewRunner returns a Runner tracing through the given logger.
func NewRunner(logger zerolog.Logger) *Runner {
	return &Runner{log: logger}
}

// Run executes all vectors in the suite and returns one result per
// vector. It fails fast on malformed vectors only; expectation
// mismatches are reported in the results.
func (r *Runner) Run(s *Suite) ([]Result, error) {
	results := make([]Result, 0, len(s.Vectors))
	for i := range s.Vectors {
		res, err := r.runVector(&s.Vectors[i])
		if err != nil {
			return nil, errors.Wrapf(err, "vector %q", s.Vectors[i].Name)
		}
		results = append(results, res)
	}
	return results, nil
}

func (r *Runner) runVector(v *Vector) (Result, error) {
	step := detect.MealyStep
	if v.Machine == MachineMoore {
		step = detect.MooreStep
	}

	bits, err := detect.ParseStream(v.Stream)
	if err != nil {
		return Result{}, err
	}

	got := make([]bool, 0, len(bits)+1)
	st := detect.Reset()
	for i, b := range bits {
		next, detected := step(st, b)
		reset := v.ResetAt != nil && *v.ResetAt == i
		if reset {
			next = detect.Reset()
		}
		r.log.Debug().
			Str("vector", v.Name).
			Int("tick", i).
			Bool("in", b).
			Stringer("state", st).
			Bool("reset", reset).
			Bool("detected", detected).
			Msg("tick")
		got = append(got, detected)
		st = next
	}
	if v.Machine == MachineMoore {
		// one trailing sample: the Moore output lags by one cycle
		detected := detect.MooreOutput(st)
		r.log.Debug().
			Str("vector", v.Name).
			Int("tick", len(bits)).
			Stringer("state", st).
			Bool("detected", detected).
			Msg("trailing tick")
		got = append(got, detected)
	}

	res := Result{
		Name: v.Name,
		Got:  FormatTrace(got),
		Want: v.Expect,
		Pass: FormatTrace(got) == v.Expect,
	}
	ev := r.log.Info()
	if !res.Pass {
		ev = r.log.Error()
	}
	ev.Str("vector", v.Name).
		Str("machine", v.Machine).
		Str("stream", v.Stream).
		Str("got", res.Got).
		Str("want", res.Want).
		Bool("pass", res.Pass).
		Msg("vector done")
	return res, nil
}

// FormatTrace renders a detection trace as a bit string, mirroring the
// stream notation used in vector files.
func FormatTrace(trace []bool) string {
	b := make([]byte, len(trace))
	for i, v := range trace {
		if v {
			b[i] = '1'
		} else {
			b[i] = '0'
		}
	}
	return string(b)
}

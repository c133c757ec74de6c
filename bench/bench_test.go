package bench

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSuite(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "detect1011.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "detect-1011", s.Name)
	assert.Len(t, s.Vectors, 13)
	assert.Equal(t, "mealy-basic", s.Vectors[0].Name)
	require.NotNil(t, s.Vectors[5].ResetAt)
	assert.Equal(t, 4, *s.Vectors[5].ResetAt)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	write := func(name, data string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
		return path
	}

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(write("bad.yaml", "vectors: {not a list}"))
	assert.Error(t, err)

	_, err = Load(write("empty.yaml", "name: empty\nvectors: []\n"))
	assert.ErrorContains(t, err, "no vectors")

	_, err = Load(write("machine.yaml", `
name: bad-machine
vectors:
  - name: v
    machine: medvedev
    stream: "1011"
    expect: "0001"
`))
	assert.ErrorContains(t, err, "unknown machine")
}

func TestRunSuite(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "detect1011.yaml"))
	require.NoError(t, err)

	r := NewRunner(zerolog.Nop())
	results, err := r.Run(s)
	require.NoError(t, err)
	require.Len(t, results, len(s.Vectors))
	for _, res := range results {
		assert.True(t, res.Pass, "vector %s: got %s, want %s", res.Name, res.Got, res.Want)
	}
}

func TestRunReportsMismatch(t *testing.T) {
	s := &Suite{
		Name: "mismatch",
		Vectors: []Vector{
			{Name: "wrong", Machine: MachineMealy, Stream: "1011", Expect: "1111"},
		},
	}
	r := NewRunner(zerolog.Nop())
	results, err := r.Run(s)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.False(t, results[0].Pass)
	assert.Equal(t, "0001", results[0].Got)
	assert.Equal(t, "1111", results[0].Want)
}

func TestRunBadStream(t *testing.T) {
	s := &Suite{
		Name: "bad",
		Vectors: []Vector{
			{Name: "nonbit", Machine: MachineMoore, Stream: "10x1", Expect: "00000"},
		},
	}
	r := NewRunner(zerolog.Nop())
	_, err := r.Run(s)
	assert.ErrorContains(t, err, `vector "nonbit"`)
}

func TestFormatTrace(t *testing.T) {
	assert.Equal(t, "", FormatTrace(nil))
	assert.Equal(t, "0101", FormatTrace([]bool{false, true, false, true}))
}

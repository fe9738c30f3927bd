package graphio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/postman/core"
)

func TestReadJSON(t *testing.T) {
	g, err := ReadJSON(strings.NewReader(`{
		"vertices": ["Q"],
		"edges": [["A", "B", 1], ["B", "C", "2"], [1, 2, 3]]
	}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"Q", "A", "B", "C", "1", "2"}, g.Vertices())
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, int64(6), g.TotalWeight())
	w, err := g.Weight("B", "C")
	require.NoError(t, err)
	assert.Equal(t, int64(2), w)
	assert.Equal(t, 0, g.Degree("Q"))
}

func TestReadJSON_Errors(t *testing.T) {
	cases := map[string]struct {
		in   string
		want error
	}{
		"missing edges":   {`{"vertices": ["A"]}`, ErrMissingEdges},
		"short edge":      {`{"edges": [["A", "B"]]}`, ErrMalformedEdge},
		"negative weight": {`{"edges": [["A", "B", -1]]}`, ErrMalformedEdge},
		"fractional":      {`{"edges": [["A", "B", 1.5]]}`, ErrMalformedEdge},
		"bool label":      {`{"edges": [[true, "B", 1]]}`, ErrMalformedEdge},
		"empty label":     {`{"edges": [["", "B", 1]]}`, ErrMalformedEdge},
		"not an array":    {`{"edges": [{"u": "A"}]}`, ErrMalformedEdge},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tc.in))
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := ReadJSON(strings.NewReader(`{not json`))
	assert.Error(t, err)
}

func TestReadTOML(t *testing.T) {
	g, err := ReadTOML(strings.NewReader(`
vertices = ["Q"]

[[edges]]
from = "A"
to = "B"
weight = 4

[[edges]]
from = "A"
to = "B"
weight = 4
`))
	require.NoError(t, err)

	assert.Equal(t, []string{"Q", "A", "B"}, g.Vertices())
	m, err := g.Multiplicity("A", "B")
	require.NoError(t, err)
	assert.Equal(t, 2, m)
	assert.Equal(t, int64(8), g.TotalWeight())

	_, err = ReadTOML(strings.NewReader(`vertices = ["A"]`))
	assert.ErrorIs(t, err, ErrMissingEdges)

	_, err = ReadTOML(strings.NewReader("[[edges]]\nfrom = \"A\"\nto = \"B\"\n"))
	assert.ErrorIs(t, err, ErrMalformedEdge)
}

func TestReadYAML(t *testing.T) {
	g, err := ReadYAML(strings.NewReader(`
edges:
  - {from: A, to: B, weight: 1}
  - {from: B, to: B, weight: 3}
`))
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B"}, g.Vertices())
	assert.Equal(t, 3, g.Degree("B"))
	assert.Equal(t, []string{"A", "B"}, g.OddDegreeVertices())

	_, err = ReadYAML(strings.NewReader("vertices: [A]\n"))
	assert.ErrorIs(t, err, ErrMissingEdges)

	_, err = ReadYAML(strings.NewReader("edges:\n  - {from: A, to: B, weight: -2}\n"))
	assert.ErrorIs(t, err, ErrMalformedEdge)
}

func TestImportFile(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
		return path
	}

	for _, path := range []string{
		write("g.json", `{"edges": [["A", "B", 2]]}`),
		write("g.toml", "[[edges]]\nfrom = \"A\"\nto = \"B\"\nweight = 2\n"),
		write("g.YML", "edges:\n  - {from: A, to: B, weight: 2}\n"),
	} {
		g, err := ImportFile(path)
		require.NoError(t, err, path)
		assert.Equal(t, int64(2), g.TotalWeight(), path)
	}

	_, err := ImportFile(write("g.csv", "A,B,2"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = ImportFile(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestBuild_RejectsNegativeWeight(t *testing.T) {
	_, err := build(nil, []triple{{u: "A", v: "B", w: -1}})
	assert.ErrorIs(t, err, core.ErrNegativeWeight)
}

func TestReadJSON_WeightOverflow(t *testing.T) {
	doc := `{"edges": [["A", "B", 4611686018427387904], ["B", "C", 4611686018427387904]]}`
	_, err := ReadJSON(strings.NewReader(doc))
	require.ErrorIs(t, err, core.ErrWeightOverflow)
	assert.Contains(t, err.Error(), "B—C")
}

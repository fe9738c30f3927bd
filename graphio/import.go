package graphio

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/postman/core"
)

// Sentinel errors for graph loading.
var (
	// ErrMalformedEdge indicates an edge entry that is not (label, label, weight≥0).
	ErrMalformedEdge = errors.New("graphio: malformed edge")

	// ErrMissingEdges indicates an input document without an "edges" key.
	ErrMissingEdges = errors.New("graphio: input must have an \"edges\" list")

	// ErrUnsupportedFormat indicates a file extension ImportFile cannot read.
	ErrUnsupportedFormat = errors.New("graphio: unsupported input format")
)

// triple is one validated edge.
type triple struct {
	u, v string
	w    int64
}

// jsonDoc is the JSON input shape; edges are decoded lazily so each one
// can be validated with its index in the error.
type jsonDoc struct {
	Vertices []json.RawMessage  `json:"vertices"`
	Edges    *[]json.RawMessage `json:"edges"`
}

// edgeRecord is the TOML/YAML input shape of one edge.
type edgeRecord struct {
	From   string `toml:"from" yaml:"from"`
	To     string `toml:"to" yaml:"to"`
	Weight *int64 `toml:"weight" yaml:"weight"`
}

// recordDoc is the TOML/YAML input document.
type recordDoc struct {
	Vertices []string     `toml:"vertices" yaml:"vertices"`
	Edges    []edgeRecord `toml:"edges" yaml:"edges"`
}

// ReadJSON decodes a JSON graph document from r.
//
// Errors: decode failures, ErrMissingEdges, ErrMalformedEdge (with the
// edge index). ReadJSON does not close r.
func ReadJSON(r io.Reader) (*core.Graph, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var doc jsonDoc
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("graphio: decode json: %w", err)
	}
	if doc.Edges == nil {
		return nil, ErrMissingEdges
	}

	vertices := make([]string, 0, len(doc.Vertices))
	for i, raw := range doc.Vertices {
		label, err := decodeLabel(raw)
		if err != nil {
			return nil, fmt.Errorf("graphio: vertex %d: %w", i, err)
		}
		vertices = append(vertices, label)
	}

	edges := make([]triple, 0, len(*doc.Edges))
	for i, raw := range *doc.Edges {
		t, err := decodeTriple(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: edge %d: %v", ErrMalformedEdge, i, err)
		}
		edges = append(edges, t)
	}

	return build(vertices, edges)
}

func decodeTriple(raw json.RawMessage) (triple, error) {
	var parts []json.RawMessage
	if err := json.Unmarshal(raw, &parts); err != nil {
		return triple{}, fmt.Errorf("want [u, v, weight]: %w", err)
	}
	if len(parts) != 3 {
		return triple{}, fmt.Errorf("want 3 elements, got %d", len(parts))
	}
	u, err := decodeLabel(parts[0])
	if err != nil {
		return triple{}, err
	}
	v, err := decodeLabel(parts[1])
	if err != nil {
		return triple{}, err
	}
	w, err := decodeWeight(parts[2])
	if err != nil {
		return triple{}, err
	}

	return triple{u: u, v: v, w: w}, nil
}

// decodeLabel accepts a non-empty string or a JSON number.
func decodeLabel(raw json.RawMessage) (string, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var x any
	if err := dec.Decode(&x); err != nil {
		return "", err
	}
	switch val := x.(type) {
	case string:
		if val == "" {
			return "", core.ErrEmptyVertexID
		}
		return val, nil
	case json.Number:
		return val.String(), nil
	default:
		return "", fmt.Errorf("label must be a string or number, got %s", raw)
	}
}

// decodeWeight accepts a non-negative integer, as a number or numeric string.
func decodeWeight(raw json.RawMessage) (int64, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var x any
	if err := dec.Decode(&x); err != nil {
		return 0, err
	}
	var text string
	switch val := x.(type) {
	case json.Number:
		text = val.String()
	case string:
		text = strings.TrimSpace(val)
	default:
		return 0, fmt.Errorf("weight must be an integer, got %s", raw)
	}
	w, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("weight must be an integer, got %q", text)
	}
	if w < 0 {
		return 0, fmt.Errorf("weight must be non-negative, got %d", w)
	}

	return w, nil
}

// ReadTOML decodes a TOML graph document from r.
func ReadTOML(r io.Reader) (*core.Graph, error) {
	var doc recordDoc
	md, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return nil, fmt.Errorf("graphio: decode toml: %w", err)
	}
	if !md.IsDefined("edges") {
		return nil, ErrMissingEdges
	}

	return fromRecords(doc)
}

// ReadYAML decodes a YAML graph document from r.
func ReadYAML(r io.Reader) (*core.Graph, error) {
	var doc recordDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("graphio: decode yaml: %w", err)
	}
	if doc.Edges == nil {
		return nil, ErrMissingEdges
	}

	return fromRecords(doc)
}

func fromRecords(doc recordDoc) (*core.Graph, error) {
	edges := make([]triple, 0, len(doc.Edges))
	for i, e := range doc.Edges {
		switch {
		case e.From == "" || e.To == "":
			return nil, fmt.Errorf("%w: edge %d: from/to must be non-empty", ErrMalformedEdge, i)
		case e.Weight == nil:
			return nil, fmt.Errorf("%w: edge %d: missing weight", ErrMalformedEdge, i)
		case *e.Weight < 0:
			return nil, fmt.Errorf("%w: edge %d: weight must be non-negative, got %d", ErrMalformedEdge, i, *e.Weight)
		}
		edges = append(edges, triple{u: e.From, v: e.To, w: *e.Weight})
	}

	return build(doc.Vertices, edges)
}

// build registers listed vertices first, then edges, so insertion order
// follows the document.
func build(vertices []string, edges []triple) (*core.Graph, error) {
	g := core.NewGraph()
	for _, v := range vertices {
		if err := g.AddVertex(v); err != nil {
			return nil, fmt.Errorf("graphio: vertex %q: %w", v, err)
		}
	}
	for _, e := range edges {
		if err := g.AddEdge(e.u, e.v, e.w); err != nil {
			return nil, fmt.Errorf("graphio: edge %s—%s: %w", e.u, e.v, err)
		}
	}

	return g, nil
}

// ImportFile reads the graph at path, choosing the decoder by extension:
// .json, .toml, .yaml or .yml.
func ImportFile(path string) (*core.Graph, error) {
	var read func(io.Reader) (*core.Graph, error)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		read = ReadJSON
	case ".toml":
		read = ReadTOML
	case ".yaml", ".yml":
		read = ReadYAML
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: open %s: %w", path, err)
	}
	defer f.Close()

	return read(f)
}

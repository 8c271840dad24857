package distfile

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/heurtsp/problem"
)

// yamlDoc is the on-disk YAML shape of a problem instance.
type yamlDoc struct {
	Start string     `yaml:"start"`
	Edges []yamlEdge `yaml:"edges"`
}

type yamlEdge struct {
	From string  `yaml:"from"`
	To   string  `yaml:"to"`
	Dist float64 `yaml:"distance"`
}

// ParseYAML reads the YAML problem format from r and builds a Problem.
// When the document omits `start`, the first edge's `from` city is used,
// mirroring the text format.
//
// Errors: ErrBadFormat on decode failure, the problem package sentinels
// on semantic violations.
func ParseYAML(r io.Reader) (*problem.Problem, error) {
	var doc yamlDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadFormat, err)
	}

	var (
		edges = make([]problem.Edge, len(doc.Edges))
		i     int
	)
	for i = 0; i < len(doc.Edges); i++ {
		edges[i] = problem.Edge{From: doc.Edges[i].From, To: doc.Edges[i].To, Dist: doc.Edges[i].Dist}
	}
	if len(edges) == 0 {
		return nil, problem.ErrNoCities
	}
	start := doc.Start
	if start == "" {
		start = edges[0].From
	}
	return problem.New(start, edges)
}

// LoadYAML opens path and delegates to ParseYAML.
func LoadYAML(path string) (*problem.Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseYAML(f)
}

// Package distfile loads TSP problem instances from external files — the
// input side the solvers themselves never touch.
//
// Two formats are supported:
//
//   - Text: one whitespace-separated “from to distance” triple per line;
//     blank lines and lines starting with '#' are ignored. City
//     enumeration order is first-appearance order and the start city is
//     the first city named.
//
//   - YAML: an explicit document with a start city and an edge list:
//
//     start: Lisboa
//     edges:
//     - {from: Lisboa, to: Porto, distance: 313}
//     - {from: Porto, to: Faro, distance: 550}
//
// Both formats produce identical problem.Problem values for equivalent
// input. Malformed lines fail with ErrBadFormat wrapped with the line
// number; problem-level violations surface the problem package sentinels.
package distfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/heurtsp/problem"
)

// ErrBadFormat indicates a line that is not a “from to distance” triple
// (or a YAML document that does not decode into the expected shape).
var ErrBadFormat = errors.New("distfile: malformed input")

// Parse reads the text distance format from r and builds a Problem.
// The start city is the first city named in the file.
//
// Errors: ErrBadFormat (wrapped with the offending line number), read
// errors from r, and the problem package sentinels.
//
// Complexity: O(lines) parsing plus problem.New cost.
func Parse(r io.Reader) (*problem.Problem, error) {
	var (
		sc     = bufio.NewScanner(r)
		edges  []problem.Edge
		start  string
		line   string
		fields []string
		lineNo int
		d      float64
		err    error
	)
	for sc.Scan() {
		lineNo++
		line = strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields = strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("distfile: line %d: %w", lineNo, ErrBadFormat)
		}
		d, err = strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("distfile: line %d: %w", lineNo, ErrBadFormat)
		}
		if start == "" {
			start = fields[0]
		}
		edges = append(edges, problem.Edge{From: fields[0], To: fields[1], Dist: d})
	}
	if err = sc.Err(); err != nil {
		return nil, err
	}
	if len(edges) == 0 {
		return nil, problem.ErrNoCities
	}
	return problem.New(start, edges)
}

// Load opens path and delegates to Parse.
func Load(path string) (*problem.Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

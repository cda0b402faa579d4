package ingest

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cenkalti/backoff/v4"

	"github.com/subgraphminer/gspanmine/internal/patterngraph"
)

// Load opens path and parses its line-oriented content into raw graphs,
// ready for patterngraph.NewDatabase. opts.Mark selects the field
// separator; the zero Options uses a single space.
func Load(path string, opts Options) ([]patterngraph.RawGraph, error) {
	opts = opts.resolved()

	f, err := openWithRetry(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return parse(f, opts)
}

// openWithRetry wraps os.Open with a short bounded exponential backoff:
// the one real transient-I/O boundary in the pipeline, unrelated to the
// per-line parse loop below, which must fail fast on the first malformed
// line rather than retry.
func openWithRetry(path string) (*os.File, error) {
	var f *os.File

	operation := func() error {
		var openErr error
		f, openErr = os.Open(path)
		return openErr
	}

	policy := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 2)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrIO, path, err)
	}
	return f, nil
}

// parse scans r line by line, building one patterngraph.RawGraph per "t #"
// header encountered.
func parse(r io.Reader, opts Options) ([]patterngraph.RawGraph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1<<20)

	var graphs []patterngraph.RawGraph
	var cur *patterngraph.RawGraph

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), "\r\n")
		if line == "" {
			continue
		}

		tokens := strings.Split(line, opts.Mark)
		switch tokens[0] {
		case "t":
			g, err := parseHeader(tokens, lineNo, line)
			if err != nil {
				return nil, err
			}
			if cur != nil {
				graphs = append(graphs, *cur)
			}
			cur = g

		case "v":
			v, err := parseVertex(tokens, lineNo, line)
			if err != nil {
				return nil, err
			}
			if cur == nil {
				return nil, fmt.Errorf("%w: line %d: vertex before any graph header: %q", ErrMalformedLine, lineNo, line)
			}
			cur.Vertices = append(cur.Vertices, v)

		case "e":
			e, err := parseEdge(tokens, lineNo, line)
			if err != nil {
				return nil, err
			}
			if cur == nil {
				return nil, fmt.Errorf("%w: line %d: edge before any graph header: %q", ErrMalformedLine, lineNo, line)
			}
			cur.Edges = append(cur.Edges, e)

		default:
			return nil, fmt.Errorf("%w: line %d: %q", ErrUnknownTag, lineNo, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: scan: %v", ErrIO, err)
	}
	if cur != nil {
		graphs = append(graphs, *cur)
	}

	return graphs, nil
}

func parseHeader(tokens []string, lineNo int, line string) (*patterngraph.RawGraph, error) {
	if len(tokens) != 3 || tokens[1] != "#" {
		return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedLine, lineNo, line)
	}
	id, err := strconv.Atoi(tokens[2])
	if err != nil {
		return nil, fmt.Errorf("%w: line %d: graph id %q: %v", ErrMalformedLine, lineNo, tokens[2], err)
	}
	return &patterngraph.RawGraph{ID: id}, nil
}

func parseVertex(tokens []string, lineNo int, line string) (patterngraph.RawVertex, error) {
	if len(tokens) != 3 {
		return patterngraph.RawVertex{}, fmt.Errorf("%w: line %d: %q", ErrMalformedLine, lineNo, line)
	}
	id, err1 := strconv.Atoi(tokens[1])
	label, err2 := strconv.Atoi(tokens[2])
	if err1 != nil || err2 != nil {
		return patterngraph.RawVertex{}, fmt.Errorf("%w: line %d: %q", ErrMalformedLine, lineNo, line)
	}
	return patterngraph.RawVertex{ID: id, Label: label}, nil
}

func parseEdge(tokens []string, lineNo int, line string) (patterngraph.RawEdge, error) {
	if len(tokens) != 4 {
		return patterngraph.RawEdge{}, fmt.Errorf("%w: line %d: %q", ErrMalformedLine, lineNo, line)
	}
	from, err1 := strconv.Atoi(tokens[1])
	to, err2 := strconv.Atoi(tokens[2])
	label, err3 := strconv.Atoi(tokens[3])
	if err1 != nil || err2 != nil || err3 != nil {
		return patterngraph.RawEdge{}, fmt.Errorf("%w: line %d: %q", ErrMalformedLine, lineNo, line)
	}
	return patterngraph.RawEdge{From: from, To: to, Label: label}, nil
}

package datastructure

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/dsnet/compress/bzip2"
)

// WriteGraph. bzip2 compressed text file:
//
//	n m
//	n lines, one vertex id each
//	m lines, "u v" each
func (g *Graph) WriteGraph(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	bz, err := bzip2.NewWriter(f, &bzip2.WriterConfig{})
	if err != nil {
		return err
	}
	defer bz.Close()

	w := bufio.NewWriter(bz)
	if err := g.writeText(w); err != nil {
		return err
	}
	return w.Flush()
}

func (g *Graph) writeText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%d %d\n", g.NumberOfVertices(), g.NumberOfEdges()); err != nil {
		return err
	}
	for _, v := range g.vertices {
		if _, err := fmt.Fprintf(w, "%d\n", v); err != nil {
			return err
		}
	}
	for _, e := range g.edges {
		if _, err := fmt.Fprintf(w, "%d %d\n", e.u, e.v); err != nil {
			return err
		}
	}
	return nil
}

func fields(s string) []string {
	return strings.Fields(s)
}

func parseIndex(s string) (Index, error) {
	u, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, err
	}
	if u > math.MaxUint32 {
		return 0, fmt.Errorf("value %s overflows uint32", s)
	}
	return Index(u), nil
}

func ReadGraph(filename string) (*Graph, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	bz, err := bzip2.NewReader(f, nil)
	if err != nil {
		return nil, err
	}
	defer bz.Close()

	return readText(bufio.NewReader(bz))
}

func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
		} else {
			return "", err
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func readText(br *bufio.Reader) (*Graph, error) {
	line, err := readLine(br)
	if err != nil {
		return nil, fmt.Errorf("header: %w", err)
	}
	tokens := fields(line)
	if len(tokens) != 2 {
		return nil, fmt.Errorf("header: expected 2 fields, got %d: %w", len(tokens), ErrMalformedFile)
	}
	n, err := strconv.Atoi(tokens[0])
	if err != nil {
		return nil, fmt.Errorf("header n: %w", err)
	}
	m, err := strconv.Atoi(tokens[1])
	if err != nil {
		return nil, fmt.Errorf("header m: %w", err)
	}

	vertices := make([]Index, 0, n)
	for i := 0; i < n; i++ {
		line, err = readLine(br)
		if err != nil {
			return nil, fmt.Errorf("vertex %d: %w", i, err)
		}
		v, err := parseIndex(strings.TrimSpace(line))
		if err != nil {
			return nil, fmt.Errorf("vertex %d: %w", i, err)
		}
		vertices = append(vertices, v)
	}

	edges := make([]Edge, 0, m)
	for i := 0; i < m; i++ {
		line, err = readLine(br)
		if err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
		e, err := parseEdge(line)
		if err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
		edges = append(edges, e)
	}

	return NewGraphWithVertices(vertices, edges)
}

func parseEdge(line string) (Edge, error) {
	tokens := fields(line)
	if len(tokens) != 2 {
		return Edge{}, fmt.Errorf("expected 2 fields, got %d: %w", len(tokens), ErrMalformedFile)
	}
	u, err := parseIndex(tokens[0])
	if err != nil {
		return Edge{}, err
	}
	v, err := parseIndex(tokens[1])
	if err != nil {
		return Edge{}, err
	}
	return NewEdge(u, v), nil
}

// ReadEdgeList. plain text edge list, one "u v" pair per line. A line with a single id declares an
// isolated vertex. Blank lines and lines starting with '#' are skipped.
func ReadEdgeList(r io.Reader) (*Graph, error) {
	var (
		edges    []Edge
		isolated []Index
	)

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		tokens := fields(line)
		switch len(tokens) {
		case 1:
			v, err := parseIndex(tokens[0])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			isolated = append(isolated, v)
		case 2:
			e, err := parseEdge(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			edges = append(edges, e)
		default:
			return nil, fmt.Errorf("line %d: expected 1 or 2 fields, got %d: %w", lineNo, len(tokens), ErrMalformedFile)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return NewGraph(edges, isolated...)
}

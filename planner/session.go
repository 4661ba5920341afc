// File: session.go
// Role: Interactive session: prompts, integer tokenizer, graph/query input
//       and the result report.
// Determinism:
//   - Output text depends only on the input tokens.
// Concurrency:
//   - A Session is used by one goroutine for one query.

package planner

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/travelplanner/core"
	"github.com/katalvlaran/travelplanner/dijkstra"
)

// Sentinel errors for session input.
var (
	// ErrMalformedInput indicates a token that is not an integer, or input
	// that ended before the protocol was complete.
	ErrMalformedInput = errors.New("planner: malformed input")

	// ErrNegativeRoutes indicates a negative route count.
	ErrNegativeRoutes = errors.New("planner: route count must be non-negative")
)

// Config tunes a Session.
type Config struct {
	// MaxCities bounds the city count accepted from the input.
	MaxCities int

	// Quiet suppresses prompts; only the result is written.
	Quiet bool
}

// DefaultConfig returns the configuration of the interactive binary.
func DefaultConfig() Config {
	return Config{MaxCities: core.DefaultMaxCities}
}

// Session reads one query from in and writes prompts and the result to out.
type Session struct {
	in  *bufio.Scanner
	out io.Writer
	cfg Config
	err error // first write error
}

// NewSession wraps in and out. Input is tokenised on whitespace.
func NewSession(in io.Reader, out io.Writer, cfg Config) *Session {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)

	return &Session{in: sc, out: out, cfg: cfg}
}

// Run is shorthand for NewSession(in, out, cfg).Run().
func Run(in io.Reader, out io.Writer, cfg Config) error {
	return NewSession(in, out, cfg).Run()
}

// Run executes the whole protocol: build the map, read the query, report.
func (s *Session) Run() error {
	g, err := s.ReadGraph()
	if err != nil {
		return err
	}

	from, to, err := s.ReadQuery()
	if err != nil {
		return err
	}

	return s.Report(g, from, to)
}

// ReadGraph prompts for the city count and the routes and builds the map.
func (s *Session) ReadGraph() (*core.Graph, error) {
	s.prompt("Enter number of cities: ")
	n, err := s.nextInt("number of cities")
	if err != nil {
		return nil, err
	}
	g, err := core.NewGraph(n, core.WithMaxCities(s.cfg.MaxCities))
	if err != nil {
		return nil, err
	}

	s.prompt("Enter number of routes: ")
	routes, err := s.nextInt("number of routes")
	if err != nil {
		return nil, err
	}
	if routes < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeRoutes, routes)
	}

	s.prompt("Enter routes (City1 City2 Distance):\n")
	for i := 1; i <= routes; i++ {
		a, err := s.nextInt(fmt.Sprintf("route %d city 1", i))
		if err != nil {
			return nil, err
		}
		b, err := s.nextInt(fmt.Sprintf("route %d city 2", i))
		if err != nil {
			return nil, err
		}
		w, err := s.nextInt64(fmt.Sprintf("route %d distance", i))
		if err != nil {
			return nil, err
		}
		if err = g.AddRoad(core.City(a), core.City(b), w); err != nil {
			return nil, fmt.Errorf("route %d: %w", i, err)
		}
	}

	return g, s.err
}

// ReadQuery prompts for the source and destination cities.
func (s *Session) ReadQuery() (from, to core.City, err error) {
	s.prompt("Enter source city: ")
	src, err := s.nextInt("source city")
	if err != nil {
		return core.NoCity, core.NoCity, err
	}

	s.prompt("Enter destination city: ")
	dst, err := s.nextInt("destination city")
	if err != nil {
		return core.NoCity, core.NoCity, err
	}

	return core.City(src), core.City(dst), s.err
}

// Report runs the engine and prints the distance and route, or a
// "No path exists" line when to is unreachable from from.
func (s *Session) Report(g *core.Graph, from, to core.City) error {
	p, err := dijkstra.Route(g, from, to)
	switch {
	case errors.Is(err, dijkstra.ErrNoPath):
		s.printf("\nNo path exists from City %d to City %d\n", from, to)
		return s.err
	case err != nil:
		return err
	}

	s.printf("\nShortest Distance from City %d to City %d: %d km\n", from, to, p.Distance)
	s.printf("Path: %s\n", p)

	return s.err
}

func (s *Session) prompt(text string) {
	if s.cfg.Quiet {
		return
	}
	s.printf("%s", text)
}

func (s *Session) printf(format string, args ...any) {
	if s.err != nil {
		return
	}
	if _, err := fmt.Fprintf(s.out, format, args...); err != nil {
		s.err = fmt.Errorf("planner: write output: %w", err)
	}
}

// next returns the next whitespace-separated token.
func (s *Session) next(what string) (string, error) {
	if s.in.Scan() {
		return s.in.Text(), nil
	}
	if err := s.in.Err(); err != nil {
		return "", fmt.Errorf("planner: read %s: %w", what, err)
	}

	return "", fmt.Errorf("%w: unexpected end of input reading %s", ErrMalformedInput, what)
}

func (s *Session) nextInt(what string) (int, error) {
	tok, err := s.next(what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %q is not an integer", ErrMalformedInput, what, tok)
	}

	return v, nil
}

func (s *Session) nextInt64(what string) (int64, error) {
	tok, err := s.next(what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %q is not an integer", ErrMalformedInput, what, tok)
	}

	return v, nil
}

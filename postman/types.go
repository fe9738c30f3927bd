// Package postman defines the result type, options and sentinel errors of
// the Chinese Postman solver.
package postman

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/postman/core"
	"github.com/katalvlaran/postman/matching"
)

// Sentinel errors returned by Solve and VerifyCircuit.
var (
	// ErrNilGraph indicates a nil *core.Graph.
	ErrNilGraph = errors.New("postman: graph is nil")

	// ErrDisconnected is the user-correctable failure: the positive-degree
	// vertices do not form one component. Reason() on it yields "disconnected".
	ErrDisconnected = errors.New("disconnected")

	// ErrTooManyOddVertices indicates more odd vertices than WithMaxOddVertices allows.
	ErrTooManyOddVertices = errors.New("postman: too many odd-degree vertices")

	// ErrAugmentedOddDegree indicates the augmented graph still has an odd
	// vertex. It can only come from a bug in an earlier stage.
	ErrAugmentedOddDegree = errors.New("postman: augmented graph has odd-degree vertex")

	// ErrCostOverflow indicates TotalWeight plus the matching cost does not
	// fit in an int64.
	ErrCostOverflow = errors.New("postman: route cost overflows int64")

	// ErrInvalidCircuit indicates VerifyCircuit rejected a walk.
	ErrInvalidCircuit = errors.New("postman: invalid circuit")
)

// Reason returns the short failure reason for an error returned by Solve:
// "disconnected" for ErrDisconnected, the error text otherwise.
func Reason(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrDisconnected) {
		return ErrDisconnected.Error()
	}

	return err.Error()
}

// Result is a successful solve.
type Result struct {
	// Circuit is the closed walk; len == Augmented.EdgeCount()+1.
	Circuit []string

	// Cost is the original total weight plus MatchingCost.
	Cost int64

	// OddVertices lists the odd-degree vertices in insertion order.
	OddVertices []string

	// Pairing is the minimum-weight matching of OddVertices (empty if none).
	Pairing matching.Pairing

	// MatchingCost is the total shortest-path cost of Pairing.
	MatchingCost int64

	// Augmented is the Eulerian graph the circuit was extracted from.
	// When the input had no odd vertices this is the input graph itself.
	Augmented *core.Graph
}

// Options configures Solve.
type Options struct {
	// Logger receives stage progress; defaults to a discarding logger.
	Logger *log.Logger

	// Strategy selects the matching algorithm (default matching.Exhaustive).
	Strategy matching.Strategy

	// Parallelism is forwarded to dijkstra.ComputeAllPairs.
	Parallelism int

	// MaxOddVertices caps the exponential matching stage; 0 means no cap.
	MaxOddVertices int
}

// Option is a functional option for Solve.
type Option func(*Options)

// WithLogger routes stage logs to l. A nil logger is ignored.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithStrategy selects the matching strategy.
func WithStrategy(s matching.Strategy) Option {
	return func(o *Options) { o.Strategy = s }
}

// WithParallelism runs up to n Dijkstra sources concurrently.
func WithParallelism(n int) Option {
	return func(o *Options) { o.Parallelism = n }
}

// WithMaxOddVertices makes Solve fail with ErrTooManyOddVertices instead of
// starting a matching over more than n vertices.
func WithMaxOddVertices(n int) Option {
	return func(o *Options) { o.MaxOddVertices = n }
}

// DefaultOptions returns the reference configuration: exhaustive matching,
// sequential shortest paths, no cap, silent logger.
func DefaultOptions() Options {
	return Options{
		Logger:      log.New(io.Discard),
		Strategy:    matching.Exhaustive,
		Parallelism: 1,
	}
}

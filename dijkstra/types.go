package dijkstra

import (
	"errors"
	"math"
)

// Infinity is the distance reported for vertices not reachable from the source.
const Infinity int64 = math.MaxInt64

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnknownSource indicates that the source vertex does not exist in the graph.
	ErrUnknownSource = errors.New("dijkstra: source vertex not found in graph")

	// ErrUnknownDestination indicates that a path was requested to a vertex
	// that is not part of the result.
	ErrUnknownDestination = errors.New("dijkstra: destination vertex not found")

	// ErrUnreachable indicates that the destination has no path from the source.
	ErrUnreachable = errors.New("dijkstra: destination unreachable from source")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat every edge as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance      – vertices whose distance would exceed this value are not explored.
//
//	Must be ≥ 0. Default is Infinity (no cap).
//
// InfEdgeThreshold – edges with weight ≥ this threshold are impassable.
//
//	Must be > 0. Default is Infinity (no obstacles).
type Options struct {
	MaxDistance      int64
	InfEdgeThreshold int64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
// A negative value makes Dijkstra return ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight at or above which edges are skipped.
// Zero or a negative value makes Dijkstra return ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options with no distance cap and no impassable edges.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      Infinity,
		InfEdgeThreshold: Infinity,
	}
}

func (o Options) validate() error {
	if o.MaxDistance < 0 {
		return ErrBadMaxDistance
	}
	if o.InfEdgeThreshold <= 0 {
		return ErrBadInfThreshold
	}

	return nil
}

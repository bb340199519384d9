package form

import (
	"fmt"
	"slices"
)

// Policy decides when a dependent field is re-evaluated after its source
// changes.
type Policy string

const (
	// Always re-evaluates the dependent on every source change.
	Always Policy = "always"
	// WhenInvalid re-evaluates the dependent only while it is Invalid.
	WhenInvalid Policy = "when_invalid"
)

// Edge declares that Dependent must be revisited when Source changes.
type Edge struct {
	Source    string
	Dependent string
	Policy    Policy
}

// Graph is the immutable set of dependency edges of a form.
type Graph struct {
	dependents map[string][]Edge
}

// NewGraph validates edges against the known field names. Edges keep their
// declaration order per source.
func NewGraph(fields []string, edges []Edge) (*Graph, error) {
	known := make(map[string]struct{}, len(fields))
	for _, name := range fields {
		known[name] = struct{}{}
	}

	g := &Graph{dependents: make(map[string][]Edge)}
	for _, e := range edges {
		if _, ok := known[e.Source]; !ok {
			return nil, fmt.Errorf("%w: unknown source %q", ErrInvalidDependency, e.Source)
		}
		if _, ok := known[e.Dependent]; !ok {
			return nil, fmt.Errorf("%w: unknown dependent %q", ErrInvalidDependency, e.Dependent)
		}
		if e.Source == e.Dependent {
			return nil, fmt.Errorf("%w: %q depends on itself", ErrInvalidDependency, e.Source)
		}
		if e.Policy == "" {
			e.Policy = WhenInvalid
		}
		if e.Policy != Always && e.Policy != WhenInvalid {
			return nil, fmt.Errorf("%w: unknown policy %q", ErrInvalidDependency, e.Policy)
		}
		if g.has(e.Source, e.Dependent) {
			continue
		}
		g.dependents[e.Source] = append(g.dependents[e.Source], e)
	}
	return g, nil
}

func (g *Graph) has(source, dependent string) bool {
	for _, e := range g.dependents[source] {
		if e.Dependent == dependent {
			return true
		}
	}
	return false
}

// Dependents returns the edges leaving source in declaration order.
func (g *Graph) Dependents(source string) []Edge {
	return slices.Clone(g.dependents[source])
}

// Package graph assembles classified bindings into a binding graph and
// validates that every request can be satisfied without unbreakable cycles.
package graph

import (
	"iter"
	"slices"
	"strings"

	"go.trai.ch/zerr"

	"go.trai.ch/weft/internal/core/domain"
)

// nodeID identifies a graph node. The fingerprint folds qualifier, type and
// contribution identifier, so two contributions to the same aggregate key
// occupy distinct nodes.
type nodeID struct {
	kind domain.BindingKeyKind
	fp   uint64
}

func idFor(bk domain.BindingKey) nodeID {
	return nodeID{kind: bk.Kind, fp: bk.Key.Fingerprint()}
}

// Graph is a binding graph under construction. Add bindings, then Validate
// before walking; Walk yields bindings in dependency order.
type Graph struct {
	nodes map[nodeID]domain.Binding
	order []nodeID
}

// New creates a new empty Graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[nodeID]domain.Binding),
	}
}

// Add registers a binding under its binding key. Two bindings may not share a
// key: multibinding contributions stay distinct because their keys carry the
// contribution identifier.
func (g *Graph) Add(b domain.Binding) error {
	id := idFor(b.BindingKey())
	if existing, exists := g.nodes[id]; exists {
		return zerr.With(zerr.With(domain.ErrDuplicateBinding,
			"key", b.BindingKey().String()),
			"module", existing.Module.String())
	}
	g.nodes[id] = b
	return nil
}

// Lookup returns the binding registered under the given binding key.
func (g *Graph) Lookup(bk domain.BindingKey) (domain.Binding, bool) {
	b, ok := g.nodes[idFor(bk)]
	return b, ok
}

// Size returns the number of bindings in the graph.
func (g *Graph) Size() int {
	return len(g.nodes)
}

// Contributions returns the multibinding contributions matching the element
// key, qualifier and element type both, in deterministic order. The caller
// derives the element key from the aggregate it is assembling.
func (g *Graph) Contributions(element domain.Key) []domain.ContributionBinding {
	var out []domain.ContributionBinding
	for _, b := range g.nodes {
		if !b.Contribution.Multibinding() || b.Members {
			continue
		}
		if b.Key.Qualifier != element.Qualifier || !b.Key.Type.Equal(element.Type) {
			continue
		}
		out = append(out, domain.ContributionBinding{Type: b.Contribution, Key: b.Key})
	}
	slices.SortFunc(out, func(a, b domain.ContributionBinding) int {
		return strings.Compare(a.Key.String(), b.Key.String())
	})
	return out
}

// Validate checks that every dependency resolves to a binding and that the
// graph has no hard cycles, using a depth-first topological sort. A cycle is
// breakable when any edge along it is requested through a deferring wrapper
// such as Provider or Lazy: the wrapper delays that lookup until after
// construction, wherever in the loop it sits. Validate populates the order
// Walk yields in.
func (g *Graph) Validate() error {
	g.order = make([]nodeID, 0, len(g.nodes))
	visited := make(map[nodeID]int) // 0: unvisited, 1: visiting, 2: visited
	var path []nodeID
	// edges[i] is the request kind of the edge entering path[i]; edges[0] is
	// unused for DFS roots.
	var edges []domain.RequestKind

	var visit func(id nodeID, via domain.RequestKind) error
	visit = func(id nodeID, via domain.RequestKind) error {
		visited[id] = 1
		path = append(path, id)
		edges = append(edges, via)

		binding := g.nodes[id]
		for _, dep := range binding.Dependencies {
			bk, err := dep.BindingKey()
			if err != nil {
				return err
			}
			depID := idFor(bk)

			if _, exists := g.nodes[depID]; !exists {
				return zerr.With(zerr.With(domain.ErrMissingBinding,
					"key", bk.String()),
					"requested_by", binding.BindingKey().String())
			}
			if visited[depID] == 1 {
				if cycleBreakable(path, edges, depID, dep.Kind) {
					continue
				}
				return g.cycleError(path, depID)
			}
			if visited[depID] == 0 {
				if err := visit(depID, dep.Kind); err != nil {
					return err
				}
			}
		}

		visited[id] = 2
		path = path[:len(path)-1]
		edges = edges[:len(edges)-1]
		g.order = append(g.order, id)
		return nil
	}

	for _, id := range g.sortedIDs() {
		if visited[id] == 0 {
			if err := visit(id, domain.KindInstance); err != nil {
				return err
			}
		}
	}

	return nil
}

// cycleBreakable reports whether the cycle closed by the back edge to dep
// contains at least one deferring edge. The cycle's edges are the closing
// edge plus the tree edges entering path[i] for i past dep's position; the
// edge entering dep itself is outside the loop.
func cycleBreakable(path []nodeID, edges []domain.RequestKind, dep nodeID, closing domain.RequestKind) bool {
	if deferring(closing) {
		return true
	}
	start := slices.Index(path, dep)
	for i := start + 1; i < len(path); i++ {
		if deferring(edges[i]) {
			return true
		}
	}
	return false
}

// Walk returns an iterator yielding bindings in dependency order, each binding
// after everything it directly depends on. It assumes Validate() has been
// called and returned nil.
func (g *Graph) Walk() iter.Seq[domain.Binding] {
	return func(yield func(domain.Binding) bool) {
		for _, id := range g.order {
			if !yield(g.nodes[id]) {
				return
			}
		}
	}
}

// deferring reports whether a request kind delays its lookup behind a wrapper,
// making a cycle through it breakable.
func deferring(kind domain.RequestKind) bool {
	switch kind {
	case domain.KindLazy, domain.KindProvider, domain.KindProviderOfLazy,
		domain.KindProducer, domain.KindFuture:
		return true
	default:
		return false
	}
}

// sortedIDs returns the node ids ordered by rendered key so validation and
// walking stay deterministic across runs.
func (g *Graph) sortedIDs() []nodeID {
	ids := make([]nodeID, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b nodeID) int {
		return strings.Compare(
			g.nodes[a].BindingKey().String(),
			g.nodes[b].BindingKey().String(),
		)
	})
	return ids
}

// cycleError renders the cycle path into error metadata.
func (g *Graph) cycleError(path []nodeID, dep nodeID) error {
	start := slices.Index(path, dep)
	var sb strings.Builder
	for i := start; i >= 0 && i < len(path); i++ {
		sb.WriteString(g.nodes[path[i]].BindingKey().String())
		sb.WriteString(" -> ")
	}
	sb.WriteString(g.nodes[dep].BindingKey().String())
	return zerr.With(domain.ErrBindingCycle, "cycle", sb.String())
}

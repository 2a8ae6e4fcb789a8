package builder

import "github.com/matzehuels/apigraph/pkg/model"

// resolveInheritance replaces every node's inheritance set with its
// transitive closure: the flattened ancestors recorded during wiring plus
// every inheriting AllOf target, each together with its own closure. A node
// never lists itself, even inside an allOf cycle.
func (b *Builder) resolveInheritance() {
	direct := make(map[string][]string, b.g.NodeCount())
	for _, n := range b.g.Nodes() {
		parents := n.Inheritance.Clone()
		for _, e := range b.g.OutEdges(n.Name) {
			if e.Kind == model.EdgeAllOf && e.IsInheritance() {
				parents.Add(e.To)
			}
		}
		direct[n.Name] = parents.Sorted()
	}

	closed := make(map[string]model.NameSet, len(direct))
	for name := range direct {
		seen := model.NewNameSet()
		stack := append([]string(nil), direct[name]...)
		for len(stack) > 0 {
			a := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if seen.Has(a) {
				continue
			}
			seen.Add(a)
			stack = append(stack, direct[a]...)
		}
		seen.Remove(name)
		closed[name] = seen
	}

	for _, n := range b.g.Nodes() {
		if s := closed[n.Name]; s.Len() > 0 {
			n.Inheritance = s
		} else {
			n.Inheritance = nil
		}
	}
}

// resolveDiscriminators computes every node's effective dispatch set: its
// local mapping plus the local mappings of everything it inherits from. It
// runs after resolveInheritance, so the ancestors are already closed. A node
// without a mapping of its own that finds itself in the result becomes its
// own single local target.
func (b *Builder) resolveDiscriminators() {
	for _, n := range b.g.Nodes() {
		result := n.LocalDiscriminators.Clone()
		for _, a := range n.Inheritance.Sorted() {
			if p, ok := b.g.Node(a); ok {
				result.AddAll(p.LocalDiscriminators)
			}
		}
		if result.Len() == 0 {
			n.Discriminators = nil
			continue
		}
		n.Discriminators = result
	}
	for _, n := range b.g.Nodes() {
		if n.LocalDiscriminators.Len() == 0 && n.Discriminators.Has(n.Name) {
			n.LocalDiscriminators = model.NewNameSet(n.Name)
		}
	}
}

package complexity_test

import (
	"fmt"

	"github.com/matzehuels/apigraph/pkg/complexity"
	"github.com/matzehuels/apigraph/pkg/model"
)

func ExampleScore() {
	g := model.New()
	for _, name := range []string{"Order", "Customer", "Address", "Phone", "Email"} {
		_ = g.AddNode(model.NewNode(name))
	}
	_ = g.AddEdge(&model.Edge{From: "Order", To: "Customer", Kind: model.EdgeRelationship, Label: "customer"})
	for _, to := range []string{"Address", "Phone", "Email"} {
		_ = g.AddEdge(&model.Edge{From: "Customer", To: to, Kind: model.EdgeRelationship, Label: to})
	}

	r, _ := complexity.Score(g, "Order", complexity.DefaultParams())
	for _, s := range r.Nodes[:2] {
		fmt.Printf("%s: %g\n", s.Name, s.Contribution)
	}
	fmt.Println("total:", r.Total, "decompose:", r.MustDecompose())
	// Output:
	// Customer: 120
	// Order: 6
	// total: 126 decompose: false
}

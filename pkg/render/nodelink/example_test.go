package nodelink_test

import (
	"fmt"

	"github.com/matzehuels/apigraph/pkg/model"
	"github.com/matzehuels/apigraph/pkg/render/nodelink"
)

func ExampleToDOT() {
	g := model.New()
	_ = g.AddNode(model.NewNode("Animal"))
	_ = g.AddNode(model.NewNode("Dog"))
	_ = g.AddEdge(&model.Edge{From: "Dog", To: "Animal", Kind: model.EdgeAllOf})

	fmt.Print(nodelink.ToDOT(g, nodelink.Options{}))
	// Output:
	// digraph G {
	//   rankdir=BT;
	//   bgcolor="transparent";
	//   node [shape=record, style=filled, fillcolor=white, fontname="Helvetica", fontsize=12];
	//   edge [fontname="Helvetica", fontsize=10];
	//   ranksep=0.6;
	//   nodesep=0.4;
	//
	//   "Animal" [label="Animal"];
	//   "Dog" [label="Dog"];
	//
	//   "Dog" -> "Animal" [arrowhead=empty];
	// }
}

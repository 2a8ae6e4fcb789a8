// Package pkg provides the core libraries for apigraph class diagrams.
//
// # Overview
//
// apigraph turns the type definitions of an API schema into a class diagram
// and splits diagrams that grow too large into several readable ones. The
// data flow:
//
//	schema facts (YAML/JSON)
//	         ↓
//	    [resolver] per-type facts
//	         ↓
//	    [builder] complete type graph ([model])
//	         ↓
//	    [complexity] score around a resource
//	         ↓
//	    [decompose] pruned subgraphs
//	         ↓
//	    [render/nodelink] DOT / SVG / PDF / PNG, or [io] JSON
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/apigraph/pkg/builder"
//	    "github.com/matzehuels/apigraph/pkg/config"
//	    "github.com/matzehuels/apigraph/pkg/decompose"
//	    "github.com/matzehuels/apigraph/pkg/render/nodelink"
//	    "github.com/matzehuels/apigraph/pkg/resolver"
//	)
//
//	cfg := config.Default()
//	m, _ := cfg.Matchers()
//	doc, _ := resolver.Load("api.yaml", m.Flatten)
//
//	opts, _ := builder.OptionsFromConfig(cfg)
//	g := builder.Build(doc, opts, nil)
//
//	dopts, _ := decompose.OptionsFromConfig(cfg)
//	subs, _ := decompose.New(g, dopts, nil).SubGraphs("Order")
//	for root, sub := range subs {
//	    dot := nodelink.ToDOT(sub, nodelink.Options{Root: root, Detailed: true})
//	    // ...
//	}
//
// # Main Packages
//
// [model] - Nodes, properties and typed edges of a directed multigraph keyed
// by type name.
//
// [resolver] - The per-type facts consumed by the builder and a document
// implementation decoded from a normalized facts file.
//
// [builder] - Graph construction: property and structural edges, inline
// suppression, transitive inheritance, discriminator closure and redundancy
// marking.
//
// [complexity] - The heuristic diagram complexity metric and the selection of
// nodes to extract.
//
// [decompose] - Inheritance-aware subgraph extraction and pruning.
//
// [pipeline] - load → build → decompose → render with artifact caching, used
// by the CLI.
//
// [config], [errors], [cache], [observability] and [buildinfo] carry the
// ambient concerns.
//
// # Testing
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/builder/...  # Specific package
//	go test -run Example       # Examples only
//
// [model]: https://pkg.go.dev/github.com/matzehuels/apigraph/pkg/model
// [resolver]: https://pkg.go.dev/github.com/matzehuels/apigraph/pkg/resolver
// [builder]: https://pkg.go.dev/github.com/matzehuels/apigraph/pkg/builder
// [complexity]: https://pkg.go.dev/github.com/matzehuels/apigraph/pkg/complexity
// [decompose]: https://pkg.go.dev/github.com/matzehuels/apigraph/pkg/decompose
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/apigraph/pkg/pipeline
// [config]: https://pkg.go.dev/github.com/matzehuels/apigraph/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/apigraph/pkg/errors
// [cache]: https://pkg.go.dev/github.com/matzehuels/apigraph/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/apigraph/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/apigraph/pkg/buildinfo
//
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/apigraph/pkg/render/nodelink
// [io]: https://pkg.go.dev/github.com/matzehuels/apigraph/pkg/io
package pkg

// Package io provides JSON import and export for type graphs.
//
// # JSON Format
//
// A graph is an object with two arrays:
//
//	{
//	  "nodes": [
//	    {"name": "Vehicle", "kind": "type", "discriminators": ["Car", "Truck"]},
//	    {"name": "Car", "kind": "type", "inheritance": ["Vehicle"]}
//	  ],
//	  "edges": [
//	    {"from": "Car", "to": "Vehicle", "kind": "allOf", "marked": true},
//	    {"from": "Vehicle", "to": "Car", "kind": "discriminator", "marked": true}
//	  ]
//	}
//
// Nodes carry their properties (with visibility, cardinality and enum
// values), inline definition, inheritance and discriminator sets. Edges carry
// kind, label, cardinality and the redundancy and containment flags. Name
// sets are written sorted so exports of the same graph are byte-identical.
//
// A decomposition is written by [WriteSubGraphs] as
//
//	{"subgraphs": {"Order": {...}, "Customer": {...}}}
//
// # Import
//
// [ReadGraph] and [ImportGraph] rebuild a graph from the format above. The
// result is an independent graph; node and edge records are newly allocated.
package io

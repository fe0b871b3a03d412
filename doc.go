// Package crndecomp computes incidence independent decompositions of
// chemical reaction networks.
//
// A network is split into the finest partition of its (pseudo-)reactions
// whose incidence structures are independent: the rank of the incidence
// matrix equals the sum of the ranks of the partitions' sub-matrices.
// Networks that admit no nontrivial split are reported as such.
//
// Under the hood, everything is organized under these packages:
//
//	core/      thread-safe Graph, Vertex, Edge; hosts the reaction graph
//	bfs/       breadth-first search and connected components
//	matrix/    Dense storage, row-echelon reduction, thin QR, least squares
//	crn/       network model, species index, complex table, incidence matrix
//	decomp/    basis, combinations, reaction graph, partition state machine
//	cmd/crndecomp  command line: decompose, species, incidence, config, version
//
// Quick start:
//
//	net := crn.Network{ID: "toy", Reactions: []crn.Reaction{
//		{Reactants: []crn.Term{{Species: "A", Coefficient: 1}},
//			Products: []crn.Term{{Species: "B", Coefficient: 1}}, Reversible: true},
//		{Reactants: []crn.Term{{Species: "C", Coefficient: 1}},
//			Products: []crn.Term{{Species: "D", Coefficient: 1}}, Reversible: true},
//	}}
//	res, err := decomp.Decompose(net)
//	// res.PartitionLabels() == [[R1 R2] [R3 R4]]
package crndecomp

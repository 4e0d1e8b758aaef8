// Package pkg provides the core libraries for phylograph tree visualization.
//
// # Overview
//
// Phylograph turns Newick-formatted phylogenetic trees into positioned 2-D
// layouts and rendered artifacts. The pkg directory is organized by pipeline
// stage:
//
//  1. [newick] - Newick grammar parser producing raw parse trees
//  2. [tree] - display tree structure shared by layout and rendering
//  3. [layout] - 2-D placement engine with four orientations
//  4. [render] - SVG, DOT, and PNG output
//  5. [pipeline] - orchestration (parse → layout → render) with caching
//  6. [cache] - file, Redis, and null cache backends
//
// # Architecture
//
// The typical data flow through phylograph:
//
//	Newick string
//	         ↓
//	    [newick] package (parse into raw tree)
//	         ↓
//	    [tree] package (display tree structure)
//	         ↓
//	    [layout] package (2-D node placement)
//	         ↓
//	    [render] package (SVG/DOT/PNG output)
//
// # Quick Start
//
//	runner := pipeline.NewRunner(nil, nil, nil)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Newick:  "((A:0.1,B:0.2):0.05,C:0.3);",
//	    Formats: []string{"svg"},
//	})
package pkg

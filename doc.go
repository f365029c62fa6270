// Package dijkbench is a small benchmarking harness for external
// shortest-path solvers. It builds random weighted undirected graphs, runs
// each solver executable on them, and reports wall-clock time against graph
// size.
//
// Layout:
//
//	core/      — weighted undirected Graph on vertices 0..N-1, stats, gonum view
//	builder/   — RandomSparse G(n,p) constructor and Generate, seeded explicitly
//	textgraph/ — "<i>-<j>-<cost>" line format: Format, Parse, link counting
//	solver/    — spawn one executable, feed stdin, drain stdout, time it
//	bench/     — the sequential driver loop and its Config
//	report/    — fixed-width tables built from a generic column layout
//	cmd/dijkbench — the command-line entry point
//
// The solvers themselves live outside this module. Any program that reads
// the graph from stdin and exits can be timed.
package dijkbench

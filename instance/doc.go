// Package instance reads a TSPLIB/DIMACS-style CVRP instance file into a
// problem.Builder. It understands three sections:
//
//	NAME / CAPACITY        : header keys, one "KEY : VALUE" per line
//	NODE_COORD_SECTION      : "<id> <x> <y>" per line, 1-indexed
//	DEMAND_SECTION          : "<id> <demand>" per line
//	DEPOT_SECTION           : depot id(s), terminated by a "-1" line
//
// Parsing is a single forward pass with bufio.Scanner — no parser-combinator
// dependency is pulled in, since no example in this codebase's corpus reaches
// for one to read a line-oriented text format this simple.
package instance

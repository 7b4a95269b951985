// Package translate reconstructs typed OWL axioms from an unordered RDF
// triple graph. It is a recursive-descent engine over graph structure rather
// than a token stream: constructs are recognized by matching a main node
// against candidate triple patterns, fillers are resolved recursively, and a
// memoization cache keyed by blank-node identity preserves shared
// substructure and converts cycles into diagnostics instead of unbounded
// recursion.
//
// Translation of one document is single-threaded and pure computation over
// the in-memory store; independent documents may translate concurrently on
// separate Contexts.
package translate

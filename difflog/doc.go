// Package difflog implements an incremental satisfiability engine for
// Difference Logic (DL) over the integer or real domain.
//
// A DL atom constrains two variables as x − y ≤ c, x − y < c, or x − y = c.
// The engine (Engine) decides whether a growing, backtrackable conjunction
// of such atoms is satisfiable, maintains a potential function witness (a
// per-variable numeric assignment under which every asserted edge holds),
// and on contradiction produces a small unsat core. It also performs theory
// propagation: finding still-unassigned literals now entailed by the
// assigned ones, and detecting pairs of shared terms that have become
// provably equal for exchange with a congruence-closure sibling theory in a
// Nelson-Oppen combination.
//
// Scope. This package is the DL theory solver only: potential-function
// maintenance (Cotton-Maler style), a push/pop trail, Johnson-reweighted
// shortest paths for propagation and core extraction, and the unsat-core /
// equality-propagation interfaces. Parsing, the SAT/SMT driver, LA+EUF
// interpolation and the congruence-closure sibling theory are out of scope;
// they are external collaborators that feed normalized atoms in and consume
// the Sat/UnSat verdict, propagated equalities, and justifications.
//
// Concurrency. The engine is single-threaded and cooperative-by-call: it
// performs no I/O, starts no goroutines, and every operation is synchronous.
// A *Engine must not be shared across goroutines without external locking.
package difflog

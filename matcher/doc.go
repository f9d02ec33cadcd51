// Package matcher compiles tiered pattern sources into matchers and assembles
// them into a Table addressed by (atom, script class, tier).
//
// Compilation keeps going past failures: a cell whose source does not compile
// is left empty, and the returned *CompileError lists every failed cell next
// to the partially populated table. Callers decide whether degraded matching
// is acceptable.
//
// Matchers use github.com/dlclark/regexp2 for Perl-style syntax including
// lookaround. All matching is case-sensitive, single-line, and bounded by a
// per-match timeout. A compiled Table is immutable and safe for concurrent use.
package matcher

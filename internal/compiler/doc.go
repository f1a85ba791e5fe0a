/*
Package compiler is the top-level orchestrator. It classifies an incoming
source unit (application root, page entry, or included child element),
records its identity and parent edge in the session's component reference
graph, discovers sibling style/script/config assets on disk, resolves a
transform chain per asset, and emits target-mode-specific generated module
code through the codegen variants.

Compilation of a unit is re-entrant and runs synchronously to completion.
The only state shared between units lives in the session: the reference
graph, the diagnostics sink and the chain resolver, all safe for concurrent
use. Errors never escape Compile; every failure mode degrades to
diagnostics and, at worst, empty generated output for the one unit.
*/
package compiler

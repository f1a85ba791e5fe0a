// Package refgraph tracks component identity and parent/child inclusion
// edges across a build session. Custom-element names are reserved in the
// scope of a component's effective parent, found by single-hop flattening of
// the inclusion chain, so sibling names stay unique across the whole
// ancestor chain. All comparisons are case-insensitive over NFC-normalized
// text.
package refgraph

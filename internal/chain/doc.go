// Package chain decides which transform stages must process an asset before
// it becomes a loadable module reference, and serializes the ordered stage
// list into a chain descriptor string. Resolution is pure with respect to its
// declared inputs, so results are memoized.
package chain

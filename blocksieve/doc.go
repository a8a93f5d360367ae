// SPDX-License-Identifier: MIT

// Package blocksieve indexes vertex sets so that all stored supersets (or
// subsets) of a query set can be listed without scanning every entry.
//
// A Sieve is a trie over the 64-bit words of the stored bit-vectors. Word
// i of a key is consumed by a chain of nodes, each owning a run of
// consecutive bits [ntz, ntz+width) of that word. A node keeps the distinct
// values its run takes, sorted as unsigned integers, in the narrowest
// integer type that fits the run (8, 16, 32 or 64 bits). When a node
// collects more than MaxNodeLabels labels it is split into a narrower node
// over the low half of its run whose children cover the rest.
//
// A superset query descends only into labels L with q &^ L == 0 and, since
// such an L is never numerically below q, stops scanning a node as soon as
// labels drop below q. The subset query is the mirror image.
//
// Sieve is not safe for concurrent use.
package blocksieve

// SPDX-License-Identifier: MIT
//
// File: node.go
// Role: trie node with a width-tagged label array and the generic walkers
// shared by all label widths.

package blocksieve

import "slices"

type unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// labelKind tags which label slice of a node is in use.
type labelKind uint8

const (
	kind8 labelKind = iota
	kind16
	kind32
	kind64
)

func kindFor(width int) labelKind {
	switch {
	case width > 32:
		return kind64
	case width > 16:
		return kind32
	case width > 8:
		return kind16
	default:
		return kind8
	}
}

// node owns bits [ntz, ntz+width) of word index. Exactly one of the label
// slices is used, chosen by kind. Leaves carry values, inner nodes
// children, both parallel to the labels.
type node[V any] struct {
	index int
	width int
	ntz   int
	kind  labelKind

	l8  []uint8
	l16 []uint16
	l32 []uint32
	l64 []uint64

	children []*node[V]
	values   []V
}

func newNode[V any](index, width, ntz int) *node[V] {
	return &node[V]{index: index, width: width, ntz: ntz, kind: kindFor(width)}
}

func (n *node[V]) mask() uint64 { return runMask(n.ntz, n.width) }

func (n *node[V]) lastInWord() bool { return n.ntz+n.width == 64 }

func (n *node[V]) isLeaf(last int) bool { return n.index == last && n.lastInWord() }

func (n *node[V]) size() int {
	switch n.kind {
	case kind8:
		return len(n.l8)
	case kind16:
		return len(n.l16)
	case kind32:
		return len(n.l32)
	default:
		return len(n.l64)
	}
}

// labelAt returns label i shifted back into word position.
func (n *node[V]) labelAt(i int) uint64 {
	var x uint64
	switch n.kind {
	case kind8:
		x = uint64(n.l8[i])
	case kind16:
		x = uint64(n.l16[i])
	case kind32:
		x = uint64(n.l32[i])
	default:
		x = n.l64[i]
	}

	return x << n.ntz
}

// run extracts this node's bits from a full word.
func (n *node[V]) run(w uint64) uint64 { return (w & n.mask()) >> n.ntz }

func (n *node[V]) indexOf(w uint64) (int, bool) {
	x := n.run(w)
	switch n.kind {
	case kind8:
		return slices.BinarySearch(n.l8, uint8(x))
	case kind16:
		return slices.BinarySearch(n.l16, uint16(x))
	case kind32:
		return slices.BinarySearch(n.l32, uint32(x))
	default:
		return slices.BinarySearch(n.l64, x)
	}
}

// addLabel inserts the run of w and returns its position. The label must
// be absent.
func (n *node[V]) addLabel(w uint64) int {
	i, _ := n.indexOf(w)
	x := n.run(w)
	switch n.kind {
	case kind8:
		n.l8 = slices.Insert(n.l8, i, uint8(x))
	case kind16:
		n.l16 = slices.Insert(n.l16, i, uint16(x))
	case kind32:
		n.l32 = slices.Insert(n.l32, i, uint32(x))
	default:
		n.l64 = slices.Insert(n.l64, i, x)
	}

	return i
}

func (n *node[V]) addChild(w uint64, child *node[V]) {
	i := n.addLabel(w)
	n.children = slices.Insert(n.children, i, child)
}

func (n *node[V]) addValue(w uint64, v V) {
	i := n.addLabel(w)
	n.values = slices.Insert(n.values, i, v)
}

// collect dispatches on the label width once and walks the typed slice.
func (n *node[V]) collect(q []uint64, last int, superset bool, out []V) []V {
	bits := n.run(word(q, n.index))
	switch n.kind {
	case kind8:
		return walk(n, n.l8, uint8(bits), q, last, superset, out)
	case kind16:
		return walk(n, n.l16, uint16(bits), q, last, superset, out)
	case kind32:
		return walk(n, n.l32, uint32(bits), q, last, superset, out)
	default:
		return walk(n, n.l64, bits, q, last, superset, out)
	}
}

// walk visits the labels compatible with bits. For supersets it scans from
// the largest label down and stops below bits; for subsets it scans up and
// stops above bits.
func walk[V any, T unsigned](n *node[V], labels []T, bits T, q []uint64, last int, superset bool, out []V) []V {
	leaf := n.isLeaf(last)
	visit := func(i int) {
		if leaf {
			out = append(out, n.values[i])
		} else {
			out = n.children[i].collect(q, last, superset, out)
		}
	}
	if superset {
		for i := len(labels) - 1; i >= 0; i-- {
			l := labels[i]
			if bits > l {
				break
			}
			if bits&^l == 0 {
				visit(i)
			}
		}

		return out
	}
	for i, l := range labels {
		if bits < l {
			break
		}
		if l&^bits == 0 {
			visit(i)
		}
	}

	return out
}

func searchUint64(s []uint64, x uint64) (int, bool) { return slices.BinarySearch(s, x) }

func insertAt(s []uint64, i int, x uint64) []uint64 { return slices.Insert(s, i, x) }

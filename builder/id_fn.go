// SPDX-License-Identifier: MIT
//
// File: id_fn.go
// Role: vertex ID schemes.

package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates a vertex identifier from its zero-based index. It must be
// deterministic.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// PaddedIDFn returns idx zero-padded to width digits, so that IDs sort in
// index order (width 3: 7→"007").
func PaddedIDFn(width int) IDFn {
	return func(idx int) string {
		return fmt.Sprintf("%0*d", width, idx)
	}
}

// ExcelColumnIDFn returns the spreadsheet column name for idx:
// 0→"A", 25→"Z", 26→"AA". Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// SymbolNumberIDFn returns prefix + decimal index, e.g. "v0", "v1".
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string { return prefix + strconv.Itoa(idx) }
}

// WithSymbNumb sets the ID scheme to SymbolNumberIDFn(prefix).
func WithSymbNumb(prefix string) BuilderOption {
	return WithIDScheme(SymbolNumberIDFn(prefix))
}

// WithPaddedIDs sets the ID scheme to PaddedIDFn(width). Panics if
// width < 1.
func WithPaddedIDs(width int) BuilderOption {
	if width < 1 {
		panic("builder: WithPaddedIDs(width<1)")
	}

	return WithIDScheme(PaddedIDFn(width))
}

// WithExcelColumnIDs sets the ID scheme to ExcelColumnIDFn.
func WithExcelColumnIDs() BuilderOption {
	return WithIDScheme(ExcelColumnIDFn)
}

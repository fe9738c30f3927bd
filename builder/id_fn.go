// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps a zero-based vertex index to its label. It must be pure.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 42→"42".
// Complexity: O(log idx). Never panics.
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// ExcelColumnIDFn returns the spreadsheet column name of idx:
// 0→"A", 25→"Z", 26→"AA". Panics if idx < 0.
// Complexity: O(log₂₆ idx).
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}

	// 1) bijective base-26 digits, least significant first
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}

	// 2) reverse in place
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// SymbolNumberIDFn returns prefix + decimal index, e.g. "v0", "v1".
// Complexity: O(len(prefix) + log idx) per call.
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}

// WithExcelColumnIDs labels vertices "A", "B", …, "AA", ….
func WithExcelColumnIDs() BuilderOption {
	return WithIDScheme(ExcelColumnIDFn)
}

// WithSymbNumb labels vertices prefix+index.
func WithSymbNumb(prefix string) BuilderOption {
	return WithIDScheme(SymbolNumberIDFn(prefix))
}

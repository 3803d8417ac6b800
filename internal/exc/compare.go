package exc

import "golang.org/x/exp/constraints"

// sameSize reports whether two integer sizes are equal. The operands may
// have different types and signedness; negative values never equal
// unsigned ones.
func sameSize[A, B constraints.Integer](a A, b B) bool {
	if a < 0 || b < 0 {
		return int64(a) == int64(b) && (a < 0) == (b < 0)
	}
	return uint64(a) == uint64(b)
}

// indexBelow reports whether index is a valid offset into a collection of
// the given size, i.e. 0 <= index < size.
func indexBelow[A, B constraints.Integer](index A, size B) bool {
	if index < 0 || size <= 0 {
		return false
	}
	return uint64(index) < uint64(size)
}

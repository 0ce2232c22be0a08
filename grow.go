package smallstr

import "math/bits"

// initialHeapCapacity is the heap buffer size used when a single-rune Push
// escalates inline storage. Bulk appends and Reserve instead compute a
// power-of-two capacity from the required length; callers observe the
// asymmetry, so it is part of the type's contract.
const initialHeapCapacity = 32

// bulkCapacity returns the capacity for bulk growth: the smallest power of
// two that holds need, or need itself when the power of two would overflow.
func bulkCapacity(need int) int {
	if need <= 1 {
		return 1
	}
	k := bits.Len(uint(need - 1))
	if k >= bits.UintSize-1 {
		return need
	}
	return 1 << k
}

// doubledCapacity returns the capacity for incremental growth: twice the
// current heap capacity, floored at need so a shrunk-to-zero buffer or a
// wide rune near the boundary can never come up short.
func doubledCapacity(current, need int) int {
	doubled := 2 * current
	if doubled < need {
		return need
	}
	return doubled
}

/*
Package vec provides a growable sequence with contiguous storage and
explicit, predictable storage management.

The sequence separates capacity (allocated slots) from length (live
elements). Slots beyond the live length hold the element type's zero value
and are never observable through the checked access paths. Growth follows an
amortized policy of roughly 1.5x plus a small constant, so appending n
elements triggers O(log n) reallocations.

Storage discipline:
  - reallocation moves live elements to a fresh block in ascending order,
  - moved-from slots of the old block are released immediately, so the old
    block retains no references,
  - block and capacity are swapped in only after the new block is fully
    populated; a failed growth leaves the sequence untouched.

Mutating operations that can fail return recoverable errors; the sequence is
never left in a partially-updated state.

# License

Governed by the module license, see the root package.
*/
package vec

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}

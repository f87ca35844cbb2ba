// Package stablesort sorts small slices by insertion and larger ones with a
// top-down merge, preserving the relative order of equal elements either way.
// Both strategies order by the same comparison, so which one runs never shows
// in the output, only in the allocation profile.
package stablesort

// InsertionThreshold is the length below which Sort uses insertion sort
// instead of allocating scratch for a merge.
const InsertionThreshold = 10

// Sort orders items in place by less, keeping equal elements in their
// original order.
func Sort[T any](items []T, less func(a, b T) bool) {
	if len(items) < InsertionThreshold {
		insertionSort(items, less)
		return
	}
	scratch := make([]T, len(items))
	copy(scratch, items)
	mergeSort(scratch, items, less)
}

func insertionSort[T any](items []T, less func(a, b T) bool) {
	for i := 1; i < len(items); i++ {
		for j := i; j > 0 && less(items[j], items[j-1]); j-- {
			items[j], items[j-1] = items[j-1], items[j]
		}
	}
}

// mergeSort sorts the elements of src into dst. Both slices hold the same
// elements on entry; the halves recurse with the roles swapped so that every
// level merges out of place without a copy back.
func mergeSort[T any](src, dst []T, less func(a, b T) bool) {
	if len(src) < 2 {
		return
	}
	mid := len(src) / 2
	mergeSort(dst[:mid], src[:mid], less)
	mergeSort(dst[mid:], src[mid:], less)
	merge(src[:mid], src[mid:], dst, less)
}

// merge takes from a on ties, which is what keeps the sort stable.
func merge[T any](a, b, dst []T, less func(a, b T) bool) {
	i, j := 0, 0
	for k := range dst {
		switch {
		case i >= len(a):
			dst[k] = b[j]
			j++
		case j >= len(b) || !less(b[j], a[i]):
			dst[k] = a[i]
			i++
		default:
			dst[k] = b[j]
			j++
		}
	}
}

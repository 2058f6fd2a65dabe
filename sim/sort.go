package sim

// SortKey extracts the value a request is ordered by.
type SortKey func(r *Request) int

// BySeekDiff orders requests by their current seek distance.
func BySeekDiff(r *Request) int { return r.SeekDiff }

// ByCylinder orders requests by cylinder number.
func ByCylinder(r *Request) int { return r.Cylinder }

// MergeSort stably sorts positions [low, high] of the queue by current seek
// distance, ascending or descending. SSTF re-sorts the unserviced suffix with
// it after every pick, since distances change as the head moves.
func (e *Engine) MergeSort(low, high int, ascending bool) {
	e.MergeSortBy(low, high, BySeekDiff, ascending)
}

// MergeSortBy stably sorts positions [low, high] of the queue by key.
// Empty or out-of-range windows are clamped; an empty window is a no-op.
func (e *Engine) MergeSortBy(low, high int, key SortKey, ascending bool) {
	if low < 0 {
		low = 0
	}
	if high > e.queue.Len()-1 {
		high = e.queue.Len() - 1
	}
	if low >= high {
		return
	}
	e.queue.Reorder(func(order []int) {
		buf := make([]int, len(order))
		e.mergeSort(order, buf, low, high, key, ascending)
	})
}

func (e *Engine) mergeSort(order, buf []int, l, r int, key SortKey, ascending bool) {
	if l >= r {
		return
	}
	m := (l + r) / 2
	e.mergeSort(order, buf, l, m, key, ascending)
	e.mergeSort(order, buf, m+1, r, key, ascending)
	e.merge(order, buf, l, m, r, key, ascending)
}

func (e *Engine) merge(order, buf []int, l, m, r int, key SortKey, ascending bool) {
	n1, n2, i := l, m+1, l
	for n1 <= m && n2 <= r {
		a, b := key(&e.queue.arena[order[n1]]), key(&e.queue.arena[order[n2]])
		// <= and >= keep equal keys in their existing order
		takeLeft := a <= b
		if !ascending {
			takeLeft = a >= b
		}
		if takeLeft {
			buf[i] = order[n1]
			n1++
		} else {
			buf[i] = order[n2]
			n2++
		}
		i++
	}
	for n1 <= m {
		buf[i] = order[n1]
		n1++
		i++
	}
	for n2 <= r {
		buf[i] = order[n2]
		n2++
		i++
	}
	copy(order[l:r+1], buf[l:r+1])
}

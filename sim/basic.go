package sim

// orderFCFS services requests in submission order.
func orderFCFS(e *Engine) {
	e.AbsoluteSetSeek()
}

// orderSSTF repeatedly picks the unserviced request closest to the current
// head position. Equal distances go to the lower cylinder: the unserviced
// suffix is put in cylinder order before the stable sort by distance.
func orderSSTF(e *Engine) {
	n := e.queue.Len()
	pos := e.head
	for i := 0; i < n; i++ {
		e.MergeSortBy(i, n-1, ByCylinder, true)
		for j := i; j < n; j++ {
			r := e.queue.At(j)
			r.SeekDiff = abs(r.Cylinder - pos)
		}
		e.MergeSort(i, n-1, true)
		pos = e.queue.At(i).Cylinder
	}
	e.AbsoluteSetSeek()
}

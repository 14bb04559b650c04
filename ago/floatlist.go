package ago

// FloatList is the float64 counterpart of IntList, with the same count vs
// capacity rules and the same faults.
type FloatList struct {
	data []float64
}

// NewFloatList allocates a list with room for capacity elements and a count of 0
func NewFloatList(capacity int64) *FloatList {
	if capacity < 0 || capacity > maxListElements {
		Fail(AllocationFault, "cannot allocate list with capacity %d", capacity)
	}
	tracef("new float list (capacity %d)", capacity)
	return &FloatList{data: make([]float64, 0, capacity)}
}

func (l *FloatList) Len() int64 {
	if l == nil {
		Fail(NullAccess, "cannot take length of null list")
	}
	return int64(len(l.data))
}

func (l *FloatList) Cap() int64 {
	if l == nil {
		Fail(NullAccess, "cannot take capacity of null list")
	}
	return int64(cap(l.data))
}

func (l *FloatList) Get(i int64) float64 {
	l.check(i)
	return l.data[i]
}

func (l *FloatList) Set(i int64, v float64) {
	l.check(i)
	l.data[i] = v
}

func (l *FloatList) Append(v float64) {
	if l == nil {
		Fail(NullAccess, "cannot append to null list")
	}
	if c := int64(cap(l.data)); int64(len(l.data)) == c {
		newCap := growCapacity(c, c+1)
		buf := make([]float64, len(l.data), newCap)
		copy(buf, l.data)
		tracef("grow float list %d -> %d", c, newCap)
		l.data = buf
	}
	l.data = append(l.data, v)
}

func (l *FloatList) Destroy() {
	if l == nil {
		return
	}
	tracef("destroy float list (count %d, capacity %d)", len(l.data), cap(l.data))
	l.data = nil
}

func (l *FloatList) check(i int64) {
	if l == nil {
		Fail(NullAccess, "cannot index null list")
	}
	if n := int64(len(l.data)); i < 0 || i >= n {
		Fail(BoundsFault, "list index out of bounds: %d (length: %d)", i, n)
	}
}

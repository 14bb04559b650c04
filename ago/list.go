package ago

// IntList is a growable, bounds-checked sequence of int64 values.
//
// The logical count and the allocated capacity are tracked separately:
// NewIntList(8) has room for 8 elements but a count of 0, and every index
// must satisfy 0 <= i < Len() regardless of capacity. A list is owned by
// whoever holds the handle and is destroyed explicitly, exactly once.
type IntList struct {
	data []int64 // len(data) is the count, cap(data) the capacity
}

// Growth parameters
const (
	// minListGrowth is the smallest capacity a growing list moves to
	minListGrowth = 4

	// maxListElements is the allocation ceiling for one list buffer
	maxListElements = 1 << 37
)

// NewIntList allocates a list with room for capacity elements and a count of 0
func NewIntList(capacity int64) *IntList {
	if capacity < 0 || capacity > maxListElements {
		Fail(AllocationFault, "cannot allocate list with capacity %d", capacity)
	}
	tracef("new int list (capacity %d)", capacity)
	return &IntList{data: make([]int64, 0, capacity)}
}

// Len returns the logical count
func (l *IntList) Len() int64 {
	if l == nil {
		Fail(NullAccess, "cannot take length of null list")
	}
	return int64(len(l.data))
}

// Cap returns the allocated capacity
func (l *IntList) Cap() int64 {
	if l == nil {
		Fail(NullAccess, "cannot take capacity of null list")
	}
	return int64(cap(l.data))
}

// Get returns element i
func (l *IntList) Get(i int64) int64 {
	l.check(i, "index")
	return l.data[i]
}

// Set replaces element i in place; the count does not change
func (l *IntList) Set(i, v int64) {
	l.check(i, "index")
	l.data[i] = v
}

// Append adds v after the last element
func (l *IntList) Append(v int64) {
	if l == nil {
		Fail(NullAccess, "cannot append to null list")
	}
	l.reserve(int64(len(l.data)) + 1)
	l.data = append(l.data, v)
}

// Insert places v at index i, shifting later elements right. i may equal
// Len(), which appends.
func (l *IntList) Insert(i, v int64) {
	if l == nil {
		Fail(NullAccess, "cannot insert into null list")
	}
	n := int64(len(l.data))
	if i < 0 || i > n {
		Fail(BoundsFault, "list insert index out of bounds: %d (length: %d)", i, n)
	}
	l.reserve(n + 1)
	l.data = l.data[:n+1]
	copy(l.data[i+1:], l.data[i:n])
	l.data[i] = v
}

// Remove deletes element i, shifting later elements left, and returns it
func (l *IntList) Remove(i int64) int64 {
	l.check(i, "remove index")
	v := l.data[i]
	copy(l.data[i:], l.data[i+1:])
	l.data = l.data[:len(l.data)-1]
	return v
}

// Contains reports whether v is an element of the list
func (l *IntList) Contains(v int64) bool {
	if l == nil {
		Fail(NullAccess, "cannot search null list")
	}
	for _, x := range l.data {
		if x == v {
			return true
		}
	}
	return false
}

// Destroy releases the buffer. Destroy on nil is a no-op. Using the list
// afterwards is a caller error; it reads as an empty list.
func (l *IntList) Destroy() {
	if l == nil {
		return
	}
	tracef("destroy int list (count %d, capacity %d)", len(l.data), cap(l.data))
	l.data = nil
}

// check faults unless l is present and 0 <= i < count
func (l *IntList) check(i int64, what string) {
	if l == nil {
		Fail(NullAccess, "cannot index null list")
	}
	if n := int64(len(l.data)); i < 0 || i >= n {
		Fail(BoundsFault, "list %s out of bounds: %d (length: %d)", what, i, n)
	}
}

// reserve makes room for need elements. The new capacity is
// max(capacity*2, need, minListGrowth). The old buffer is only dropped once
// the new one holds a copy of it.
func (l *IntList) reserve(need int64) {
	c := int64(cap(l.data))
	if need <= c {
		return
	}
	newCap := growCapacity(c, need)
	buf := make([]int64, len(l.data), newCap)
	copy(buf, l.data)
	tracef("grow int list %d -> %d", c, newCap)
	l.data = buf
}

// growCapacity computes the next capacity for a list buffer
func growCapacity(current, need int64) int64 {
	newCap := current * 2
	if newCap < need {
		newCap = need
	}
	if newCap < minListGrowth {
		newCap = minListGrowth
	}
	if newCap > maxListElements {
		if need > maxListElements {
			Fail(AllocationFault, "cannot grow list beyond %d elements", int64(maxListElements))
		}
		newCap = maxListElements
	}
	return newCap
}

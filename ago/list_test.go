package ago

import "testing"

func TestListScenario(t *testing.T) {
	l := NewIntList(2)
	defer l.Destroy()

	l.Append(10)
	l.Append(20)
	l.Append(30)

	if l.Len() != 3 {
		t.Fatalf("Expected length 3, got %d", l.Len())
	}
	for i, want := range []int64{10, 20, 30} {
		if got := l.Get(int64(i)); got != want {
			t.Errorf("Get(%d): expected %d, got %d", i, want, got)
		}
	}
	f := Catch(func() { l.Get(3) })
	if f == nil || f.Kind != BoundsFault {
		t.Errorf("Expected BoundsFault for Get(3), got %v", f)
	}
}

func TestNewListIsEmptyRegardlessOfCapacity(t *testing.T) {
	for _, c := range []int64{0, 1, 2, 16, 1000} {
		l := NewIntList(c)
		if l.Len() != 0 {
			t.Errorf("Capacity %d: expected length 0, got %d", c, l.Len())
		}
		if l.Cap() < c {
			t.Errorf("Capacity %d: expected at least %d slots, got %d", c, c, l.Cap())
		}
		if f := Catch(func() { l.Get(0) }); f == nil || f.Kind != BoundsFault {
			t.Errorf("Capacity %d: expected BoundsFault for Get(0), got %v", c, f)
		}
		l.Destroy()
	}
}

func TestAppendPreservesOrder(t *testing.T) {
	const n = 1000
	l := NewIntList(0)
	for i := int64(0); i < n; i++ {
		l.Append(i * 3)
		if l.Cap() < l.Len() {
			t.Fatalf("Capacity %d fell below length %d", l.Cap(), l.Len())
		}
	}
	if l.Len() != n {
		t.Fatalf("Expected length %d, got %d", n, l.Len())
	}
	for i := int64(0); i < n; i++ {
		if got := l.Get(i); got != i*3 {
			t.Fatalf("Get(%d): expected %d, got %d", i, i*3, got)
		}
	}
}

func TestAppendGrowsByDoubling(t *testing.T) {
	l := NewIntList(2)
	l.Append(1)
	l.Append(2)
	if l.Cap() != 2 {
		t.Errorf("Expected capacity 2 before growth, got %d", l.Cap())
	}
	l.Append(3)
	if l.Cap() != 4 {
		t.Errorf("Expected capacity 4 after growth, got %d", l.Cap())
	}
	for i := 0; i < 2; i++ {
		l.Append(0)
	}
	if l.Cap() != 8 {
		t.Errorf("Expected capacity 8, got %d", l.Cap())
	}
}

func TestSetInPlace(t *testing.T) {
	l := NewIntList(4)
	l.Append(1)
	l.Append(2)
	l.Set(1, 99)
	if l.Get(1) != 99 {
		t.Errorf("Expected 99, got %d", l.Get(1))
	}
	if l.Len() != 2 {
		t.Errorf("Expected Set to leave length at 2, got %d", l.Len())
	}
}

func TestListBoundsFaults(t *testing.T) {
	l := NewIntList(8)
	l.Append(5)

	tests := []struct {
		name string
		fn   func()
	}{
		{"get negative", func() { l.Get(-1) }},
		{"get at length", func() { l.Get(1) }},
		{"get within capacity", func() { l.Get(7) }},
		{"set negative", func() { l.Set(-1, 0) }},
		{"set at length", func() { l.Set(1, 0) }},
		{"insert past length", func() { l.Insert(2, 0) }},
		{"insert negative", func() { l.Insert(-1, 0) }},
		{"remove at length", func() { l.Remove(1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Catch(tt.fn)
			if f == nil || f.Kind != BoundsFault {
				t.Errorf("Expected BoundsFault, got %v", f)
			}
		})
	}
	if l.Len() != 1 || l.Get(0) != 5 {
		t.Errorf("Expected faulted calls to leave the list untouched")
	}
}

func TestNullListFaults(t *testing.T) {
	var l *IntList
	tests := []struct {
		name string
		fn   func()
	}{
		{"get", func() { l.Get(0) }},
		{"set", func() { l.Set(0, 1) }},
		{"append", func() { l.Append(1) }},
		{"len", func() { l.Len() }},
		{"cap", func() { l.Cap() }},
		{"insert", func() { l.Insert(0, 1) }},
		{"remove", func() { l.Remove(0) }},
		{"contains", func() { l.Contains(1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Catch(tt.fn)
			if f == nil || f.Kind != NullAccess {
				t.Errorf("Expected NullAccess, got %v", f)
			}
		})
	}
	// Destroy accepts the absent handle
	if f := Catch(func() { l.Destroy() }); f != nil {
		t.Errorf("Expected Destroy(nil) to be a no-op, got %v", f)
	}
}

func TestAllocationFaults(t *testing.T) {
	for _, c := range []int64{-1, -1 << 40, maxListElements + 1} {
		f := Catch(func() { NewIntList(c) })
		if f == nil || f.Kind != AllocationFault {
			t.Errorf("Capacity %d: expected AllocationFault, got %v", c, f)
		}
		f = Catch(func() { NewFloatList(c) })
		if f == nil || f.Kind != AllocationFault {
			t.Errorf("Float capacity %d: expected AllocationFault, got %v", c, f)
		}
	}
	f := Catch(func() { growCapacity(maxListElements, maxListElements+1) })
	if f == nil || f.Kind != AllocationFault {
		t.Errorf("Expected AllocationFault past the ceiling, got %v", f)
	}
	if got := growCapacity(maxListElements-1, maxListElements); got != maxListElements {
		t.Errorf("Expected growth to clamp to the ceiling, got %d", got)
	}
}

func TestInsertRemove(t *testing.T) {
	l := NewIntList(0)
	l.Append(1)
	l.Append(3)
	l.Insert(1, 2)
	l.Insert(0, 0)
	l.Insert(l.Len(), 4)

	for i := int64(0); i < 5; i++ {
		if l.Get(i) != i {
			t.Fatalf("Get(%d): expected %d, got %d", i, i, l.Get(i))
		}
	}

	if v := l.Remove(2); v != 2 {
		t.Errorf("Expected Remove to return 2, got %d", v)
	}
	want := []int64{0, 1, 3, 4}
	if l.Len() != int64(len(want)) {
		t.Fatalf("Expected length %d, got %d", len(want), l.Len())
	}
	for i, w := range want {
		if l.Get(int64(i)) != w {
			t.Errorf("Get(%d): expected %d, got %d", i, w, l.Get(int64(i)))
		}
	}
}

func TestContains(t *testing.T) {
	l := NewIntList(3)
	l.Append(7)
	l.Append(-2)
	if !l.Contains(-2) || !l.Contains(7) {
		t.Error("Expected appended values to be found")
	}
	if l.Contains(0) {
		t.Error("Expected unused capacity not to count as elements")
	}
}

func TestDestroyedListReadsEmpty(t *testing.T) {
	l := NewIntList(2)
	l.Append(1)
	l.Destroy()
	if l.Len() != 0 {
		t.Errorf("Expected destroyed list to read as empty, got %d", l.Len())
	}
}

func TestFloatList(t *testing.T) {
	l := NewFloatList(1)
	l.Append(1.5)
	l.Append(-2.25)
	l.Append(3)
	if l.Len() != 3 {
		t.Fatalf("Expected length 3, got %d", l.Len())
	}
	if l.Cap() < 3 {
		t.Errorf("Expected capacity >= 3, got %d", l.Cap())
	}
	l.Set(2, 0.5)
	for i, want := range []float64{1.5, -2.25, 0.5} {
		if got := l.Get(int64(i)); got != want {
			t.Errorf("Get(%d): expected %v, got %v", i, want, got)
		}
	}
	if f := Catch(func() { l.Get(3) }); f == nil || f.Kind != BoundsFault {
		t.Errorf("Expected BoundsFault, got %v", f)
	}
	l.Destroy()

	var absent *FloatList
	if f := Catch(func() { absent.Append(1) }); f == nil || f.Kind != NullAccess {
		t.Errorf("Expected NullAccess, got %v", f)
	}
	absent.Destroy()
}

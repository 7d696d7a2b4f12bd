package arena

import "testing"

func TestGetReturnsZeroedVector(t *testing.T) {
	a := New()
	defer a.Release()

	v := a.Get(4)
	if len(v) != 4 {
		t.Fatalf("got length %d, want 4", len(v))
	}
	for i, d := range v {
		if d != 0 {
			t.Fatalf("index %d not zeroed: %d", i, d)
		}
	}
}

func TestReleaseAllowsReuse(t *testing.T) {
	a := New()

	v := a.Get(8)
	v[0] = 0xdeadbeef
	a.Release()

	v2 := a.Get(8)
	for i, d := range v2 {
		if d != 0 {
			t.Fatalf("reused vector not zeroed at index %d: %d", i, d)
		}
	}
	a.Release()
}

func TestHeapMatchesArenaShape(t *testing.T) {
	var h Heap
	v := h.Get(3)
	if len(v) != 3 {
		t.Fatalf("got length %d, want 3", len(v))
	}
	h.Release()
}

package generation

import (
	"slices"
	"testing"
)

func TestSearchFindsDerangement(t *testing.T) {
	// Put 0..3 into slots 0..3 with no value in its own slot.
	pool := []int{0, 1, 2, 3}
	got := make([]int, 4)
	s := &search[int]{
		pool:  pool,
		slots: 4,
		place: func(slot, v int) bool {
			if slot == v {
				return false
			}
			got[slot] = v
			return true
		},
		undo: func(slot, _ int) { got[slot] = -1 },
	}
	if res := s.run(); res != solved {
		t.Fatalf("run = %v, want solved", res)
	}
	for slot, v := range got {
		if slot == v {
			t.Errorf("slot %d holds its own value", slot)
		}
	}
	if !slices.Equal(got, pool) {
		t.Errorf("placed %v but pool is %v", got, pool)
	}
}

func TestSearchRestoresPoolWhenExhausted(t *testing.T) {
	pool := []int{3, 1, 4, 1, 5}
	orig := slices.Clone(pool)
	placed := 0
	s := &search[int]{
		pool:  pool,
		slots: 5,
		place: func(slot, v int) bool {
			// Anything fits except the last slot.
			if slot == 4 {
				return false
			}
			placed++
			return true
		},
		undo: func(int, int) { placed-- },
	}
	if res := s.run(); res != exhausted {
		t.Fatalf("run = %v, want exhausted", res)
	}
	if !slices.Equal(pool, orig) {
		t.Errorf("pool = %v, want %v", pool, orig)
	}
	if placed != 0 {
		t.Errorf("%d placements not undone", placed)
	}
}

func TestSearchSkipsDuplicates(t *testing.T) {
	s := &search[string]{
		pool:  []string{"a", "a", "a", "b"},
		slots: 4,
		place: func(int, string) bool { return false },
		undo:  func(int, string) {},
	}
	if res := s.run(); res != exhausted {
		t.Fatalf("run = %v, want exhausted", res)
	}
	if s.steps != 2 {
		t.Errorf("steps = %d, want 2 (one per distinct value)", s.steps)
	}
}

func TestSearchStepLimit(t *testing.T) {
	s := &search[int]{
		pool:     []int{1, 2, 3, 4, 5, 6, 7, 8},
		slots:    8,
		place:    func(slot, _ int) bool { return slot < 7 },
		undo:     func(int, int) {},
		maxSteps: 50,
	}
	if res := s.run(); res != overBudget {
		t.Fatalf("run = %v, want step limit", res)
	}
	if s.steps != 51 {
		t.Errorf("steps = %d, want 51", s.steps)
	}
}

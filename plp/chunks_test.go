package plp

import "testing"

func TestRowSplit(t *testing.T) {
	tests := []struct {
		n, step, half  int
		iter, blk, rem int
	}{
		// 16-bit packed layout: 4 per iteration, half step of 2.
		{0, 4, 2, 0, 0, 0},
		{1, 4, 2, 0, 0, 1},
		{2, 4, 2, 0, 1, 0},
		{3, 4, 2, 0, 1, 1},
		{4, 4, 2, 1, 0, 0},
		{5, 4, 2, 1, 0, 1},
		{6, 4, 2, 1, 1, 0},
		{7, 4, 2, 1, 1, 1},
		{8, 4, 2, 2, 0, 0},
		// 8-bit packed layout: 4 per iteration, no half step.
		{0, 4, 0, 0, 0, 0},
		{3, 4, 0, 0, 0, 3},
		{5, 4, 0, 1, 0, 1},
		{7, 4, 0, 1, 0, 3},
		// Unrolled scalar layout: 2 per iteration.
		{1, 2, 0, 0, 0, 1},
		{5, 2, 0, 2, 0, 1},
		{6, 2, 0, 3, 0, 0},
	}
	for _, tc := range tests {
		iter, blk, rem := RowSplit(tc.n, tc.step, tc.half)
		if iter != tc.iter || blk != tc.blk || rem != tc.rem {
			t.Errorf("RowSplit(%d, %d, %d) = (%d, %d, %d), want (%d, %d, %d)",
				tc.n, tc.step, tc.half, iter, blk, rem, tc.iter, tc.blk, tc.rem)
		}
		if got := iter*tc.step + blk*tc.half + rem; got != tc.n {
			t.Errorf("RowSplit(%d, %d, %d) does not cover the row: %d",
				tc.n, tc.step, tc.half, got)
		}
	}
}

// ProcessRow must visit every element of the row exactly once, in order.
func TestProcessRowCoverage(t *testing.T) {
	layouts := []struct{ step, half int }{{4, 2}, {4, 0}, {2, 0}}
	for _, l := range layouts {
		for n := 0; n <= 13; n++ {
			visited := make([]int, n)
			mark := func(off, count int) {
				for i := 0; i < count; i++ {
					visited[off+i]++
				}
			}
			var halfFn func(off int)
			if l.half > 0 {
				halfFn = func(off int) { mark(off, l.half) }
			}
			ProcessRow(n, l.step, l.half,
				func(off int) { mark(off, l.step) },
				halfFn,
				mark,
			)
			for i, v := range visited {
				if v != 1 {
					t.Fatalf("layout (%d,%d) n=%d: element %d visited %d times",
						l.step, l.half, n, i, v)
				}
			}
		}
	}
}

func TestProcessRowZeroWidth(t *testing.T) {
	called := false
	ProcessRow(0, 4, 2,
		func(int) { called = true },
		func(int) { called = true },
		func(int, int) { called = true },
	)
	if called {
		t.Error("ProcessRow(0, ...) invoked a callback")
	}
}

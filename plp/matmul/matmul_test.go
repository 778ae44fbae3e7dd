package matmul

import "testing"

func refMult(a, b []int16, m, n, o int) []int32 {
	dst := make([]int32, m*o)
	for mi := 0; mi < m; mi++ {
		for oi := 0; oi < o; oi++ {
			var sum int32
			for ni := 0; ni < n; ni++ {
				sum += int32(a[mi*n+ni]) * int32(b[ni*o+oi])
			}
			dst[mi*o+oi] = sum
		}
	}
	return dst
}

func transpose(b []int16, n, o int) []int16 {
	bt := make([]int16, o*n)
	for ni := 0; ni < n; ni++ {
		for oi := 0; oi < o; oi++ {
			bt[oi*n+ni] = b[ni*o+oi]
		}
	}
	return bt
}

func testOperands(m, n, o int) (a, b []int16) {
	a = make([]int16, m*n)
	b = make([]int16, n*o)
	for i := range a {
		a[i] = int16(i*257 - 300) // spans negatives and forces i32 products
	}
	for i := range b {
		b[i] = int16(500 - i*131)
	}
	return a, b
}

func TestMultAgainstReference(t *testing.T) {
	shapes := []struct{ m, n, o int }{
		{1, 1, 1}, {2, 3, 4}, {5, 7, 3}, {8, 8, 8},
	}
	for _, s := range shapes {
		a, b := testOperands(s.m, s.n, s.o)
		want := refMult(a, b, s.m, s.n, s.o)

		got := make([]int32, s.m*s.o)
		Mult(a, b, s.m, s.n, s.o, got)
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("Mult %dx%dx%d: element %d: got %d, want %d", s.m, s.n, s.o, i, got[i], want[i])
			}
		}

		bt := transpose(b, s.n, s.o)
		gotT := make([]int32, s.m*s.o)
		MultTrans(a, bt, s.m, s.n, s.o, gotT)
		for i := range want {
			if gotT[i] != want[i] {
				t.Fatalf("MultTrans %dx%dx%d: element %d: got %d, want %d", s.m, s.n, s.o, i, gotT[i], want[i])
			}
		}
	}
}

func TestMultF32(t *testing.T) {
	const m, n, o = 2, 3, 2
	a := []float32{1, 2, 3, 4, 5, 6}
	b := []float32{1, 0.5, -1, 2, 0.25, -2}
	want := make([]float32, m*o)
	for mi := 0; mi < m; mi++ {
		for oi := 0; oi < o; oi++ {
			var sum float32
			for ni := 0; ni < n; ni++ {
				sum += a[mi*n+ni] * b[ni*o+oi]
			}
			want[mi*o+oi] = sum
		}
	}

	got := make([]float32, m*o)
	MultF32(a, b, m, n, o, got)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("MultF32: element %d: got %v, want %v", i, got[i], want[i])
		}
	}

	bt := make([]float32, o*n)
	for ni := 0; ni < n; ni++ {
		for oi := 0; oi < o; oi++ {
			bt[oi*n+ni] = b[ni*o+oi]
		}
	}
	gotT := make([]float32, m*o)
	MultTransF32(a, bt, m, n, o, gotT)
	for i := range want {
		if gotT[i] != want[i] {
			t.Fatalf("MultTransF32: element %d: got %v, want %v", i, gotT[i], want[i])
		}
	}
}

func TestMultParallelMatchesSerial(t *testing.T) {
	const m, n, o = 6, 5, 4
	a, b := testOperands(m, n, o)
	want := refMult(a, b, m, n, o)
	bt := transpose(b, n, o)

	// nPE up to and beyond M.
	for _, nPE := range []int{1, 2, 3, 6, 8} {
		got := make([]int32, m*o)
		MultParallel(a, b, m, n, o, nPE, got)
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("MultParallel nPE=%d: element %d: got %d, want %d", nPE, i, got[i], want[i])
			}
		}

		gotT := make([]int32, m*o)
		MultTransParallel(a, bt, m, n, o, nPE, gotT)
		for i := range want {
			if gotT[i] != want[i] {
				t.Fatalf("MultTransParallel nPE=%d: element %d: got %d, want %d", nPE, i, gotT[i], want[i])
			}
		}
	}
}

// The int32 accumulator wraps on overflow like native fixed-width
// arithmetic; there is no widening or saturation.
func TestMultAccumulatorWraps(t *testing.T) {
	a := []int32{0x40000000, 0x40000000}
	b := []int32{2, 2}
	got := make([]int32, 1)
	MultTrans(a, b, 1, 2, 1, got)
	x := int32(0x40000000)
	want := x*2 + x*2 // wraps to 0
	if got[0] != want {
		t.Fatalf("got %d, want %d", got[0], want)
	}
}

func BenchmarkMultTransI16(b *testing.B) {
	const m, n, o = 64, 64, 64
	a, bb := testOperands(m, n, o)
	bt := transpose(bb, n, o)
	dst := make([]int32, m*o)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		MultTrans(a, bt, m, n, o, dst)
	}
}

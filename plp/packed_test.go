package plp

import "testing"

var edge16 = []int16{0, 1, -1, 2, -2, 127, 128, -128, 255, 256, 0x7fff, -0x8000, 0x7ffe, -0x7fff, 12345, -23456}

var edge8 = []int8{0, 1, -1, 2, -2, 63, 64, -64, 100, -100, 0x7f, -0x80, 0x7e, -0x7f, 33, -77}

func TestPack2RoundTrip(t *testing.T) {
	for _, x0 := range edge16 {
		for _, x1 := range edge16 {
			g0, g1 := Unpack2(Pack2(x0, x1))
			if g0 != x0 || g1 != x1 {
				t.Fatalf("Pack2(%d, %d) round trip: got (%d, %d)", x0, x1, g0, g1)
			}
		}
	}
}

func TestPack4RoundTrip(t *testing.T) {
	for _, x0 := range edge8 {
		for _, x3 := range edge8 {
			g0, g1, g2, g3 := Unpack4(Pack4(x0, -x0, 7, x3))
			if g0 != x0 || g1 != -x0 || g2 != 7 || g3 != x3 {
				t.Fatalf("Pack4(%d, %d, 7, %d) round trip: got (%d, %d, %d, %d)",
					x0, -x0, x3, g0, g1, g2, g3)
			}
		}
	}
}

// Per-lane wraparound must match native int16 arithmetic bit for bit.
func TestAdd2Sub2Wraparound(t *testing.T) {
	for _, a0 := range edge16 {
		for _, b0 := range edge16 {
			// Put independent values in the second lane to catch
			// carries crossing the lane boundary.
			a1, b1 := int16(-a0), int16(b0+1)

			x := Pack2(a0, a1)
			y := Pack2(b0, b1)

			s0, s1 := Unpack2(Add2(x, y))
			if s0 != a0+b0 || s1 != a1+b1 {
				t.Fatalf("Add2 lanes (%d,%d)+(%d,%d): got (%d,%d), want (%d,%d)",
					a0, a1, b0, b1, s0, s1, a0+b0, a1+b1)
			}

			d0, d1 := Unpack2(Sub2(x, y))
			if d0 != a0-b0 || d1 != a1-b1 {
				t.Fatalf("Sub2 lanes (%d,%d)-(%d,%d): got (%d,%d), want (%d,%d)",
					a0, a1, b0, b1, d0, d1, a0-b0, a1-b1)
			}
		}
	}
}

func TestAdd4Sub4Wraparound(t *testing.T) {
	for _, a0 := range edge8 {
		for _, b0 := range edge8 {
			a1, b1 := int8(-a0), int8(b0+1)
			a2, b2 := int8(a0+3), int8(-b0)
			a3, b3 := int8(a0^0x55), int8(b0^0x2a)

			x := Pack4(a0, a1, a2, a3)
			y := Pack4(b0, b1, b2, b3)

			s0, s1, s2, s3 := Unpack4(Add4(x, y))
			if s0 != a0+b0 || s1 != a1+b1 || s2 != a2+b2 || s3 != a3+b3 {
				t.Fatalf("Add4 (%d,%d,%d,%d)+(%d,%d,%d,%d): got (%d,%d,%d,%d)",
					a0, a1, a2, a3, b0, b1, b2, b3, s0, s1, s2, s3)
			}

			d0, d1, d2, d3 := Unpack4(Sub4(x, y))
			if d0 != a0-b0 || d1 != a1-b1 || d2 != a2-b2 || d3 != a3-b3 {
				t.Fatalf("Sub4 (%d,%d,%d,%d)-(%d,%d,%d,%d): got (%d,%d,%d,%d)",
					a0, a1, a2, a3, b0, b1, b2, b3, d0, d1, d2, d3)
			}
		}
	}
}

// Exhaustive single-lane check for the 8-bit ops.
func TestAdd4Sub4Exhaustive(t *testing.T) {
	for a := -128; a <= 127; a++ {
		for b := -128; b <= 127; b++ {
			x := Pack4(int8(a), 0, int8(b), 0)
			y := Pack4(int8(b), 0, int8(a), 0)
			s0, _, s2, _ := Unpack4(Add4(x, y))
			if s0 != int8(a)+int8(b) || s2 != int8(a)+int8(b) {
				t.Fatalf("Add4(%d, %d): got (%d, %d)", a, b, s0, s2)
			}
			d0, _, d2, _ := Unpack4(Sub4(x, y))
			if d0 != int8(a)-int8(b) || d2 != int8(b)-int8(a) {
				t.Fatalf("Sub4(%d, %d): got (%d, %d)", a, b, d0, d2)
			}
		}
	}
}

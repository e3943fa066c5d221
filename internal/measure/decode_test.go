// internal/measure/decode_test.go
package measure

import (
	"errors"
	"math"
	"testing"
)

func TestDecode_KnownBlock(t *testing.T) {
	regs := []uint16{
		0x4048, 0xF5C3,
		0x4049, 0x999A,
		0x404B, 0x851F,
		0x3F80, 0x0000,
		0x3F00, 0x0000,
		0x3E80, 0x0000,
	}

	r, err := Decode(regs)
	if err != nil {
		t.Fatalf("Decode err=%v", err)
	}

	want := map[Channel]float32{
		Volts1:   math.Float32frombits(0x4048F5C3),
		Volts2:   math.Float32frombits(0x4049999A),
		Volts3:   math.Float32frombits(0x404B851F),
		Current1: 1.0,
		Current2: 0.5,
		Current3: 0.25,
	}
	for ch, w := range want {
		if got := r.Get(ch); got != w {
			t.Fatalf("%s: got=%v want=%v", ch, got, w)
		}
	}

	approx := map[Channel]float64{Volts1: 3.14, Volts2: 3.15, Volts3: 3.18}
	for ch, w := range approx {
		if d := math.Abs(float64(r.Get(ch)) - w); d > 1e-5 {
			t.Fatalf("%s: got=%v want≈%v", ch, r.Get(ch), w)
		}
	}
}

func TestDecode_Deterministic(t *testing.T) {
	regs := Encode(Reading{230.5, 231.25, 229.75, 4.5, 4.25, 4.75})

	a, err := Decode(regs)
	if err != nil {
		t.Fatalf("Decode err=%v", err)
	}
	b, err := Decode(regs)
	if err != nil {
		t.Fatalf("Decode err=%v", err)
	}

	for i := range a {
		if math.Float32bits(a[i]) != math.Float32bits(b[i]) {
			t.Fatalf("channel %d not bit-identical: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestDecode_WordOrder(t *testing.T) {
	// high word first: swapping the halves must give a different value
	if DecodeFloat32(0x3F80, 0x0000) != 1.0 {
		t.Fatalf("expected 1.0 from 0x3F80,0x0000")
	}
	if DecodeFloat32(0x0000, 0x3F80) == 1.0 {
		t.Fatalf("low/high words must not be interchangeable")
	}
}

func TestDecode_WrongSize(t *testing.T) {
	for _, n := range []int{0, 1, 11, 13, 24} {
		_, err := Decode(make([]uint16, n))
		if !errors.Is(err, ErrBlockSize) {
			t.Fatalf("len=%d: expected ErrBlockSize, got %v", n, err)
		}
	}

	if _, err := Decode(nil); !errors.Is(err, ErrBlockSize) {
		t.Fatalf("nil block: expected ErrBlockSize, got %v", err)
	}
}

func TestDecode_NonFinitePassesThrough(t *testing.T) {
	regs := Encode(Reading{1, 2, 3, 4, 5, 6})
	// 0x7FC0_0000 is a quiet NaN, 0x7F80_0000 is +Inf
	regs[4], regs[5] = 0x7FC0, 0x0000
	regs[6], regs[7] = 0x7F80, 0x0000

	r, err := Decode(regs)
	if err != nil {
		t.Fatalf("Decode err=%v", err)
	}
	if !math.IsNaN(float64(r.Get(Volts3))) {
		t.Fatalf("volts_3: expected NaN, got %v", r.Get(Volts3))
	}
	if !math.IsInf(float64(r.Get(Current1)), 1) {
		t.Fatalf("current_1: expected +Inf, got %v", r.Get(Current1))
	}
	if r.Get(Current2) != 5 {
		t.Fatalf("current_2: got %v want 5", r.Get(Current2))
	}
}

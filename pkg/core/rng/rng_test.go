package rng

import "testing"

func TestSineReproducible(t *testing.T) {
	a := NewSine(3 * 1234567)
	b := NewSine(3 * 1234567)
	for i := 0; i < 100; i++ {
		va, vb := a.Float64(), b.Float64()
		if va != vb {
			t.Fatalf("draw %d: %v != %v", i, va, vb)
		}
		if va < 0 || va >= 1 {
			t.Fatalf("draw %d out of range: %v", i, va)
		}
		if At(3*1234567, i) != va {
			t.Fatalf("At(%d) disagrees with sequential draw", i)
		}
	}
	if a.Index() != 100 {
		t.Errorf("Index() = %d, want 100", a.Index())
	}
}

func TestSineSeedsDiffer(t *testing.T) {
	a := NewSine(1234567)
	b := NewSine(2 * 1234567)
	same := 0
	for i := 0; i < 20; i++ {
		if a.Float64() == b.Float64() {
			same++
		}
	}
	if same == 20 {
		t.Error("different seeds produced identical sequences")
	}
}

func TestParkMillerKnownSequence(t *testing.T) {
	p := NewParkMiller(1)
	want := []int64{16807, 282475249, 1622650073, 984943658, 1144108930}
	for i, w := range want {
		if got := p.Next(); got != w {
			t.Fatalf("Next() #%d = %d, want %d", i, got, w)
		}
	}
}

func TestParkMillerRange(t *testing.T) {
	for _, seed := range []int64{0, -5, 50402, 2147483647} {
		p := NewParkMiller(seed)
		for i := 0; i < 1000; i++ {
			v := p.Float64()
			if v < 0 || v >= 1 {
				t.Fatalf("seed %d draw %d out of range: %v", seed, i, v)
			}
		}
	}
}

func TestPick(t *testing.T) {
	p := NewParkMiller(42)
	for i := 0; i < 500; i++ {
		if k := Pick(p, 4); k < 0 || k > 3 {
			t.Fatalf("Pick(4) = %d", k)
		}
	}
	if Pick(p, 0) != 0 {
		t.Error("Pick(0) should be 0")
	}
}

package util

import "testing"

func TestNewZeroSeedIsDeterministic(t *testing.T) {
	a, b := New(0), New(1)
	for i := 0; i < 10; i++ {
		if a.Int63() != b.Int63() {
			t.Fatal("seed 0 should behave like seed 1")
		}
	}
}

func TestRandCoinIsRoughlyFair(t *testing.T) {
	c := NewCoin(42)
	heads := 0
	const n = 10000
	for i := 0; i < n; i++ {
		if c.Bool() {
			heads++
		}
	}
	if heads < n*45/100 || heads > n*55/100 {
		t.Errorf("heads = %d of %d", heads, n)
	}
}

func TestSeqCoin(t *testing.T) {
	c := &SeqCoin{Flips: []bool{true, false}}
	got := []bool{c.Bool(), c.Bool(), c.Bool()}
	if !got[0] || got[1] || !got[2] {
		t.Errorf("got %v", got)
	}
	if c.Calls() != 3 {
		t.Errorf("Calls() = %d", c.Calls())
	}
	if (&SeqCoin{}).Bool() {
		t.Error("empty SeqCoin should return false")
	}
}

package vmath

import (
	"math"
	"testing"
)

func TestVec2Reflect(t *testing.T) {
	// Incoming from the left onto a surface facing left
	v := V2(3, 4)
	n := V2(-1, 0)
	got := v.Reflect(n)
	if got != V2(-3, 4) {
		t.Errorf("Reflect(%v, %v) = %v, want (-3,4)", v, n, got)
	}

	// Reflection preserves magnitude for unit normals
	n = V2(1, 1).Normalize()
	got = v.Reflect(n)
	if math.Abs(got.Mag()-v.Mag()) > 1e-9 {
		t.Errorf("Reflect changed magnitude: %f -> %f", v.Mag(), got.Mag())
	}
}

func TestVec2AxisReflect(t *testing.T) {
	v := V2(2, -5)
	if v.ReflectAxisX() != V2(-2, -5) {
		t.Errorf("ReflectAxisX = %v", v.ReflectAxisX())
	}
	if v.ReflectAxisY() != V2(2, 5) {
		t.Errorf("ReflectAxisY = %v", v.ReflectAxisY())
	}
}

func TestVec2NormalizeZero(t *testing.T) {
	if !(Vec2{}).Normalize().IsZero() {
		t.Error("Normalize of zero vector should stay zero")
	}
	n := V2(0, 7).Normalize()
	if n != V2(0, 1) {
		t.Errorf("Normalize(0,7) = %v", n)
	}
}

func TestVec2Perpendicular(t *testing.T) {
	v := V2(1, 2)
	p := v.Perpendicular()
	if v.Dot(p) != 0 {
		t.Errorf("Perpendicular %v not orthogonal to %v", p, v)
	}
}

func TestVec2Clamp(t *testing.T) {
	got := V2(-5, 600).Clamp(V2(12, 12), V2(488, 488))
	if got != V2(12, 488) {
		t.Errorf("Clamp = %v, want (12,488)", got)
	}
}

func TestFastRandDeterministic(t *testing.T) {
	a := NewFastRand(42)
	b := NewFastRand(42)
	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("sequences diverged at %d", i)
		}
	}
}

func TestFastRandFloat64Range(t *testing.T) {
	r := NewFastRand(7)
	for i := 0; i < 10000; i++ {
		f := r.Float64()
		if f < 0 || f >= 1 {
			t.Fatalf("Float64 out of range: %f", f)
		}
		x := r.Range(12, 488)
		if x < 12 || x >= 488 {
			t.Fatalf("Range out of bounds: %f", x)
		}
	}
}

func TestFastRandZeroSeed(t *testing.T) {
	r := NewFastRand(0)
	if r.Next() == 0 {
		t.Error("zero seed must not produce a stuck generator")
	}
}

package math

import "testing"

func TestVec3Add(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}
	got := a.Add(b)
	want := Vec3{5, 7, 9}
	if got != want {
		t.Errorf("Vec3.Add() = %v, want %v", got, want)
	}
}

func TestVec3Sub(t *testing.T) {
	a := Vec3{4, 5, 6}
	b := Vec3{1, 2, 3}
	got := a.Sub(b)
	want := Vec3{3, 3, 3}
	if got != want {
		t.Errorf("Vec3.Sub() = %v, want %v", got, want)
	}
}

func TestVec3Length(t *testing.T) {
	v := Vec3{0, 3, 4}
	got := v.Length()
	want := float32(5)
	if got != want {
		t.Errorf("Vec3.Length() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 4, 12}
	n := v.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}
}

func TestVec3NormalizeZero(t *testing.T) {
	got := (Vec3{}).Normalize()
	if got != (Vec3{}) {
		t.Errorf("Vec3{}.Normalize() = %v, want zero vector", got)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Dot(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, -5, 6}
	got := a.Dot(b)
	want := float32(12)
	if got != want {
		t.Errorf("Vec3.Dot() = %v, want %v", got, want)
	}
}

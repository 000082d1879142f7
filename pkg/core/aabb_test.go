package core

import "testing"

func TestAABBHitMatchesIntervalOverlap(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))
	ray := NewRay(NewVec3(-5, 0, 0), NewVec3(1, 0, 0), 550)

	if !box.Hit(ray, 0.001, 1e6) {
		t.Fatalf("expected ray through origin to hit centered box")
	}

	miss := NewRay(NewVec3(-5, 5, 0), NewVec3(1, 0, 0), 550)
	if box.Hit(miss, 0.001, 1e6) {
		t.Fatalf("expected ray above box to miss")
	}
}

func TestAABBHitDirectionReversal(t *testing.T) {
	box := NewAABB(NewVec3(1, -1, -1), NewVec3(2, 1, 1))
	ray := NewRay(NewVec3(0, 0, 0), NewVec3(1, 0, 0), 550)
	if !box.Hit(ray, 0.001, 1e6) {
		t.Fatalf("expected +X ray to hit box ahead of origin")
	}

	reversed := NewRay(NewVec3(0, 0, 0), NewVec3(-1, 0, 0), 550)
	if box.Hit(reversed, 0.001, 1e6) {
		t.Fatalf("expected -X ray to miss box behind origin")
	}
}

func TestAABBSurround(t *testing.T) {
	a := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 1))
	b := NewAABB(NewVec3(-1, -1, -1), NewVec3(0.5, 0.5, 0.5))

	u := a.Surround(b)
	want := NewVec3(-1, -1, -1)
	if !u.Min.Equals(want) {
		t.Errorf("Surround min = %v, want %v", u.Min, want)
	}
	if !u.Max.Equals(NewVec3(1, 1, 1)) {
		t.Errorf("Surround max = %v, want (1,1,1)", u.Max)
	}
}

func TestAABBLongestAxis(t *testing.T) {
	box := NewAABB(NewVec3(0, 0, 0), NewVec3(10, 1, 2))
	if axis := box.LongestAxis(); axis != 0 {
		t.Errorf("LongestAxis() = %d, want 0", axis)
	}
}

func TestAABBAxisMinMaxSum(t *testing.T) {
	box := NewAABB(NewVec3(1, 2, 3), NewVec3(4, 5, 6))
	cases := []struct {
		axis int
		want float64
	}{
		{0, 5},
		{1, 7},
		{2, 9},
	}
	for _, c := range cases {
		if got := box.AxisMinMaxSum(c.axis); got != c.want {
			t.Errorf("AxisMinMaxSum(%d) = %v, want %v", c.axis, got, c.want)
		}
	}
}

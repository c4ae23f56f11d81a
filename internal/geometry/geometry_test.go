package geometry

import (
	"image"
	"math"
	"testing"
)

func TestFontSize(t *testing.T) {
	cases := []struct {
		w, h int
		want int
	}{
		{150, 150, 6},
		{1108, 1477, 52},
		{2000, 3000, 100},
		{0, 100, 0},
	}
	for _, tc := range cases {
		if got := FontSize(tc.w, tc.h); got != tc.want {
			t.Fatalf("FontSize(%d, %d) = %d, want %d", tc.w, tc.h, got, tc.want)
		}
	}
}

func TestCharLimit(t *testing.T) {
	cases := []struct {
		w, h, font int
		want       float64
	}{
		{1108, 1108, 45, 1108.0 * 1108.0 / 5 / (45 * 45)},
		{192, 240, 9, 192.0 * 240.0 / 5 / 81},
		{100, 100, 0, 0},
	}
	for _, tc := range cases {
		got := CharLimit(tc.w, tc.h, tc.font)
		if math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("CharLimit(%d, %d, %d) = %f, want %f", tc.w, tc.h, tc.font, got, tc.want)
		}
	}
}

func TestNewLayoutDerivesFromSize(t *testing.T) {
	layout := NewLayout(image.Pt(1108, 1477))
	if layout.FontSize != 52 {
		t.Fatalf("unexpected font size: %d", layout.FontSize)
	}
	want := CharLimit(1108, 1477, 52)
	if layout.CharLimit != want {
		t.Fatalf("unexpected char limit: got %f want %f", layout.CharLimit, want)
	}
	if layout.MaxChars() != int(want) {
		t.Fatalf("unexpected max chars: %d", layout.MaxChars())
	}
	if layout.Size() != image.Pt(1108, 1477) {
		t.Fatalf("unexpected size: %v", layout.Size())
	}
}

func TestUnify(t *testing.T) {
	sizes := []image.Point{{150, 1477}, {1108, 1477}, {1477, 150}, {1477, 1108}}
	got, err := Unify(sizes)
	if err != nil {
		t.Fatalf("Unify returned error: %v", err)
	}
	if got != image.Pt(150, 150) {
		t.Fatalf("Unify = %v, want (150,150)", got)
	}
	if _, err := Unify(nil); err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestMeetsMinArea(t *testing.T) {
	if MinArea != 94950 {
		t.Fatalf("unexpected MinArea: %d", MinArea)
	}
	if MeetsMinArea(308, 308) {
		t.Fatal("308x308 should be too small")
	}
	if !MeetsMinArea(94950, 1) {
		t.Fatal("exact threshold should pass")
	}
	if MeetsMinArea(94949, 1) {
		t.Fatal("one pixel under the threshold should fail")
	}
}

func TestCenterCropRect(t *testing.T) {
	size := image.Pt(150, 150)
	cases := []struct {
		src  image.Rectangle
		want image.Rectangle
	}{
		{image.Rect(0, 0, 150, 1477), image.Rect(0, 664, 150, 814)},
		{image.Rect(0, 0, 1477, 150), image.Rect(664, 0, 814, 150)},
		{image.Rect(0, 0, 153, 150), image.Rect(2, 0, 152, 150)},
		{image.Rect(10, 20, 160, 170), image.Rect(10, 20, 160, 170)},
		{image.Rect(0, 0, 151, 151), image.Rect(0, 0, 150, 150)},
	}
	for _, tc := range cases {
		got := CenterCropRect(tc.src, size)
		if got != tc.want {
			t.Fatalf("CenterCropRect(%v) = %v, want %v", tc.src, got, tc.want)
		}
		if got.Size() != size {
			t.Fatalf("crop size = %v, want %v", got.Size(), size)
		}
	}
}

func TestCropOffset(t *testing.T) {
	got := CropOffset(image.Pt(1108, 1477), image.Pt(1000, 1400))
	if got != image.Pt(54, 38) {
		t.Fatalf("CropOffset = %v", got)
	}

	size := image.Pt(100, 100)
	cases := []struct {
		diff int
		want int
	}{
		{0, 0},
		{1, 0},
		{2, 1},
		{3, 2},
		{5, 2},
		{7, 4},
		{1327, 664},
	}
	for _, tc := range cases {
		got := CropOffset(image.Pt(size.X+tc.diff, size.Y+tc.diff), size)
		if got != image.Pt(tc.want, tc.want) {
			t.Fatalf("CropOffset with difference %d = %v, want (%d,%d)", tc.diff, got, tc.want, tc.want)
		}
		rect := CenterCropRect(image.Rect(0, 0, size.X+tc.diff, size.Y+tc.diff), size)
		if rect.Min != got {
			t.Fatalf("CenterCropRect origin %v disagrees with CropOffset %v", rect.Min, got)
		}
	}
}

func TestStripPlacement(t *testing.T) {
	size := image.Pt(150, 200)
	if got := StripSize(size); got != image.Pt(150, 40) {
		t.Fatalf("StripSize = %v", got)
	}
	if got := StripOffset(size); got != image.Pt(0, 160) {
		t.Fatalf("StripOffset = %v", got)
	}
}

func TestCompositeSizeAndPanelOffsets(t *testing.T) {
	size := image.Pt(150, 150)
	if got := CompositeSize(size); got != image.Pt(604, 150) {
		t.Fatalf("CompositeSize = %v", got)
	}
	for i, want := range []int{0, 151, 302, 453} {
		if got := PanelOffset(i, size); got != image.Pt(want, 0) {
			t.Fatalf("PanelOffset(%d) = %v, want x=%d", i, got, want)
		}
	}
}

package dither

import (
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var (
	black = color.NRGBA{0, 0, 0, 255}
	white = color.NRGBA{255, 255, 255, 255}
	bw    = []color.NRGBA{black, white}
)

func grayRow(values ...uint8) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, len(values), 1))
	for x, v := range values {
		img.SetNRGBA(x, 0, color.NRGBA{v, v, v, 255})
	}
	return img
}

func TestParseMode(t *testing.T) {
	cases := map[string]Mode{
		"floyd-steinberg": FloydSteinberg,
		"ordered":         Ordered,
		"atkinson":        Atkinson,
		"none":            None,
		// Unknown strings silently fall back to no dithering. This is
		// deliberate permissive decoding, not an oversight.
		"":                None,
		"floyd_steinberg": None,
		"bayer":           None,
		"ATKINSON":        None,
	}
	for s, want := range cases {
		if got := ParseMode(s); got != want {
			t.Errorf("ParseMode(%q) = %v, want %v", s, got, want)
		}
	}
}

func TestClosestIndex(t *testing.T) {
	palette := []color.NRGBA{
		{0, 0, 0, 0}, // transparent, must be skipped
		black,
		{128, 128, 128, 255},
		white,
	}
	cases := []struct {
		c    color.NRGBA
		want int
	}{
		{color.NRGBA{0, 0, 0, 255}, 1},
		{color.NRGBA{10, 10, 10, 255}, 1},
		{color.NRGBA{130, 120, 128, 255}, 2},
		{color.NRGBA{250, 255, 240, 255}, 3},
	}
	for _, tc := range cases {
		if got := ClosestIndex(tc.c, palette); got != tc.want {
			t.Errorf("ClosestIndex(%v) = %d, want %d", tc.c, got, tc.want)
		}
	}

	// Equidistant candidates keep the lowest index.
	pal := []color.NRGBA{{100, 0, 0, 255}, {120, 0, 0, 255}}
	if got := ClosestIndex(color.NRGBA{110, 0, 0, 255}, pal); got != 0 {
		t.Errorf("tie broke to %d, want 0", got)
	}
}

func TestApplyNoneIdentity(t *testing.T) {
	img := grayRow(0, 60, 100, 200, 255)
	out := Apply(img, bw, None)
	if diff := cmp.Diff(img.Pix, out.Pix); diff != "" {
		t.Errorf("mode none modified pixels (-want +got):\n%s", diff)
	}
	// The copy must not alias the input.
	out.SetNRGBA(0, 0, white)
	if img.NRGBAAt(0, 0) == white {
		t.Error("Apply returned a view of its input")
	}
}

func TestApplyEmptyPalette(t *testing.T) {
	img := grayRow(100, 200)
	for _, palette := range [][]color.NRGBA{nil, {{1, 2, 3, 0}}} {
		out := Apply(img, palette, FloydSteinberg)
		if diff := cmp.Diff(img.Pix, out.Pix); diff != "" {
			t.Errorf("palette %v: not identity (-want +got):\n%s", palette, diff)
		}
	}
}

func TestFloydSteinbergErrorPropagation(t *testing.T) {
	// Both pixels are gray 100, nearest to black. The first pixel's
	// +100 error reaches the second at 7/16, so 100 + 43.75 -> 143
	// after truncation, which flips it to white.
	out := Apply(grayRow(100, 100), bw, FloydSteinberg)
	if got := out.NRGBAAt(0, 0); got != black {
		t.Errorf("pixel 0 = %v, want black", got)
	}
	if got := out.NRGBAAt(1, 0); got != white {
		t.Errorf("pixel 1 = %v, want white", got)
	}
}

func TestAtkinsonLighterThanFloydSteinberg(t *testing.T) {
	// Atkinson forwards only 1/8 per tap: 100 + 12.5 -> 112 stays
	// black where Floyd-Steinberg flipped it.
	out := Apply(grayRow(100, 100), bw, Atkinson)
	for x := 0; x < 2; x++ {
		if got := out.NRGBAAt(x, 0); got != black {
			t.Errorf("pixel %d = %v, want black", x, got)
		}
	}
}

func TestAtkinsonSecondColumnTap(t *testing.T) {
	// The (x+2, y) tap reaches pixel 2 directly from pixel 0:
	// accumulated error 12.5 + 14 = 26.5 is still nearest black.
	out := Apply(grayRow(100, 100, 100), bw, Atkinson)
	want := []color.NRGBA{black, black, black}
	for x, w := range want {
		if got := out.NRGBAAt(x, 0); got != w {
			t.Errorf("pixel %d = %v, want %v", x, got, w)
		}
	}
}

func TestOrderedThresholds(t *testing.T) {
	// Bayer entry (0,0) is 0, threshold -32: 140 drops to 108, black.
	// Entry (0,1) is 8, threshold 0: 140 stays, white.
	out := Apply(grayRow(140, 140), bw, Ordered)
	if got := out.NRGBAAt(0, 0); got != black {
		t.Errorf("pixel 0 = %v, want black", got)
	}
	if got := out.NRGBAAt(1, 0); got != white {
		t.Errorf("pixel 1 = %v, want white", got)
	}
}

func TestOrderedStateless(t *testing.T) {
	// Identical pixels at identical matrix phase quantize identically,
	// regardless of what lies between them.
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.SetNRGBA(x, y, color.NRGBA{140, 140, 140, 255})
		}
	}
	out := Apply(img, bw, Ordered)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if out.NRGBAAt(x, y) != out.NRGBAAt(x+4, y+4) {
				t.Errorf("phase (%d,%d): %v != %v", x, y, out.NRGBAAt(x, y), out.NRGBAAt(x+4, y+4))
			}
		}
	}
}

func TestTransparentPassthrough(t *testing.T) {
	for _, mode := range []Mode{FloydSteinberg, Ordered, Atkinson} {
		img := grayRow(100, 0, 100)
		clearPx := color.NRGBA{77, 88, 99, 10} // alpha < 128
		img.SetNRGBA(1, 0, clearPx)

		out := Apply(img, bw, mode)
		if got := out.NRGBAAt(1, 0); got != clearPx {
			t.Errorf("mode %v: transparent pixel = %v, want %v untouched", mode, got, clearPx)
		}
	}
}

func TestErrorDiscardedAtTransparentPixel(t *testing.T) {
	// Pixel 0's error routes into the transparent pixel 1 and dies
	// there; pixel 2 receives nothing and quantizes to black on its
	// own, instead of flipping white as it would with the carry.
	img := grayRow(100, 100, 100)
	img.SetNRGBA(1, 0, color.NRGBA{100, 100, 100, 0})

	out := Apply(img, bw, FloydSteinberg)
	if got := out.NRGBAAt(2, 0); got != black {
		t.Errorf("pixel 2 = %v, want black (no error across transparent pixel)", got)
	}
}

func TestNoWrapAtRasterEdge(t *testing.T) {
	// A single pixel sends all its error out of bounds; nothing panics
	// and nothing wraps to another row.
	out := Apply(grayRow(100), bw, FloydSteinberg)
	if got := out.NRGBAAt(0, 0); got != black {
		t.Errorf("pixel = %v, want black", got)
	}

	// Two rows: the x-1 tap at column 0 must not wrap to the end of
	// the previous or same row.
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			img.SetNRGBA(x, y, color.NRGBA{100, 100, 100, 255})
		}
	}
	out = Apply(img, bw, FloydSteinberg)
	// (0,0): 100 -> black, err 100. (1,0): 100+43.75=143 -> white,
	// err -112. (0,1): 100 + 5/16*100 + 3/16*(-112) = 110.25 -> 110 -> black.
	if got := out.NRGBAAt(0, 1); got != black {
		t.Errorf("pixel (0,1) = %v, want black", got)
	}
}

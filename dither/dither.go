// Package dither approximates an image with a fixed palette, optionally
// spreading quantization error to neighboring pixels.
//
// Pixels with alpha below 128 are treated as fully transparent: they
// pass through unmodified and never take part in error propagation.
package dither

import (
	"image"
	"image/color"
	"math"
)

// Mode selects the dithering algorithm used by Apply.
type Mode int

const (
	// None maps every pixel to its nearest palette color with no error
	// distribution.
	None Mode = iota
	// FloydSteinberg diffuses quantization error to four neighbors
	// with the classic 7/3/5/1 sixteenths kernel.
	FloydSteinberg
	// Ordered applies a 4x4 Bayer threshold matrix. Stateless per
	// pixel.
	Ordered
	// Atkinson diffuses only 3/4 of the quantization error across six
	// neighbors, giving a lighter result.
	Atkinson
)

func (m Mode) String() string {
	switch m {
	case FloydSteinberg:
		return "floyd-steinberg"
	case Ordered:
		return "ordered"
	case Atkinson:
		return "atkinson"
	default:
		return "none"
	}
}

// ParseMode maps a mode string to a Mode. Unrecognized strings fall
// back to None rather than failing; callers rely on this
// permissive-decode behavior.
func ParseMode(s string) Mode {
	switch s {
	case "floyd-steinberg":
		return FloydSteinberg
	case "ordered":
		return Ordered
	case "atkinson":
		return Atkinson
	default:
		return None
	}
}

func transparent(c color.NRGBA) bool {
	return c.A < 128
}

// ClosestIndex returns the index of the palette entry nearest to c
// under plain Euclidean RGB distance, skipping transparent entries.
// Ties keep the lowest index. An empty or fully transparent palette
// yields 0.
func ClosestIndex(c color.NRGBA, palette []color.NRGBA) int {
	minDist := math.MaxFloat64
	closest := 0
	for i, p := range palette {
		if transparent(p) {
			continue
		}
		dr := float64(c.R) - float64(p.R)
		dg := float64(c.G) - float64(p.G)
		db := float64(c.B) - float64(p.B)
		if d := dr*dr + dg*dg + db*db; d < minDist {
			minDist = d
			closest = i
		}
	}
	return closest
}

// Apply returns a copy of img dithered against the palette. Mode None
// is an identity copy; the other modes re-quantize every opaque pixel
// through ClosestIndex. Transparent pixels are copied unchanged. A
// palette with no opaque entries makes Apply the identity.
func Apply(img *image.NRGBA, palette []color.NRGBA, m Mode) *image.NRGBA {
	out := cloneNRGBA(img)
	if !hasOpaque(palette) {
		return out
	}

	switch m {
	case FloydSteinberg:
		diffuse(out, palette, fsKernel)
	case Ordered:
		ordered(out, palette)
	case Atkinson:
		diffuse(out, palette, atkinsonKernel)
	}
	return out
}

func hasOpaque(palette []color.NRGBA) bool {
	for _, p := range palette {
		if !transparent(p) {
			return true
		}
	}
	return false
}

func cloneNRGBA(img *image.NRGBA) *image.NRGBA {
	out := image.NewNRGBA(img.Bounds())
	copy(out.Pix, img.Pix)
	return out
}

// clampByte clamps to [0,255] first, then truncates toward zero.
func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

type tap struct {
	dx, dy int
	weight float64
}

// Floyd-Steinberg distributes the full error; the x-1 tap must never
// wrap at column zero.
var fsKernel = []tap{
	{1, 0, 7.0 / 16.0},
	{-1, 1, 3.0 / 16.0},
	{0, 1, 5.0 / 16.0},
	{1, 1, 1.0 / 16.0},
}

// Atkinson distributes 6/8 of the error, deliberately lossy.
var atkinsonKernel = []tap{
	{1, 0, 1.0 / 8.0},
	{2, 0, 1.0 / 8.0},
	{-1, 1, 1.0 / 8.0},
	{0, 1, 1.0 / 8.0},
	{1, 1, 1.0 / 8.0},
	{0, 2, 1.0 / 8.0},
}

// diffuse runs row-major error diffusion. The pending error lives in a
// rolling window of three dense rows (current plus two lookahead, the
// deepest reach of any kernel tap) instead of a map keyed by
// coordinate: the live error set is always that small neighborhood.
func diffuse(img *image.NRGBA, palette []color.NRGBA, kernel []tap) {
	b := img.Bounds()
	w := b.Dx()
	h := b.Dy()
	if w == 0 || h == 0 {
		return
	}

	rows := [3][]float64{
		make([]float64, w*3),
		make([]float64, w*3),
		make([]float64, w*3),
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			px := img.NRGBAAt(b.Min.X+x, b.Min.Y+y)
			if transparent(px) {
				// Any error already routed here is dropped when the
				// window rolls past it.
				continue
			}

			off := x * 3
			corrected := color.NRGBA{
				R: clampByte(float64(px.R) + rows[0][off]),
				G: clampByte(float64(px.G) + rows[0][off+1]),
				B: clampByte(float64(px.B) + rows[0][off+2]),
				A: px.A,
			}

			chosen := palette[ClosestIndex(corrected, palette)]
			img.SetNRGBA(b.Min.X+x, b.Min.Y+y, chosen)

			errR := float64(corrected.R) - float64(chosen.R)
			errG := float64(corrected.G) - float64(chosen.G)
			errB := float64(corrected.B) - float64(chosen.B)

			for _, t := range kernel {
				nx := x + t.dx
				ny := y + t.dy
				if nx < 0 || nx >= w || ny >= h {
					continue
				}
				noff := nx * 3
				rows[t.dy][noff] += errR * t.weight
				rows[t.dy][noff+1] += errG * t.weight
				rows[t.dy][noff+2] += errB * t.weight
			}
		}

		rows[0], rows[1], rows[2] = rows[1], rows[2], rows[0]
		clear(rows[2])
	}
}

// 4x4 Bayer threshold matrix.
var bayer = [4][4]float64{
	{0, 8, 2, 10},
	{12, 4, 14, 6},
	{3, 11, 1, 9},
	{15, 7, 13, 5},
}

func ordered(img *image.NRGBA, palette []color.NRGBA) {
	b := img.Bounds()
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			px := img.NRGBAAt(b.Min.X+x, b.Min.Y+y)
			if transparent(px) {
				continue
			}

			threshold := (bayer[y%4][x%4]/16.0 - 0.5) * 64.0
			adjusted := color.NRGBA{
				R: clampByte(float64(px.R) + threshold),
				G: clampByte(float64(px.G) + threshold),
				B: clampByte(float64(px.B) + threshold),
				A: px.A,
			}
			img.SetNRGBA(b.Min.X+x, b.Min.Y+y, palette[ClosestIndex(adjusted, palette)])
		}
	}
}

// Package stitchgrid converts an image into a stitchable pattern: a
// bounded color palette, a per-pixel color-id grid, and a rendered
// preview, optionally remapped onto a real embroidery-thread catalog.
//
// Each call to Process owns its working buffers exclusively; nothing is
// shared across invocations, so concurrent calls need no locking.
package stitchgrid

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"stitchgrid/colordist"
	"stitchgrid/dither"
	"stitchgrid/quantize"
	"stitchgrid/threads"
)

// ErrInvalidDimensions is returned when the target width or height is
// not positive.
var ErrInvalidDimensions = errors.New("invalid target dimensions")

// Options configures one processing run.
type Options struct {
	// Target pattern size in stitches.
	Width, Height int
	// Maximum palette size produced by quantization.
	MaxColors int
	// Dithering mode applied after quantization.
	Dither dither.Mode
	// RemoveBackground excludes near-white pixels: every channel
	// greater than 255-BackgroundThreshold.
	RemoveBackground    bool
	BackgroundThreshold uint8
	// Palette, when set, is used as-is and quantization is skipped.
	// Entries should be opaque.
	Palette []color.NRGBA
	// Matching, when set, remaps the palette onto a thread catalog.
	Matching *MatchOptions
}

// MatchOptions selects a thread catalog and the metric used to match
// palette colors onto it. The catalog is static reference data, loaded
// once elsewhere and never mutated here.
type MatchOptions struct {
	Catalog []threads.Color
	Metric  colordist.Metric
}

// DefaultOptions returns a reasonable starting configuration. Width and
// Height must still be set by the caller.
func DefaultOptions() Options {
	return Options{
		MaxColors:           16,
		Dither:              dither.None,
		BackgroundThreshold: 10,
	}
}

// Color is one output pattern color. ThreadBrand and ThreadCode are set
// only when the palette was matched against a catalog.
type Color struct {
	ID          string
	Name        string
	RGB         [3]uint8
	ThreadBrand string
	ThreadCode  string
}

// Result is the outcome of one processing run. Pixels has exactly
// Height rows of Width identifier strings; the empty string marks "no
// stitch" (transparent or background-removed). An entirely excluded
// image yields zero Colors and an all-empty grid, which is a valid "no
// stitches" result, not an error.
type Result struct {
	Width, Height int
	Colors        []Color
	Pixels        [][]string
	Preview       *image.NRGBA
}

// Process runs the full pipeline: resize if needed, quantize, dither,
// optionally match against a thread catalog, and assign every pixel an
// output color id.
func Process(img image.Image, opt Options) (*Result, error) {
	if opt.Width <= 0 || opt.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, opt.Width, opt.Height)
	}

	src := toNRGBA(img, opt.Width, opt.Height)

	masked, palette := reduce(src, opt)
	dithered := dither.Apply(masked, palette, opt.Dither)

	var colors []Color
	var idMap map[int]string
	if opt.Matching != nil {
		colors, idMap = matchThreads(palette, opt.Matching)
	} else {
		colors, idMap = generatedColors(palette)
	}

	pixels := assignPixels(dithered, palette, idMap, opt)

	return &Result{
		Width:   opt.Width,
		Height:  opt.Height,
		Colors:  colors,
		Pixels:  pixels,
		Preview: renderPreview(pixels, colors),
	}, nil
}

func transparent(c color.NRGBA) bool {
	return c.A < 128
}

func background(c color.NRGBA, threshold uint8) bool {
	return c.R > 255-threshold && c.G > 255-threshold && c.B > 255-threshold
}

func excluded(c color.NRGBA, opt Options) bool {
	return transparent(c) || (opt.RemoveBackground && background(c, opt.BackgroundThreshold))
}

// toNRGBA copies img into a fresh Width x Height NRGBA buffer, scaling
// with a high-quality resampling filter when the sizes differ. The
// result is always an independently owned buffer.
func toNRGBA(img image.Image, w, h int) *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	b := img.Bounds()
	if b.Dx() == w && b.Dy() == h {
		if src, ok := img.(*image.NRGBA); ok && b.Min == image.Pt(0, 0) {
			copy(out.Pix, src.Pix)
			return out
		}
		draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
		return out
	}
	draw.CatmullRom.Scale(out, out.Bounds(), img, b, draw.Src, nil)
	return out
}

// reduce builds the working palette and maps every included pixel to
// its nearest palette color. Excluded pixels come out fully
// transparent. An empty palette, whether from a zero color budget, a
// fully excluded image, or an empty Options.Palette, masks the whole
// raster: zero colors is a valid "no stitches" outcome.
func reduce(src *image.NRGBA, opt Options) (*image.NRGBA, []color.NRGBA) {
	b := src.Bounds()

	palette := opt.Palette
	if palette == nil {
		var included []color.NRGBA
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				if px := src.NRGBAAt(x, y); !excluded(px, opt) {
					included = append(included, px)
				}
			}
		}
		if len(included) > 0 {
			palette = quantize.MedianCut(included, opt.MaxColors)
		}
	}

	out := image.NewNRGBA(b)
	if len(palette) == 0 {
		return out, nil
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			px := src.NRGBAAt(x, y)
			if excluded(px, opt) {
				out.SetNRGBA(x, y, color.NRGBA{})
				continue
			}
			out.SetNRGBA(x, y, palette[dither.ClosestIndex(px, palette)])
		}
	}
	return out, palette
}

// generatedColors assigns each opaque palette entry a sequential
// "color-<n>" id, n being the palette position.
func generatedColors(palette []color.NRGBA) ([]Color, map[int]string) {
	colors := make([]Color, 0, len(palette))
	idMap := make(map[int]string, len(palette))
	for i, c := range palette {
		if transparent(c) {
			continue
		}
		id := fmt.Sprintf("color-%d", i+1)
		colors = append(colors, Color{
			ID:   id,
			Name: fmt.Sprintf("Color %d", i+1),
			RGB:  [3]uint8{c.R, c.G, c.B},
		})
		idMap[i] = id
	}
	return colors, idMap
}

// matchThreads maps each opaque palette entry to its nearest catalog
// color. Palette entries landing on the same catalog color share one
// output Color: the first hit mints the id, later hits reuse it.
// Catalog entries never selected do not appear in the output.
func matchThreads(palette []color.NRGBA, mo *MatchOptions) ([]Color, map[int]string) {
	var colors []Color
	idMap := make(map[int]string, len(palette))
	seen := make(map[string]int) // catalog id -> index into colors

	for i, c := range palette {
		if transparent(c) {
			continue
		}
		m := threads.FindClosest([3]uint8{c.R, c.G, c.B}, mo.Catalog, mo.Metric)
		if m == nil {
			continue
		}
		if j, ok := seen[m.ID]; ok {
			idMap[i] = colors[j].ID
			continue
		}
		id := fmt.Sprintf("%s-color-%d", m.ID, i+1)
		seen[m.ID] = len(colors)
		idMap[i] = id
		colors = append(colors, Color{
			ID:          id,
			Name:        m.Name,
			RGB:         m.RGB,
			ThreadBrand: m.Brand.String(),
			ThreadCode:  m.Code,
		})
	}
	return colors, idMap
}

// renderPreview rasterizes the id grid: empty cells are fully
// transparent, assigned cells take their output color's RGB. An id
// missing from colors renders mid gray, which should never happen.
func renderPreview(pixels [][]string, colors []Color) *image.NRGBA {
	h := len(pixels)
	w := 0
	if h > 0 {
		w = len(pixels[0])
	}
	byID := make(map[string][3]uint8, len(colors))
	for _, c := range colors {
		byID[c.ID] = c.RGB
	}

	preview := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y, row := range pixels {
		for x, id := range row {
			if id == "" {
				continue // stays transparent
			}
			if rgb, ok := byID[id]; ok {
				preview.SetNRGBA(x, y, color.NRGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 255})
			} else {
				preview.SetNRGBA(x, y, color.NRGBA{R: 128, G: 128, B: 128, A: 255})
			}
		}
	}
	return preview
}

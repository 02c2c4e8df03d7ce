package stitchgrid

import (
	"image"
	"image/color"
	"log"

	"stitchgrid/dither"
)

// assignPixels walks the dithered raster once, row-major, and emits the
// final id grid. Lookup goes through an exact RGB-triple cache built
// from the palette, so each pixel costs O(1) instead of a palette scan.
func assignPixels(dithered *image.NRGBA, palette []color.NRGBA, idMap map[int]string, opt Options) [][]string {
	cache := make(map[[3]uint8]string, len(palette))
	for i, c := range palette {
		if transparent(c) {
			continue
		}
		if id, ok := idMap[i]; ok {
			cache[[3]uint8{c.R, c.G, c.B}] = id
		}
	}

	b := dithered.Bounds()
	rows := make([][]string, opt.Height)
	for y := 0; y < opt.Height; y++ {
		row := make([]string, opt.Width)
		for x := 0; x < opt.Width; x++ {
			px := dithered.NRGBAAt(b.Min.X+x, b.Min.Y+y)
			// Background is re-checked here: a palette color can land
			// in the near-white band even though the source pixel that
			// produced it was kept.
			if excluded(px, opt) {
				continue
			}
			key := [3]uint8{px.R, px.G, px.B}
			if id, ok := cache[key]; ok {
				row[x] = id
				continue
			}
			// Safety net for rounding mismatches between the dithering
			// pass and the cache build. Hitting it repeatedly would
			// point at a real bug upstream.
			if id, ok := idMap[dither.ClosestIndex(px, palette)]; ok {
				log.Printf("stitchgrid: palette cache miss at (%d,%d) for %v, fell back to linear scan", x, y, key)
				row[x] = id
			}
		}
		rows[y] = row
	}
	return rows
}

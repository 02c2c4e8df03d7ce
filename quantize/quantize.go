// Package quantize reduces an unbounded set of sampled colors to a
// bounded palette using median-cut subdivision.
package quantize

import (
	"image/color"
	"slices"
)

// MedianCut builds a palette of at most maxColors representative colors
// from the given pixel samples. Callers filter transparency and
// background exclusion beforehand; every input sample counts.
//
// Buckets are split on the single largest per-channel range across all
// splittable buckets, first-found winning ties, until the palette is
// full or no bucket has any color variation left. Each final bucket
// contributes its per-channel integer mean, forced opaque. Palette
// order is final bucket order, not sorted by color.
func MedianCut(pixels []color.NRGBA, maxColors int) []color.NRGBA {
	if len(pixels) == 0 || maxColors <= 0 {
		return nil
	}

	buckets := [][]color.NRGBA{slices.Clone(pixels)}

	for len(buckets) < maxColors {
		maxRange := uint8(0)
		maxBucket := 0
		splitChannel := 0

		for i, bucket := range buckets {
			if len(bucket) <= 1 {
				continue
			}
			for ch := 0; ch < 3; ch++ {
				lo, hi := channelBounds(bucket, ch)
				if r := hi - lo; r > maxRange {
					maxRange = r
					maxBucket = i
					splitChannel = ch
				}
			}
		}

		if maxRange == 0 || len(buckets[maxBucket]) <= 1 {
			break
		}

		bucket := buckets[maxBucket]
		buckets = slices.Delete(buckets, maxBucket, maxBucket+1)

		ch := splitChannel
		slices.SortStableFunc(bucket, func(a, b color.NRGBA) int {
			return int(channel(a, ch)) - int(channel(b, ch))
		})

		mid := len(bucket) / 2
		left, right := bucket[:mid], bucket[mid:]
		if len(left) > 0 {
			buckets = append(buckets, left)
		}
		if len(right) > 0 {
			buckets = append(buckets, right)
		}
	}

	palette := make([]color.NRGBA, 0, len(buckets))
	for _, bucket := range buckets {
		if len(bucket) == 0 {
			continue
		}
		var rsum, gsum, bsum uint64
		for _, p := range bucket {
			rsum += uint64(p.R)
			gsum += uint64(p.G)
			bsum += uint64(p.B)
		}
		n := uint64(len(bucket))
		palette = append(palette, color.NRGBA{
			R: uint8(rsum / n),
			G: uint8(gsum / n),
			B: uint8(bsum / n),
			A: 255,
		})
	}
	return palette
}

func channel(c color.NRGBA, ch int) uint8 {
	switch ch {
	case 0:
		return c.R
	case 1:
		return c.G
	default:
		return c.B
	}
}

func channelBounds(bucket []color.NRGBA, ch int) (lo, hi uint8) {
	lo, hi = 255, 0
	for _, p := range bucket {
		v := channel(p, ch)
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

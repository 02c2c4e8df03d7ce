// Package threads holds the embroidery thread color catalogs and the
// perceptual matching of arbitrary colors onto them.
//
// The catalogs are static reference data, loaded once; nothing in this
// package mutates them.
package threads

import "fmt"

// Brand identifies a thread manufacturer line.
type Brand int

const (
	DMC Brand = iota
	Anchor
	Kreinik
)

func (b Brand) String() string {
	switch b {
	case Anchor:
		return "Anchor"
	case Kreinik:
		return "Kreinik"
	default:
		return "DMC"
	}
}

// ParseBrand maps a brand name to a Brand. Unrecognized names fall
// back to DMC, the most common line.
func ParseBrand(s string) Brand {
	switch s {
	case "Anchor":
		return Anchor
	case "Kreinik":
		return Kreinik
	default:
		return DMC
	}
}

// Color is one catalog entry: a manufacturer code, a display name, and
// the thread's nominal RGB.
type Color struct {
	Code  string
	Name  string
	RGB   [3]uint8
	Brand Brand
}

// ID returns the catalog identifier, "<brand>-<code>".
func (c Color) ID() string {
	return fmt.Sprintf("%s-%s", c.Brand, c.Code)
}

// ByBrand returns the catalog for one brand.
func ByBrand(b Brand) []Color {
	switch b {
	case Anchor:
		return anchorThreads
	case Kreinik:
		return kreinikThreads
	default:
		return dmcThreads
	}
}

// All returns every catalog entry across all brands.
func All() []Color {
	out := make([]Color, 0, len(dmcThreads)+len(anchorThreads)+len(kreinikThreads))
	out = append(out, dmcThreads...)
	out = append(out, anchorThreads...)
	out = append(out, kreinikThreads...)
	return out
}

// Library describes one catalog for selection UIs.
type Library struct {
	Brand       Brand
	Name        string
	Description string
	Count       int
}

// Libraries returns the available thread libraries.
func Libraries() []Library {
	return []Library{
		{
			Brand:       DMC,
			Name:        "DMC",
			Description: "DMC Cotton Embroidery Floss - Industry standard",
			Count:       len(dmcThreads),
		},
		{
			Brand:       Anchor,
			Name:        "Anchor Stranded",
			Description: "Anchor Stranded Cotton - Popular alternative",
			Count:       len(anchorThreads),
		},
		{
			Brand:       Kreinik,
			Name:        "Kreinik Metallics",
			Description: "Kreinik Metallic Threads - Premium metallics",
			Count:       len(kreinikThreads),
		},
	}
}

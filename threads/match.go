package threads

import "stitchgrid/colordist"

// Match is the catalog entry nearest to a target color.
type Match struct {
	ID       string
	Code     string
	Name     string
	Brand    Brand
	RGB      [3]uint8
	Distance float64
}

// FindClosest returns the catalog entry nearest to target under the
// given metric, or nil for an empty catalog. Ties keep the
// first-encountered entry in catalog order.
func FindClosest(target [3]uint8, catalog []Color, m colordist.Metric) *Match {
	if len(catalog) == 0 {
		return nil
	}

	var best *Match
	bestDist := 0.0
	for _, entry := range catalog {
		d := colordist.Distance(target, entry.RGB, m)
		if best == nil || d < bestDist {
			bestDist = d
			best = &Match{
				ID:       entry.ID(),
				Code:     entry.Code,
				Name:     entry.Name,
				Brand:    entry.Brand,
				RGB:      entry.RGB,
				Distance: d,
			}
		}
	}
	return best
}

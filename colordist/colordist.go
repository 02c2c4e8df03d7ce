// Package colordist computes perceptual distances between RGB colors.
//
// Five metrics are supported, from plain RGB Euclidean distance up to
// the full CIEDE2000 formula. The Lab-based metrics convert through CIE
// XYZ with the D65 illuminant.
package colordist

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Metric selects the distance formula used by Distance.
type Metric int

const (
	// Euclidean is plain Euclidean distance in raw RGB space.
	Euclidean Metric = iota
	// Weighted is RGB Euclidean distance with channel weights derived
	// from the mean red value, a cheap perceptual approximation.
	Weighted
	// CIE76 is Euclidean distance in Lab space.
	CIE76
	// CIE94 refines CIE76 with chroma/hue decomposition, using the
	// textile weighting constants.
	CIE94
	// CIEDE2000 is the full industry-standard Delta E formula.
	CIEDE2000
)

func (m Metric) String() string {
	switch m {
	case Euclidean:
		return "euclidean"
	case Weighted:
		return "weighted"
	case CIE76:
		return "cie76"
	case CIE94:
		return "cie94"
	default:
		return "ciede2000"
	}
}

// ParseMetric maps a mode string to a Metric. Unrecognized strings fall
// back to CIEDE2000 rather than failing; callers rely on this
// permissive-decode behavior.
func ParseMetric(s string) Metric {
	switch s {
	case "euclidean":
		return Euclidean
	case "weighted":
		return Weighted
	case "cie76":
		return CIE76
	case "cie94":
		return CIE94
	default:
		return CIEDE2000
	}
}

// Lab is a CIE Lab color, derived from RGB on demand and never stored.
type Lab struct {
	L, A, B float64
}

// sRGB → XYZ under D65, rows are X, Y, Z.
var srgbToXYZ = mat.NewDense(3, 3, []float64{
	0.4124564, 0.3575761, 0.1804375,
	0.2126729, 0.7151522, 0.0721750,
	0.0193339, 0.1191920, 0.9503041,
})

// D65 reference white.
const (
	refX = 95.047
	refY = 100.000
	refZ = 108.883
)

func linearize(v float64) float64 {
	if v > 0.04045 {
		return math.Pow((v+0.055)/1.055, 2.4)
	}
	return v / 12.92
}

func rgbToXYZ(rgb [3]uint8) (x, y, z float64) {
	lin := mat.NewVecDense(3, []float64{
		linearize(float64(rgb[0])/255.0) * 100.0,
		linearize(float64(rgb[1])/255.0) * 100.0,
		linearize(float64(rgb[2])/255.0) * 100.0,
	})
	var xyz mat.VecDense
	xyz.MulVec(srgbToXYZ, lin)
	return xyz.AtVec(0), xyz.AtVec(1), xyz.AtVec(2)
}

// Piecewise cube-root/linear CIE f(t) constants.
const (
	labEpsilon = 0.008856
	labKappa   = 903.3
)

func labF(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return (labKappa*t + 16.0) / 116.0
}

// RGBToLab converts an 8-bit RGB color to CIE Lab (D65).
func RGBToLab(rgb [3]uint8) Lab {
	x, y, z := rgbToXYZ(rgb)
	fx := labF(x / refX)
	fy := labF(y / refY)
	fz := labF(z / refZ)
	return Lab{
		L: 116.0*fy - 16.0,
		A: 500.0 * (fx - fy),
		B: 200.0 * (fy - fz),
	}
}

// Distance returns the distance between two colors under the given
// metric. The result is >= 0, symmetric, and zero for equal colors (up
// to floating-point noise).
func Distance(a, b [3]uint8, m Metric) float64 {
	switch m {
	case Euclidean:
		return euclidean(a, b)
	case Weighted:
		return weighted(a, b)
	case CIE76:
		return deltaE76(a, b)
	case CIE94:
		return deltaE94(a, b)
	default:
		return deltaE2000(a, b)
	}
}

func euclidean(a, b [3]uint8) float64 {
	dr := float64(a[0]) - float64(b[0])
	dg := float64(a[1]) - float64(b[1])
	db := float64(a[2]) - float64(b[2])
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

func weighted(a, b [3]uint8) float64 {
	rmean := (float64(a[0]) + float64(b[0])) / 2.0
	dr := float64(a[0]) - float64(b[0])
	dg := float64(a[1]) - float64(b[1])
	db := float64(a[2]) - float64(b[2])

	wr := 2.0 + rmean/256.0
	wg := 4.0
	wb := 2.0 + (255.0-rmean)/256.0

	return math.Sqrt(wr*dr*dr + wg*dg*dg + wb*db*db)
}

func deltaE76(a, b [3]uint8) float64 {
	lab1 := RGBToLab(a)
	lab2 := RGBToLab(b)

	dl := lab1.L - lab2.L
	da := lab1.A - lab2.A
	db := lab1.B - lab2.B

	return math.Sqrt(dl*dl + da*da + db*db)
}

func deltaE94(c1, c2 [3]uint8) float64 {
	lab1 := RGBToLab(c1)
	lab2 := RGBToLab(c2)

	dl := lab1.L - lab2.L
	da := lab1.A - lab2.A
	db := lab1.B - lab2.B

	chroma1 := math.Sqrt(lab1.A*lab1.A + lab1.B*lab1.B)
	chroma2 := math.Sqrt(lab2.A*lab2.A + lab2.B*lab2.B)
	dc := chroma1 - chroma2

	// Hue difference via decomposition; clamp the residual so the gray
	// axis never yields a negative operand for Sqrt.
	dh2 := da*da + db*db - dc*dc
	dh := 0.0
	if dh2 > 0 {
		dh = math.Sqrt(dh2)
	}

	// Textile weighting constants.
	const (
		kl = 2.0
		k1 = 0.048
		k2 = 0.014
	)

	sl := 1.0
	sc := 1.0 + k1*chroma1
	sh := 1.0 + k2*chroma1

	t1 := dl / (kl * sl)
	t2 := dc / sc
	t3 := dh / sh

	return math.Sqrt(t1*t1 + t2*t2 + t3*t3)
}

func deltaE2000(c1, c2 [3]uint8) float64 {
	lab1 := RGBToLab(c1)
	lab2 := RGBToLab(c2)

	l1, a1, b1 := lab1.L, lab1.A, lab1.B
	l2, a2, b2 := lab2.L, lab2.A, lab2.B

	chroma1 := math.Sqrt(a1*a1 + b1*b1)
	chroma2 := math.Sqrt(a2*a2 + b2*b2)
	cAvg := (chroma1 + chroma2) / 2.0

	pow7 := func(v float64) float64 { return math.Pow(v, 7) }
	const twentyFive7 = 25.0 * 25.0 * 25.0 * 25.0 * 25.0 * 25.0 * 25.0

	g := 0.5 * (1.0 - math.Sqrt(pow7(cAvg)/(pow7(cAvg)+twentyFive7)))

	a1p := a1 * (1.0 + g)
	a2p := a2 * (1.0 + g)

	c1p := math.Sqrt(a1p*a1p + b1*b1)
	c2p := math.Sqrt(a2p*a2p + b2*b2)

	h1p := degrees(math.Atan2(b1, a1p))
	h2p := degrees(math.Atan2(b2, a2p))
	if h1p < 0 {
		h1p += 360.0
	}
	if h2p < 0 {
		h2p += 360.0
	}

	dlp := l2 - l1
	dcp := c2p - c1p

	// Hue difference with 360 degree wraparound; zero-chroma colors have
	// no hue and contribute nothing.
	var dhp float64
	switch {
	case c1p*c2p == 0:
		dhp = 0
	case math.Abs(h2p-h1p) <= 180.0:
		dhp = h2p - h1p
	case h2p-h1p > 180.0:
		dhp = h2p - h1p - 360.0
	default:
		dhp = h2p - h1p + 360.0
	}
	dHp := 2.0 * math.Sqrt(c1p*c2p) * math.Sin(radians(dhp)/2.0)

	lAvg := (l1 + l2) / 2.0
	cpAvg := (c1p + c2p) / 2.0

	var hAvg float64
	switch {
	case c1p*c2p == 0:
		hAvg = h1p + h2p
	case math.Abs(h1p-h2p) <= 180.0:
		hAvg = (h1p + h2p) / 2.0
	case h1p+h2p < 360.0:
		hAvg = (h1p + h2p + 360.0) / 2.0
	default:
		hAvg = (h1p + h2p - 360.0) / 2.0
	}

	t := 1.0 -
		0.17*math.Cos(radians(hAvg-30.0)) +
		0.24*math.Cos(radians(2.0*hAvg)) +
		0.32*math.Cos(radians(3.0*hAvg+6.0)) -
		0.20*math.Cos(radians(4.0*hAvg-63.0))

	lm50sq := (lAvg - 50.0) * (lAvg - 50.0)
	sl := 1.0 + (0.015*lm50sq)/math.Sqrt(20.0+lm50sq)
	sc := 1.0 + 0.045*cpAvg
	sh := 1.0 + 0.015*cpAvg*t

	dTheta := 30.0 * math.Exp(-((hAvg-275.0)/25.0)*((hAvg-275.0)/25.0))
	rc := 2.0 * math.Sqrt(pow7(cpAvg)/(pow7(cpAvg)+twentyFive7))
	rt := -rc * math.Sin(radians(2.0*dTheta))

	const (
		kl = 1.0
		kc = 1.0
		kh = 1.0
	)

	t1 := dlp / (kl * sl)
	t2 := dcp / (kc * sc)
	t3 := dHp / (kh * sh)

	return math.Sqrt(t1*t1 + t2*t2 + t3*t3 + rt*t2*t3)
}

func degrees(rad float64) float64 { return rad * 180.0 / math.Pi }
func radians(deg float64) float64 { return deg * math.Pi / 180.0 }

package pfa

import "math"

// Closed-form constants for the specialized butterflies.
const (
	sin2p3 = 0.8660254037844386 // sin(2*pi/3)
	qrt5   = 0.5590169943749474 // (cos(2*pi/5)-cos(4*pi/5))/2 = sqrt(5)/4
	sin2p5 = 0.9510565162951535 // sin(2*pi/5)
	sin4p5 = 0.5877852522924731 // sin(4*pi/5)
)

// Coefficient sets for the specialized radices, indexed by rotation index
// mu. Entry zero is never used: mu is coprime to the factor.
var (
	// coef3[mu] = sin(2*pi*mu/3).
	coef3 = [3]float64{0, sin2p3, -sin2p3}

	// coef4[mu] = sin(pi*mu/2).
	coef4 = [4]float64{0, 1, 0, -1}

	// coef5[mu] = {(cos(2*pi*mu/5)-cos(4*pi*mu/5))/2,
	//              sin(2*pi*mu/5), sin(4*pi*mu/5)}.
	coef5 = [5][3]float64{
		{},
		{qrt5, sin2p5, sin4p5},
		{-qrt5, sin4p5, -sin2p5},
		{-qrt5, -sin4p5, sin2p5},
		{qrt5, -sin2p5, -sin4p5},
	}
)

// genTable holds the trigonometric coefficients for one (factor, mu) pair
// of the table-driven radices. Entry (k-1, l-1) is cos respectively
// sin(2*pi*mu*k*l/p) for the symmetric output pairs k = 1..h against the
// symmetric input combinations l = 1..h, where h counts the symmetric
// pairs: (p-1)/2 for odd p and p/2-1 for even p (the middle element of an
// even radix reduces to +/-1 coefficients and is handled separately).
type genTable struct {
	h   int
	cos [7][7]float64
	sin [7][7]float64
}

// genTables is keyed by factor, then rotation index. Entries exist for the
// table-driven radices {7, 8, 9, 11, 13, 16} and every mu coprime to the
// factor. Built once at init, read-only afterwards.
var genTables = buildGenTables()

func buildGenTables() map[int][]*genTable {
	tabs := make(map[int][]*genTable)
	for _, p := range []int{7, 8, 9, 11, 13, 16} {
		byMu := make([]*genTable, p)
		h := (p - 1) / 2
		for mu := 1; mu < p; mu++ {
			if gcd(mu, p) != 1 {
				continue
			}
			t := &genTable{h: h}
			for k := 1; k <= h; k++ {
				for l := 1; l <= h; l++ {
					// Reduce the angle before the trig call to keep
					// full precision at every (factor, mu).
					arg := 2 * math.Pi * float64(mu*k*l%p) / float64(p)
					t.cos[k-1][l-1] = math.Cos(arg)
					t.sin[k-1][l-1] = math.Sin(arg)
				}
			}
			byMu[mu] = t
		}
		tabs[p] = byMu
	}
	return tabs
}

package pfa

import "sort"

// MaxNfft is the largest valid transform length: 16*9*5*7*11*13.
const MaxNfft = 720720

// butterflyCost approximates the per-sample work of one butterfly stage,
// from operation counts of the routines in butterfly.go. Only the relative
// ordering matters: the fast-length query compares sums of these weights.
var butterflyCost = map[int]float64{
	2:  2.0,
	3:  6.0,
	4:  4.3,
	5:  8.0,
	7:  14.5,
	8:  11.0,
	9:  18.0,
	11: 22.5,
	13: 26.5,
	16: 25.0,
}

// nfftTable holds the 240 valid lengths sorted ascending: every product of
// one choice from each of {1,2,4,8,16}, {1,3,9}, {1,5}, {1,7}, {1,11} and
// {1,13}. costTable is the parallel modeled execution cost. Both are built
// once at init and never modified.
var nfftTable, costTable = buildTables()

func buildTables() ([]int, []float64) {
	lengths := []int{1}
	for _, set := range [][]int{{2, 4, 8, 16}, {3, 9}, {5}, {7}, {11}, {13}} {
		grown := append([]int(nil), lengths...)
		for _, f := range set {
			for _, n := range lengths {
				grown = append(grown, n*f)
			}
		}
		lengths = grown
	}
	sort.Ints(lengths)

	costs := make([]float64, len(lengths))
	for i, n := range lengths {
		var fs [maxFactors]int
		nf, _ := decompose(n, &fs)
		w := 0.0
		for c := 0; c < nf; c++ {
			w += butterflyCost[fs[c]]
		}
		costs[i] = float64(n) * w
	}
	return lengths, costs
}

// IsValid reports whether n appears in the valid-length table.
func IsValid(n int) bool {
	i := sort.SearchInts(nfftTable, n)
	return i < len(nfftTable) && nfftTable[i] == n
}

// Small returns the smallest valid length that is not less than n. The
// second result is false when n is not positive or exceeds MaxNfft.
func Small(n int) (int, bool) {
	if n < 1 || n > MaxNfft {
		return 0, false
	}
	return nfftTable[sort.SearchInts(nfftTable, n)], true
}

// Fast returns the valid length in [n, 2n) with the smallest tabulated
// cost, preferring the smallest length on ties. Consecutive valid lengths
// are always within a factor of two, so the range is never empty. The
// second result is false when n is not positive or exceeds MaxNfft.
func Fast(n int) (int, bool) {
	if n < 1 || n > MaxNfft {
		return 0, false
	}
	best := sort.SearchInts(nfftTable, n)
	for k := best + 1; k < len(nfftTable) && nfftTable[k] < 2*n; k++ {
		if costTable[k] < costTable[best] {
			best = k
		}
	}
	return nfftTable[best], true
}

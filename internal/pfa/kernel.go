// Package pfa implements the self-sorting in-place prime-factor FFT
// kernel: a mixed-radix transform whose length factors into pairwise
// coprime values from {2,3,4,5,7,8,9,11,13,16}, applied as one rotated
// butterfly stage per factor with no inter-stage twiddle multiplications
// and no permutation pass.
//
// The kernel assumes validated arguments: lengths come from the
// valid-length table in this package and sign is +1 or -1. Validation
// lives in the public wrappers. Transforms are unnormalized for either
// sign; sign -1 computes sum x_l*exp(-2*pi*i*k*l/n) and sign +1 the
// conjugate exponent.
package pfa

// Transform applies the in-place transform to the packed complex sequence
// z of length n: sample j occupies z[2j] and z[2j+1].
func Transform(sign, n int, z []float64) {
	transform(sign, n, packed{z: z})
}

// TransformRows applies the transform across n packed rows of n1 complex
// values each: sample j of lane l occupies z[j][2l] and z[j][2l+1]. This
// is the layout for transforming an axis that is not the fastest-varying
// one of a packed multi-dimensional array.
func TransformRows(sign, n1, n int, z [][]float64) {
	transform(sign, n, rowPairs{z: z, n1: n1})
}

// TransformPlanes applies the transform across n pairs of split rows of n1
// values each: sample j of lane l occupies re[j][l] and im[j][l]. The
// arithmetic is identical to the other layouts; only the addressing
// differs.
func TransformPlanes(sign, n1, n int, re, im [][]float64) {
	transform(sign, n, splitPlanes{re: re, im: im, n1: n1})
}

func transform[V axisView](sign, n int, v V) {
	if n < 2 {
		return
	}
	var fs [maxFactors]int
	nf, _ := decompose(n, &fs)
	for c := 0; c < nf; c++ {
		ifac := fs[c]
		m := n / ifac
		mu, mm := rotation(sign, ifac, m)

		// Start offsets: ifac positions spaced mm apart modulo n. The
		// stride mm is below n, so one subtraction folds each offset
		// back into range.
		var j [16]int
		for q := 1; q < ifac; q++ {
			j[q] = j[q-1] + mm
			if j[q] >= n {
				j[q] -= n
			}
		}

		switch ifac {
		case 2:
			radix2(v, m, j[0], j[1])
		case 3:
			radix3(v, m, j[0], j[1], j[2], mu)
		case 4:
			radix4(v, m, j[0], j[1], j[2], j[3], mu)
		case 5:
			radix5(v, m, j[0], j[1], j[2], j[3], j[4], mu)
		case 8, 16:
			radixEven(v, m, ifac, &j, genTables[ifac][mu])
		default: // 7, 9, 11, 13
			radixOdd(v, m, ifac, &j, genTables[ifac][mu])
		}
	}
}

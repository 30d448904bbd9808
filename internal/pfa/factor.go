package pfa

// Transform lengths factor into pairwise-coprime values drawn from this
// set, scanned in descending order so composite factors are consumed before
// their prime base.
var factors = [...]int{16, 13, 11, 9, 8, 7, 5, 4, 3, 2}

// maxFactors is the most factors a valid length can have (one per prime
// base 2, 3, 5, 7, 11, 13).
const maxFactors = 6

// decompose writes the ordered factor decomposition of n into fs and
// returns the factor count. The second result reports whether n factors
// completely into pairwise-coprime values, which holds for every length in
// the valid-length table.
func decompose(n int, fs *[maxFactors]int) (int, bool) {
	remaining, taken, cnt := n, 1, 0
	for _, f := range factors {
		if remaining%f != 0 || gcd(f, taken) != 1 {
			continue
		}
		fs[cnt] = f
		cnt++
		remaining /= f
		taken *= f
	}
	return cnt, remaining == 1
}

// rotation returns the rotation parameters for one butterfly stage of
// factor ifac with m = n/ifac groups: mu selects the trigonometric
// coefficient set and mm = k*m is the start-offset stride, where k is the
// multiplicative inverse of m modulo ifac. The inverse exists because m and
// ifac are coprime for every valid length. A negative transform sign
// negates mu (modulo ifac) but leaves the stride unchanged.
func rotation(sign, ifac, m int) (mu, mm int) {
	for k := 1; k < ifac; k++ {
		if k*m%ifac == 1 {
			mu, mm = k, k*m
			break
		}
	}
	if sign < 0 {
		mu = ifac - mu
	}
	return mu, mm
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

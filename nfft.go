package algopfa

import (
	"github.com/pkg/errors"

	"github.com/cwbudde/algo-pfa/internal/pfa"
)

// MaxNfft is the largest supported complex transform length. The real
// transform supports even lengths up to twice this value.
const MaxNfft = pfa.MaxNfft

// IsValidNfft reports whether n is a valid complex transform length: a
// product of pairwise-coprime factors drawn from {2,3,4,5,7,8,9,11,13,16}.
func IsValidNfft(n int) bool {
	return n >= 1 && pfa.IsValid(n)
}

// SmallNfft returns the smallest valid complex transform length that is
// not less than n. It fails with ErrInvalidLength when n is not positive
// or exceeds MaxNfft.
func SmallNfft(n int) (int, error) {
	nfft, ok := pfa.Small(n)
	if !ok {
		return 0, errors.Wrapf(ErrInvalidLength, "no valid complex length >= %d", n)
	}
	return nfft, nil
}

// FastNfft returns the valid complex transform length in [n, 2n) with the
// smallest tabulated execution cost, preferring the smallest length on
// ties. A cheaper slightly-longer transform often beats the shortest valid
// one. It fails with ErrInvalidLength when n is not positive or exceeds
// MaxNfft.
func FastNfft(n int) (int, error) {
	nfft, ok := pfa.Fast(n)
	if !ok {
		return 0, errors.Wrapf(ErrInvalidLength, "no valid complex length >= %d", n)
	}
	return nfft, nil
}

// IsValidNfftReal reports whether n is a valid real transform length: an
// even number whose half is a valid complex transform length. The real
// transform runs a half-length complex transform internally.
func IsValidNfftReal(n int) bool {
	return n >= 2 && n%2 == 0 && pfa.IsValid(n/2)
}

// SmallNfftReal returns the smallest valid real transform length that is
// not less than n. It fails with ErrInvalidLength when n is not positive
// or exceeds 2*MaxNfft.
func SmallNfftReal(n int) (int, error) {
	if n < 1 {
		return 0, errors.Wrapf(ErrInvalidLength, "no valid real length >= %d", n)
	}
	nfft, ok := pfa.Small((n + 1) / 2)
	if !ok {
		return 0, errors.Wrapf(ErrInvalidLength, "no valid real length >= %d", n)
	}
	return 2 * nfft, nil
}

// FastNfftReal returns a cheap valid real transform length not less than
// n: twice the fast complex length for half of n. It fails with
// ErrInvalidLength when n is not positive or exceeds 2*MaxNfft.
func FastNfftReal(n int) (int, error) {
	if n < 1 {
		return 0, errors.Wrapf(ErrInvalidLength, "no valid real length >= %d", n)
	}
	nfft, ok := pfa.Fast((n + 1) / 2)
	if !ok {
		return 0, errors.Wrapf(ErrInvalidLength, "no valid real length >= %d", n)
	}
	return 2 * nfft, nil
}

package algopfa

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-pfa/internal/pfa"
)

// FftComplex transforms complex-valued arrays along one chosen dimension
// of length nfft. Arrays pack complex values as adjacent (real, imaginary)
// float64 pairs along the fastest dimension, so a 1D array of n complex
// values occupies 2n floats and a row of a multi-dimensional array
// likewise. An engine is immutable and safe for concurrent use.
type FftComplex struct {
	nfft int
}

// NewFftComplex returns an engine for transforms of the specified length,
// which must be a valid complex transform length (see IsValidNfft).
func NewFftComplex(nfft int) (*FftComplex, error) {
	if !IsValidNfft(nfft) {
		return nil, errors.Wrapf(ErrInvalidLength, "nfft=%d", nfft)
	}
	return &FftComplex{nfft: nfft}, nil
}

// Nfft returns the transform length.
func (f *FftComplex) Nfft() int { return f.nfft }

// ComplexToComplex computes the 1D transform of cx into cy, both packed
// sequences of nfft complex values. cx and cy may be the same array for an
// in-place transform; when distinct, cx is left untouched.
func (f *FftComplex) ComplexToComplex(sign int, cx, cy []float64) error {
	if err := checkSign(sign); err != nil {
		return err
	}
	if err := checkSlice("cx", cx, 2*f.nfft); err != nil {
		return err
	}
	if err := checkSlice("cy", cy, 2*f.nfft); err != nil {
		return err
	}
	if &cx[0] != &cy[0] {
		copy(cy[:2*f.nfft], cx)
	}
	pfa.Transform(sign, f.nfft, cy)
	return nil
}

// ComplexToComplex1 transforms dimension 1 of the 2D array cx into cy:
// each of the n2 rows holds nfft packed complex values and is transformed
// independently. cx and cy may be the same array.
func (f *FftComplex) ComplexToComplex1(sign, n2 int, cx, cy [][]float64) error {
	if err := checkSign(sign); err != nil {
		return err
	}
	if err := checkDim("n2", n2); err != nil {
		return err
	}
	if err := checkRows("cx", cx, n2, 2*f.nfft); err != nil {
		return err
	}
	if err := checkRows("cy", cy, n2, 2*f.nfft); err != nil {
		return err
	}
	for i2 := 0; i2 < n2; i2++ {
		if &cx[i2][0] != &cy[i2][0] {
			copy(cy[i2][:2*f.nfft], cx[i2])
		}
		pfa.Transform(sign, f.nfft, cy[i2])
	}
	return nil
}

// ComplexToComplex2 transforms dimension 2 of the 2D array cx into cy: the
// array has nfft rows of n1 packed complex values, and the transform runs
// across rows for every lane at once. cx and cy may be the same array.
func (f *FftComplex) ComplexToComplex2(sign, n1 int, cx, cy [][]float64) error {
	if err := checkSign(sign); err != nil {
		return err
	}
	if err := checkDim("n1", n1); err != nil {
		return err
	}
	if err := checkRows("cx", cx, f.nfft, 2*n1); err != nil {
		return err
	}
	if err := checkRows("cy", cy, f.nfft, 2*n1); err != nil {
		return err
	}
	for i2 := 0; i2 < f.nfft; i2++ {
		if &cx[i2][0] != &cy[i2][0] {
			copy(cy[i2][:2*n1], cx[i2])
		}
	}
	pfa.TransformRows(sign, n1, f.nfft, cy)
	return nil
}

// ComplexToComplex31 transforms dimension 1 of the 3D array cx into cy:
// every row cx[i3][i2] holds nfft packed complex values. cx and cy may be
// the same array.
func (f *FftComplex) ComplexToComplex31(sign, n2, n3 int, cx, cy [][][]float64) error {
	if err := checkSign(sign); err != nil {
		return err
	}
	if err := checkDim("n2", n2); err != nil {
		return err
	}
	if err := checkDim("n3", n3); err != nil {
		return err
	}
	if err := checkPlanes("cx", cx, n3, n2, 2*f.nfft); err != nil {
		return err
	}
	if err := checkPlanes("cy", cy, n3, n2, 2*f.nfft); err != nil {
		return err
	}
	for i3 := 0; i3 < n3; i3++ {
		for i2 := 0; i2 < n2; i2++ {
			if &cx[i3][i2][0] != &cy[i3][i2][0] {
				copy(cy[i3][i2][:2*f.nfft], cx[i3][i2])
			}
			pfa.Transform(sign, f.nfft, cy[i3][i2])
		}
	}
	return nil
}

// ComplexToComplex32 transforms dimension 2 of the 3D array cx into cy:
// every plane cx[i3] has nfft rows of n1 packed complex values. cx and cy
// may be the same array.
func (f *FftComplex) ComplexToComplex32(sign, n1, n3 int, cx, cy [][][]float64) error {
	if err := checkSign(sign); err != nil {
		return err
	}
	if err := checkDim("n1", n1); err != nil {
		return err
	}
	if err := checkDim("n3", n3); err != nil {
		return err
	}
	if err := checkPlanes("cx", cx, n3, f.nfft, 2*n1); err != nil {
		return err
	}
	if err := checkPlanes("cy", cy, n3, f.nfft, 2*n1); err != nil {
		return err
	}
	for i3 := 0; i3 < n3; i3++ {
		for i2 := 0; i2 < f.nfft; i2++ {
			if &cx[i3][i2][0] != &cy[i3][i2][0] {
				copy(cy[i3][i2][:2*n1], cx[i3][i2])
			}
		}
		pfa.TransformRows(sign, n1, f.nfft, cy[i3])
	}
	return nil
}

// ComplexToComplex33 transforms dimension 3 of the 3D array cx into cy:
// the array has nfft planes of n2 rows of n1 packed complex values. cx and
// cy may be the same array.
func (f *FftComplex) ComplexToComplex33(sign, n1, n2 int, cx, cy [][][]float64) error {
	if err := checkSign(sign); err != nil {
		return err
	}
	if err := checkDim("n1", n1); err != nil {
		return err
	}
	if err := checkDim("n2", n2); err != nil {
		return err
	}
	if err := checkPlanes("cx", cx, f.nfft, n2, 2*n1); err != nil {
		return err
	}
	if err := checkPlanes("cy", cy, f.nfft, n2, 2*n1); err != nil {
		return err
	}
	for i3 := 0; i3 < f.nfft; i3++ {
		for i2 := 0; i2 < n2; i2++ {
			if &cx[i3][i2][0] != &cy[i3][i2][0] {
				copy(cy[i3][i2][:2*n1], cx[i3][i2])
			}
		}
	}
	// One transform per dimension-2 index, gathering the dimension-3 rows
	// of that index into a reusable row set.
	rows := make([][]float64, f.nfft)
	for i2 := 0; i2 < n2; i2++ {
		for i3 := 0; i3 < f.nfft; i3++ {
			rows[i3] = cy[i3][i2]
		}
		pfa.TransformRows(sign, n1, f.nfft, rows)
	}
	return nil
}

// Scale multiplies the first n1 packed complex values of cx by 1/nfft,
// completing an inverse transform of dimension 1.
func (f *FftComplex) Scale(n1 int, cx []float64) {
	floats.Scale(1/float64(f.nfft), cx[:2*n1])
}

// Scale2 multiplies the n1-by-n2 packed complex values of cx by 1/nfft.
func (f *FftComplex) Scale2(n1, n2 int, cx [][]float64) {
	for i2 := 0; i2 < n2; i2++ {
		f.Scale(n1, cx[i2])
	}
}

// Scale3 multiplies the n1-by-n2-by-n3 packed complex values of cx by
// 1/nfft.
func (f *FftComplex) Scale3(n1, n2, n3 int, cx [][][]float64) {
	for i3 := 0; i3 < n3; i3++ {
		f.Scale2(n1, n2, cx[i3])
	}
}

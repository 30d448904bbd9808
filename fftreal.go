package algopfa

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-pfa/internal/pfa"
)

// FftReal transforms real-valued arrays along one chosen dimension of
// length nfft, which must be even with a valid half-length (see
// IsValidNfftReal). A forward transform yields the nfft/2+1 packed complex
// values of the non-negative-frequency half of the Hermitian spectrum; the
// negative-frequency half is redundant for real input. Internally the
// engine runs a half-length complex transform and combines symmetric bin
// pairs, so a real transform costs roughly half its complex counterpart.
// An engine is immutable and safe for concurrent use.
type FftReal struct {
	nfft int
}

// NewFftReal returns an engine for transforms of the specified length,
// which must be a valid real transform length (see IsValidNfftReal).
func NewFftReal(nfft int) (*FftReal, error) {
	if !IsValidNfftReal(nfft) {
		return nil, errors.Wrapf(ErrInvalidLength, "nfft=%d", nfft)
	}
	return &FftReal{nfft: nfft}, nil
}

// Nfft returns the transform length.
func (f *FftReal) Nfft() int { return f.nfft }

// RealToComplex computes the forward transform of the nfft real values of
// rx into the nfft/2+1 packed complex values of cy, which therefore holds
// nfft+2 floats. The imaginary parts of the first and last bins are
// exactly zero. rx may be the same array as cy.
func (f *FftReal) RealToComplex(sign int, rx, cy []float64) error {
	if err := checkSign(sign); err != nil {
		return err
	}
	n := f.nfft
	if err := checkSlice("rx", rx, n); err != nil {
		return err
	}
	if err := checkSlice("cy", cy, n+2); err != nil {
		return err
	}
	// The half scale here cancels the doubling of the bin combination, so
	// the output is the exact unnormalized length-nfft spectrum.
	for i := 0; i < n; i++ {
		cy[i] = 0.5 * rx[i]
	}
	pfa.Transform(sign, n/2, cy)
	unpackHermitian(sign, n, cy)
	return nil
}

// ComplexToReal computes the inverse transform of the nfft/2+1 packed
// complex values of cx into the nfft real values of ry, treating cx as the
// non-negative-frequency half of a Hermitian spectrum. It inverts
// RealToComplex with the opposite sign up to a factor of nfft; Scale
// completes the inversion. cx may be the same array as ry.
func (f *FftReal) ComplexToReal(sign int, cx, ry []float64) error {
	if err := checkSign(sign); err != nil {
		return err
	}
	n := f.nfft
	if err := checkSlice("cx", cx, n+2); err != nil {
		return err
	}
	if err := checkSlice("ry", ry, n); err != nil {
		return err
	}
	packHermitian(sign, n, cx, ry)
	pfa.Transform(sign, n/2, ry)
	return nil
}

// RealToComplex1 transforms dimension 1 of the 2D array rx into cy: each
// of the n2 rows holds nfft real values in rx and nfft+2 floats in cy. rx
// may be the same array as cy.
func (f *FftReal) RealToComplex1(sign, n2 int, rx, cy [][]float64) error {
	if err := checkSign(sign); err != nil {
		return err
	}
	if err := checkDim("n2", n2); err != nil {
		return err
	}
	n := f.nfft
	if err := checkRows("rx", rx, n2, n); err != nil {
		return err
	}
	if err := checkRows("cy", cy, n2, n+2); err != nil {
		return err
	}
	for i2 := 0; i2 < n2; i2++ {
		row, src := cy[i2], rx[i2]
		for i1 := 0; i1 < n; i1++ {
			row[i1] = 0.5 * src[i1]
		}
		pfa.Transform(sign, n/2, row)
		unpackHermitian(sign, n, row)
	}
	return nil
}

// ComplexToReal1 transforms dimension 1 of the 2D array cx into ry,
// inverting RealToComplex1 up to a factor of nfft. cx may be the same
// array as ry.
func (f *FftReal) ComplexToReal1(sign, n2 int, cx, ry [][]float64) error {
	if err := checkSign(sign); err != nil {
		return err
	}
	if err := checkDim("n2", n2); err != nil {
		return err
	}
	n := f.nfft
	if err := checkRows("cx", cx, n2, n+2); err != nil {
		return err
	}
	if err := checkRows("ry", ry, n2, n); err != nil {
		return err
	}
	for i2 := 0; i2 < n2; i2++ {
		packHermitian(sign, n, cx[i2], ry[i2])
		pfa.Transform(sign, n/2, ry[i2])
	}
	return nil
}

// RealToComplex2 transforms dimension 2 of the 2D array rx into cy: rx has
// nfft rows of n1 real values, cy has nfft+2 rows of n1 floats, and column
// i1 of cy receives the spectrum of column i1 of rx. Adjacent cy rows 2j
// and 2j+1 hold the real and imaginary parts of complex sample j, which is
// the split-plane layout of the half-length kernel. rx may be the same
// array as cy.
func (f *FftReal) RealToComplex2(sign, n1 int, rx, cy [][]float64) error {
	if err := checkSign(sign); err != nil {
		return err
	}
	if err := checkDim("n1", n1); err != nil {
		return err
	}
	n := f.nfft
	if err := checkRows("rx", rx, n, n1); err != nil {
		return err
	}
	if err := checkRows("cy", cy, n+2, n1); err != nil {
		return err
	}
	for i2 := 0; i2 < n; i2++ {
		row, src := cy[i2], rx[i2]
		for i1 := 0; i1 < n1; i1++ {
			row[i1] = 0.5 * src[i1]
		}
	}
	re, im := splitRows(cy, n/2)
	pfa.TransformPlanes(sign, n1, n/2, re, im)

	for i1 := 0; i1 < n1; i1++ {
		d := cy[0][i1]
		q := cy[1][i1]
		cy[n][i1] = 2 * (d - q)
		cy[0][i1] = 2 * (d + q)
		cy[n+1][i1] = 0
		cy[1][i1] = 0
	}
	wr, wi, wpr, wpi := twiddleStart(sign, n)
	for jr, ji, kr, ki := 2, 3, n-2, n-1; jr <= kr; jr, ji, kr, ki = jr+2, ji+2, kr-2, ki-2 {
		rj, ij, rk, ik := cy[jr], cy[ji], cy[kr], cy[ki]
		for i1 := 0; i1 < n1; i1++ {
			sumr := rj[i1] + rk[i1]
			sumi := ij[i1] + ik[i1]
			difr := rj[i1] - rk[i1]
			difi := ij[i1] - ik[i1]
			tr := wi*difr + wr*sumi
			ti := wi*sumi - wr*difr
			rj[i1] = sumr + tr
			ij[i1] = difi + ti
			rk[i1] = sumr - tr
			ik[i1] = ti - difi
		}
		wr, wi = twiddleNext(wr, wi, wpr, wpi)
	}
	return nil
}

// ComplexToReal2 transforms dimension 2 of the 2D array cx into ry,
// inverting RealToComplex2 up to a factor of nfft. cx may be the same
// array as ry.
func (f *FftReal) ComplexToReal2(sign, n1 int, cx, ry [][]float64) error {
	if err := checkSign(sign); err != nil {
		return err
	}
	if err := checkDim("n1", n1); err != nil {
		return err
	}
	n := f.nfft
	if err := checkRows("cx", cx, n+2, n1); err != nil {
		return err
	}
	if err := checkRows("ry", ry, n, n1); err != nil {
		return err
	}
	for i1 := 0; i1 < n1; i1++ {
		d := cx[0][i1]
		ny := cx[n][i1]
		ry[0][i1] = d + ny
		ry[1][i1] = d - ny
	}
	wr, wi, wpr, wpi := twiddleStart(-sign, n)
	for jr, ji, kr, ki := 2, 3, n-2, n-1; jr <= kr; jr, ji, kr, ki = jr+2, ji+2, kr-2, ki-2 {
		rj, ij, rk, ik := cx[jr], cx[ji], cx[kr], cx[ki]
		oj, pj, ok, pk := ry[jr], ry[ji], ry[kr], ry[ki]
		for i1 := 0; i1 < n1; i1++ {
			sumr := rj[i1] + rk[i1]
			sumi := ij[i1] + ik[i1]
			difr := rj[i1] - rk[i1]
			difi := ij[i1] - ik[i1]
			tr := wr*sumi - wi*difr
			ti := wr*difr + wi*sumi
			oj[i1] = sumr - tr
			pj[i1] = difi + ti
			ok[i1] = sumr + tr
			pk[i1] = ti - difi
		}
		wr, wi = twiddleNext(wr, wi, wpr, wpi)
	}
	re, im := splitRows(ry, n/2)
	pfa.TransformPlanes(sign, n1, n/2, re, im)
	return nil
}

// Scale multiplies the first n1 real values of rx by 1/nfft, completing an
// inverse transform of dimension 1.
func (f *FftReal) Scale(n1 int, rx []float64) {
	floats.Scale(1/float64(f.nfft), rx[:n1])
}

// Scale2 multiplies the n1-by-n2 real values of rx by 1/nfft.
func (f *FftReal) Scale2(n1, n2 int, rx [][]float64) {
	for i2 := 0; i2 < n2; i2++ {
		f.Scale(n1, rx[i2])
	}
}

// unpackHermitian turns the half-length complex spectrum in cy[0:n] into
// the full Hermitian half-spectrum cy[0:n+2], combining symmetric bin
// pairs with an incrementally updated twiddle. Bin j of the final spectrum
// splits into the even-sample and odd-sample spectra as E_j + w^j*O_j with
// w = exp(sign*2*pi*i/n); the pair (Z_j, Z_{n/2-j}) of the half transform
// determines E_j and O_j through the Hermitian symmetry of real input.
func unpackHermitian(sign, n int, cy []float64) {
	cy[n] = 2 * (cy[0] - cy[1])
	cy[0] = 2 * (cy[0] + cy[1])
	cy[n+1] = 0
	cy[1] = 0
	wr, wi, wpr, wpi := twiddleStart(sign, n)
	for jr, ji, kr, ki := 2, 3, n-2, n-1; jr <= kr; jr, ji, kr, ki = jr+2, ji+2, kr-2, ki-2 {
		sumr := cy[jr] + cy[kr]
		sumi := cy[ji] + cy[ki]
		difr := cy[jr] - cy[kr]
		difi := cy[ji] - cy[ki]
		tr := wi*difr + wr*sumi
		ti := wi*sumi - wr*difr
		cy[jr] = sumr + tr
		cy[ji] = difi + ti
		cy[kr] = sumr - tr
		cy[ki] = ti - difi
		wr, wi = twiddleNext(wr, wi, wpr, wpi)
	}
}

// packHermitian reconstitutes a half-length complex buffer in ry[0:n] from
// the Hermitian half-spectrum in cx[0:n+2], the conjugate combination of
// unpackHermitian with no halving, so a forward/inverse round trip scales
// by n. The imaginary parts of the first and last bins of cx are ignored.
// Reads and writes pair up index by index, so cx may alias ry.
func packHermitian(sign, n int, cx, ry []float64) {
	d := cx[0]
	ny := cx[n]
	ry[0] = d + ny
	ry[1] = d - ny
	wr, wi, wpr, wpi := twiddleStart(-sign, n)
	for jr, ji, kr, ki := 2, 3, n-2, n-1; jr <= kr; jr, ji, kr, ki = jr+2, ji+2, kr-2, ki-2 {
		sumr := cx[jr] + cx[kr]
		sumi := cx[ji] + cx[ki]
		difr := cx[jr] - cx[kr]
		difi := cx[ji] - cx[ki]
		tr := wr*sumi - wi*difr
		ti := wr*difr + wi*sumi
		ry[jr] = sumr - tr
		ry[ji] = difi + ti
		ry[kr] = sumr + tr
		ry[ki] = ti - difi
		wr, wi = twiddleNext(wr, wi, wpr, wpi)
	}
}

// twiddleStart returns the first twiddle (wr, wi) = exp(i*theta) for
// theta = sign*2*pi/n together with its angle-addition increments.
func twiddleStart(sign, n int) (wr, wi, wpr, wpi float64) {
	theta := 2 * math.Pi / float64(n)
	if sign < 0 {
		theta = -theta
	}
	wt := math.Sin(0.5 * theta)
	wpr = -2 * wt * wt
	wpi = math.Sin(theta)
	return 1 + wpr, wpi, wpr, wpi
}

// twiddleNext advances (wr, wi) by the angle-addition recurrence rather
// than fresh trig calls.
func twiddleNext(wr, wi, wpr, wpi float64) (float64, float64) {
	wt := wr
	wr += wr*wpr - wi*wpi
	wi += wi*wpr + wt*wpi
	return wr, wi
}

// splitRows views the interleaved rows of a packed 2D array as the split
// real and imaginary planes of a half-length complex array.
func splitRows(z [][]float64, n int) (re, im [][]float64) {
	re = make([][]float64, n)
	im = make([][]float64, n)
	for j := 0; j < n; j++ {
		re[j] = z[2*j]
		im[j] = z[2*j+1]
	}
	return re, im
}

// Package algopfa provides fast Fourier transforms of complex- and
// real-valued multi-dimensional arrays, built on a mixed-radix
// prime-factor kernel.
//
// Valid transform lengths are products of pairwise-coprime factors drawn
// from {2,3,4,5,7,8,9,11,13,16}; use IsValidNfft, SmallNfft and FastNfft
// (or their Real variants) to choose one, pad the data to that length, and
// construct an FftComplex or FftReal engine for it.
//
// Complex values are packed as adjacent (real, imaginary) float64 pairs.
// Transforms are unnormalized: a forward transform with sign -1 computes
// sum x_l*exp(-2*pi*i*k*l/nfft), sign +1 the conjugate exponent, and a
// forward/inverse round trip multiplies the data by nfft; the Scale
// methods complete an inverse. Engines are immutable after construction
// and safe for concurrent use, since transforms mutate only the
// caller-supplied arrays.
package algopfa

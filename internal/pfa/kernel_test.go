package pfa

import (
	"math"
	"math/rand"
	"testing"
)

// naiveDFT computes the unnormalized transform by direct summation, the
// O(n*n) oracle the kernel is checked against.
func naiveDFT(sign, n int, z []float64) []float64 {
	out := make([]float64, 2*n)
	for k := 0; k < n; k++ {
		var sr, si float64
		for l := 0; l < n; l++ {
			arg := float64(sign) * 2 * math.Pi * float64(k*l%n) / float64(n)
			c, s := math.Cos(arg), math.Sin(arg)
			sr += z[2*l]*c - z[2*l+1]*s
			si += z[2*l]*s + z[2*l+1]*c
		}
		out[2*k] = sr
		out[2*k+1] = si
	}
	return out
}

func randomComplex(rng *rand.Rand, n int) []float64 {
	z := make([]float64, 2*n)
	for i := range z {
		z[i] = 2*rng.Float64() - 1
	}
	return z
}

func maxAbsDiff(a, b []float64) float64 {
	var d float64
	for i := range a {
		if e := math.Abs(a[i] - b[i]); e > d {
			d = e
		}
	}
	return d
}

// oracleLengths returns every valid length up to the limit plus a few
// larger ones exercising the bigger factor combinations.
func oracleLengths(limit int) []int {
	var ns []int
	for _, n := range nfftTable {
		if n <= limit {
			ns = append(ns, n)
		}
	}
	return append(ns, 2288, 3640)
}

func TestTransformMatchesNaiveDFT(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(1))
	for _, n := range oracleLengths(1008) {
		for _, sign := range []int{1, -1} {
			z := randomComplex(rng, n)
			want := naiveDFT(sign, n, z)
			got := append([]float64(nil), z...)
			Transform(sign, n, got)
			tol := 1e-11 * float64(n)
			if d := maxAbsDiff(got, want); d > tol {
				t.Errorf("n=%d sign=%d: max deviation %g from direct summation, tolerance %g", n, sign, d, tol)
			}
		}
	}
}

func TestTransformImpulse(t *testing.T) {
	t.Parallel()
	// An impulse at sample 1 transforms to pure phasors: bin k of the
	// sign -1 transform is exp(-2*pi*i*k/n).
	for _, n := range []int{4, 6, 60, 77, 1008} {
		z := make([]float64, 2*n)
		z[2] = 1
		Transform(-1, n, z)
		tol := 1e-12 * float64(n)
		for k := 0; k < n; k++ {
			arg := -2 * math.Pi * float64(k) / float64(n)
			if er := math.Abs(z[2*k] - math.Cos(arg)); er > tol {
				t.Fatalf("n=%d bin %d: real %g, want %g", n, k, z[2*k], math.Cos(arg))
			}
			if ei := math.Abs(z[2*k+1] - math.Sin(arg)); ei > tol {
				t.Fatalf("n=%d bin %d: imag %g, want %g", n, k, z[2*k+1], math.Sin(arg))
			}
		}
	}
}

func TestTransformRoundTrip(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(2))
	var ns []int
	for _, n := range nfftTable {
		if n <= 10010 {
			ns = append(ns, n)
		}
	}
	ns = append(ns, MaxNfft)
	for _, n := range ns {
		z := randomComplex(rng, n)
		got := append([]float64(nil), z...)
		Transform(-1, n, got)
		Transform(1, n, got)
		for i := range got {
			got[i] /= float64(n)
		}
		tol := 1e-13 * math.Sqrt(float64(n))
		if d := maxAbsDiff(got, z); d > tol {
			t.Errorf("n=%d: forward/inverse round trip deviates by %g, tolerance %g", n, d, tol)
		}
	}
}

func TestTransformLengthOne(t *testing.T) {
	t.Parallel()
	z := []float64{3, -4}
	Transform(-1, 1, z)
	if z[0] != 3 || z[1] != -4 {
		t.Fatalf("length-1 transform is not the identity: %v", z)
	}
}

func TestLayoutsAgree(t *testing.T) {
	t.Parallel()
	const n, n1 = 60, 7
	rng := rand.New(rand.NewSource(3))

	rows := make([][]float64, n)
	for j := range rows {
		rows[j] = randomComplex(rng, n1)
	}

	// Reference: transform each lane through the packed layout.
	want := make([][]float64, n1)
	for l := 0; l < n1; l++ {
		z := make([]float64, 2*n)
		for j := 0; j < n; j++ {
			z[2*j] = rows[j][2*l]
			z[2*j+1] = rows[j][2*l+1]
		}
		Transform(-1, n, z)
		want[l] = z
	}

	got := make([][]float64, n)
	re := make([][]float64, n)
	im := make([][]float64, n)
	for j := range rows {
		got[j] = append([]float64(nil), rows[j]...)
		re[j] = make([]float64, n1)
		im[j] = make([]float64, n1)
		for l := 0; l < n1; l++ {
			re[j][l] = rows[j][2*l]
			im[j][l] = rows[j][2*l+1]
		}
	}
	TransformRows(-1, n1, n, got)
	TransformPlanes(-1, n1, n, re, im)

	const tol = 1e-12
	for j := 0; j < n; j++ {
		for l := 0; l < n1; l++ {
			wr, wi := want[l][2*j], want[l][2*j+1]
			if math.Abs(got[j][2*l]-wr) > tol || math.Abs(got[j][2*l+1]-wi) > tol {
				t.Fatalf("row layout sample %d lane %d: got (%g,%g), want (%g,%g)",
					j, l, got[j][2*l], got[j][2*l+1], wr, wi)
			}
			if math.Abs(re[j][l]-wr) > tol || math.Abs(im[j][l]-wi) > tol {
				t.Fatalf("plane layout sample %d lane %d: got (%g,%g), want (%g,%g)",
					j, l, re[j][l], im[j][l], wr, wi)
			}
		}
	}
}

func BenchmarkTransform1008(b *testing.B) { benchmarkTransform(b, 1008) }
func BenchmarkTransform720720(b *testing.B) { benchmarkTransform(b, MaxNfft) }

func benchmarkTransform(b *testing.B, n int) {
	rng := rand.New(rand.NewSource(4))
	z := randomComplex(rng, n)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Transform(-1, n, z)
	}
}

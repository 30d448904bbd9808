package pfa

// An axisView addresses the complex samples along the axis being
// transformed. Position j on the axis is a vector of width() independent
// complex values, one per batched lane, with real parts in the first slice
// returned by lane and imaginary parts in the second, consecutive lanes
// stride() elements apart. The butterflies are written once against this
// abstraction; the concrete views below supply the packed, row-batched and
// split-plane addressing, so every layout shares identical arithmetic.
type axisView interface {
	lane(j int) (re, im []float64)
	width() int
	stride() int
}

// packed views a single interleaved complex sequence: sample j occupies
// z[2j] and z[2j+1].
type packed struct {
	z []float64
}

func (v packed) lane(j int) (re, im []float64) {
	q := v.z[2*j:]
	return q, q[1:]
}

func (v packed) width() int  { return 1 }
func (v packed) stride() int { return 0 }

// rowPairs views one packed complex row per axis position: lane l of sample
// j occupies z[j][2l] and z[j][2l+1].
type rowPairs struct {
	z  [][]float64
	n1 int
}

func (v rowPairs) lane(j int) (re, im []float64) {
	return v.z[j], v.z[j][1:]
}

func (v rowPairs) width() int  { return v.n1 }
func (v rowPairs) stride() int { return 2 }

// splitPlanes views separated real and imaginary rows: lane l of sample j
// occupies re[j][l] and im[j][l].
type splitPlanes struct {
	re, im [][]float64
	n1     int
}

func (v splitPlanes) lane(j int) (re, im []float64) {
	return v.re[j], v.im[j]
}

func (v splitPlanes) width() int  { return v.n1 }
func (v splitPlanes) stride() int { return 1 }

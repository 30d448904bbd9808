package pfa

// Per-factor butterfly stages. Each routine runs m groups; a group gathers
// ifac complex samples at the current start offsets, replaces them with
// their ifac-point DFT rotated by mu, and then rotates the offsets: the
// last advances past the previous first, every other steps up by one. The
// rotation keeps all offsets inside [0, n) and makes the transform
// self-sorting, so no separate permutation pass is needed.
//
// Radix 2/3/4/5 are specialized with closed-form constants; the remaining
// factors go through the table-driven symmetric cores below.

func radix2[V axisView](v V, m, j0, j1 int) {
	w, s := v.width(), v.stride()
	for i := 0; i < m; i++ {
		r0, i0 := v.lane(j0)
		r1, i1 := v.lane(j1)
		for l, x := 0, 0; l < w; l, x = l+1, x+s {
			t1r := r0[x] - r1[x]
			t1i := i0[x] - i1[x]
			r0[x] += r1[x]
			i0[x] += i1[x]
			r1[x] = t1r
			i1[x] = t1i
		}
		j0, j1 = j1+1, j0+1
	}
}

func radix3[V axisView](v V, m, j0, j1, j2, mu int) {
	c1 := coef3[mu]
	w, s := v.width(), v.stride()
	for i := 0; i < m; i++ {
		r0, i0 := v.lane(j0)
		r1, i1 := v.lane(j1)
		r2, i2 := v.lane(j2)
		for l, x := 0, 0; l < w; l, x = l+1, x+s {
			t1r := r1[x] + r2[x]
			t1i := i1[x] + i2[x]
			y1r := r0[x] - 0.5*t1r
			y1i := i0[x] - 0.5*t1i
			y2r := c1 * (r1[x] - r2[x])
			y2i := c1 * (i1[x] - i2[x])
			r0[x] += t1r
			i0[x] += t1i
			r1[x] = y1r - y2i
			i1[x] = y1i + y2r
			r2[x] = y1r + y2i
			i2[x] = y1i - y2r
		}
		j0, j1, j2 = j2+1, j0+1, j1+1
	}
}

func radix4[V axisView](v V, m, j0, j1, j2, j3, mu int) {
	c1 := coef4[mu]
	w, s := v.width(), v.stride()
	for i := 0; i < m; i++ {
		r0, i0 := v.lane(j0)
		r1, i1 := v.lane(j1)
		r2, i2 := v.lane(j2)
		r3, i3 := v.lane(j3)
		for l, x := 0, 0; l < w; l, x = l+1, x+s {
			t1r := r0[x] + r2[x]
			t1i := i0[x] + i2[x]
			t2r := r1[x] + r3[x]
			t2i := i1[x] + i3[x]
			y1r := r0[x] - r2[x]
			y1i := i0[x] - i2[x]
			y3r := c1 * (r1[x] - r3[x])
			y3i := c1 * (i1[x] - i3[x])
			r0[x] = t1r + t2r
			i0[x] = t1i + t2i
			r1[x] = y1r - y3i
			i1[x] = y1i + y3r
			r2[x] = t1r - t2r
			i2[x] = t1i - t2i
			r3[x] = y1r + y3i
			i3[x] = y1i - y3r
		}
		j0, j1, j2, j3 = j3+1, j0+1, j1+1, j2+1
	}
}

func radix5[V axisView](v V, m, j0, j1, j2, j3, j4, mu int) {
	c1, c2, c3 := coef5[mu][0], coef5[mu][1], coef5[mu][2]
	w, s := v.width(), v.stride()
	for i := 0; i < m; i++ {
		r0, i0 := v.lane(j0)
		r1, i1 := v.lane(j1)
		r2, i2 := v.lane(j2)
		r3, i3 := v.lane(j3)
		r4, i4 := v.lane(j4)
		for l, x := 0, 0; l < w; l, x = l+1, x+s {
			t1r := r1[x] + r4[x]
			t1i := i1[x] + i4[x]
			t2r := r2[x] + r3[x]
			t2i := i2[x] + i3[x]
			t3r := r1[x] - r4[x]
			t3i := i1[x] - i4[x]
			t4r := r2[x] - r3[x]
			t4i := i2[x] - i3[x]
			t5r := t1r + t2r
			t5i := t1i + t2i
			t6r := c1 * (t1r - t2r)
			t6i := c1 * (t1i - t2i)
			t7r := r0[x] - 0.25*t5r
			t7i := i0[x] - 0.25*t5i
			y1r := t7r + t6r
			y1i := t7i + t6i
			y2r := t7r - t6r
			y2i := t7i - t6i
			y3r := c3*t3r - c2*t4r
			y3i := c3*t3i - c2*t4i
			y4r := c2*t3r + c3*t4r
			y4i := c2*t3i + c3*t4i
			r0[x] += t5r
			i0[x] += t5i
			r1[x] = y1r - y4i
			i1[x] = y1i + y4r
			r2[x] = y2r - y3i
			i2[x] = y2i + y3r
			r3[x] = y2r + y3i
			i3[x] = y2i - y3r
			r4[x] = y1r + y4i
			i4[x] = y1i - y4r
		}
		j0, j1, j2, j3, j4 = j4+1, j0+1, j1+1, j2+1, j3+1
	}
}

// radixOdd handles the table-driven odd factors {7, 9, 11, 13} through the
// symmetric form of the rotated p-point DFT: inputs combine into h sums
// t and h differences u, output pair (k, p-k) is a_k -/+ i*b_k with
// a_k = z0 + sum_l cos(2*pi*mu*k*l/p)*t_l and
// b_k =      sum_l sin(2*pi*mu*k*l/p)*u_l.
func radixOdd[V axisView](v V, m, p int, j *[16]int, tb *genTable) {
	h := tb.h
	w, s := v.width(), v.stride()
	var re, im [13][]float64
	for i := 0; i < m; i++ {
		for q := 0; q < p; q++ {
			re[q], im[q] = v.lane(j[q])
		}
		for l, x := 0, 0; l < w; l, x = l+1, x+s {
			var tr, ti, ur, ui [6]float64
			for q := 1; q <= h; q++ {
				tr[q-1] = re[q][x] + re[p-q][x]
				ti[q-1] = im[q][x] + im[p-q][x]
				ur[q-1] = re[q][x] - re[p-q][x]
				ui[q-1] = im[q][x] - im[p-q][x]
			}
			z0r, z0i := re[0][x], im[0][x]
			y0r, y0i := z0r, z0i
			for q := 0; q < h; q++ {
				y0r += tr[q]
				y0i += ti[q]
			}
			for k := 1; k <= h; k++ {
				ck := &tb.cos[k-1]
				sk := &tb.sin[k-1]
				ar, ai := z0r, z0i
				br, bi := 0.0, 0.0
				for q := 0; q < h; q++ {
					ar += ck[q] * tr[q]
					ai += ck[q] * ti[q]
					br += sk[q] * ur[q]
					bi += sk[q] * ui[q]
				}
				re[k][x] = ar - bi
				im[k][x] = ai + br
				re[p-k][x] = ar + bi
				im[p-k][x] = ai - br
			}
			re[0][x] = y0r
			im[0][x] = y0i
		}
		jt := j[p-1] + 1
		for q := p - 1; q > 0; q-- {
			j[q] = j[q-1] + 1
		}
		j[0] = jt
	}
}

// radixEven handles the table-driven even factors {8, 16}: the symmetric
// pairs exactly as in radixOdd, plus the middle element p/2 whose
// coefficients reduce to +/-1 because mu is odd.
func radixEven[V axisView](v V, m, p int, j *[16]int, tb *genTable) {
	h := tb.h
	half := p / 2
	w, s := v.width(), v.stride()
	var re, im [16][]float64
	for i := 0; i < m; i++ {
		for q := 0; q < p; q++ {
			re[q], im[q] = v.lane(j[q])
		}
		for l, x := 0, 0; l < w; l, x = l+1, x+s {
			var tr, ti, ur, ui [7]float64
			for q := 1; q <= h; q++ {
				tr[q-1] = re[q][x] + re[p-q][x]
				ti[q-1] = im[q][x] + im[p-q][x]
				ur[q-1] = re[q][x] - re[p-q][x]
				ui[q-1] = im[q][x] - im[p-q][x]
			}
			z0r, z0i := re[0][x], im[0][x]
			zmr, zmi := re[half][x], im[half][x]
			y0r, y0i := z0r+zmr, z0i+zmi
			ymr, ymi := z0r+zmr, z0i+zmi
			for q := 1; q <= h; q++ {
				y0r += tr[q-1]
				y0i += ti[q-1]
				if q&1 == 1 {
					ymr -= tr[q-1]
					ymi -= ti[q-1]
				} else {
					ymr += tr[q-1]
					ymi += ti[q-1]
				}
			}
			for k := 1; k <= h; k++ {
				ck := &tb.cos[k-1]
				sk := &tb.sin[k-1]
				ar, ai := z0r, z0i
				if k&1 == 1 {
					ar -= zmr
					ai -= zmi
				} else {
					ar += zmr
					ai += zmi
				}
				br, bi := 0.0, 0.0
				for q := 0; q < h; q++ {
					ar += ck[q] * tr[q]
					ai += ck[q] * ti[q]
					br += sk[q] * ur[q]
					bi += sk[q] * ui[q]
				}
				re[k][x] = ar - bi
				im[k][x] = ai + br
				re[p-k][x] = ar + bi
				im[p-k][x] = ai - br
			}
			re[0][x] = y0r
			im[0][x] = y0i
			re[half][x] = ymr
			im[half][x] = ymi
		}
		jt := j[p-1] + 1
		for q := p - 1; q > 0; q-- {
			j[q] = j[q-1] + 1
		}
		j[0] = jt
	}
}

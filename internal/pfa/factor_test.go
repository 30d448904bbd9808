package pfa

import "testing"

func TestDecompose(t *testing.T) {
	t.Parallel()
	tests := []struct {
		n    int
		want []int
		ok   bool
	}{
		{1, []int{}, true},
		{2, []int{2}, true},
		{6, []int{3, 2}, true},
		{12, []int{4, 3}, true},
		{16, []int{16}, true},
		{280, []int{8, 7, 5}, true},
		{720720, []int{16, 13, 11, 9, 7, 5}, true},
		{32, []int{16}, false},  // 16*2 is not coprime
		{49, []int{7}, false},   // 7*7 is not coprime
		{17, []int{}, false},    // prime outside the factor set
	}
	for _, tt := range tests {
		var fs [maxFactors]int
		cnt, ok := decompose(tt.n, &fs)
		if ok != tt.ok {
			t.Errorf("decompose(%d): complete=%v, want %v", tt.n, ok, tt.ok)
			continue
		}
		if cnt != len(tt.want) {
			t.Errorf("decompose(%d): %d factors %v, want %v", tt.n, cnt, fs[:cnt], tt.want)
			continue
		}
		for i, f := range tt.want {
			if fs[i] != f {
				t.Errorf("decompose(%d): factors %v, want %v", tt.n, fs[:cnt], tt.want)
				break
			}
		}
	}
}

func TestRotation(t *testing.T) {
	t.Parallel()
	// For every factor and coprime group count, the stride must be the
	// smallest multiple of m congruent to 1 modulo the factor, and a
	// negative sign reflects only the coefficient index.
	for _, ifac := range factors {
		for m := 1; m < 50; m++ {
			if gcd(m, ifac) != 1 {
				continue
			}
			muPos, mm := rotation(1, ifac, m)
			if mm%ifac != 1 {
				t.Fatalf("rotation(1,%d,%d): stride %d is not 1 mod %d", ifac, m, mm, ifac)
			}
			if mm%m != 0 || mm >= ifac*m {
				t.Fatalf("rotation(1,%d,%d): stride %d out of range", ifac, m, mm)
			}
			if muPos < 1 || muPos >= ifac || muPos*m != mm {
				t.Fatalf("rotation(1,%d,%d): mu=%d does not generate stride %d", ifac, m, muPos, mm)
			}
			muNeg, mmNeg := rotation(-1, ifac, m)
			if mmNeg != mm {
				t.Fatalf("rotation(-1,%d,%d): stride %d differs from positive-sign stride %d", ifac, m, mmNeg, mm)
			}
			if muNeg != ifac-muPos {
				t.Fatalf("rotation(-1,%d,%d): mu=%d, want %d", ifac, m, muNeg, ifac-muPos)
			}
		}
	}
}

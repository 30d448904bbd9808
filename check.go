package algopfa

import "github.com/pkg/errors"

// Precondition helpers. All transform entry points validate with these
// before touching any array element.

func checkSign(sign int) error {
	if sign != 1 && sign != -1 {
		return errors.Wrapf(ErrInvalidSign, "sign=%d", sign)
	}
	return nil
}

func checkDim(name string, n int) error {
	if n < 1 {
		return errors.Wrapf(ErrLengthMismatch, "%s=%d, must be positive", name, n)
	}
	return nil
}

func checkSlice(name string, s []float64, want int) error {
	if s == nil {
		return errors.Wrap(ErrNilSlice, name)
	}
	if len(s) < want {
		return errors.Wrapf(ErrLengthMismatch, "%s holds %d values, need %d", name, len(s), want)
	}
	return nil
}

func checkRows(name string, s [][]float64, rows, rowLen int) error {
	if s == nil {
		return errors.Wrap(ErrNilSlice, name)
	}
	if len(s) < rows {
		return errors.Wrapf(ErrLengthMismatch, "%s holds %d rows, need %d", name, len(s), rows)
	}
	for i := 0; i < rows; i++ {
		if err := checkSlice(name, s[i], rowLen); err != nil {
			return err
		}
	}
	return nil
}

func checkPlanes(name string, s [][][]float64, planes, rows, rowLen int) error {
	if s == nil {
		return errors.Wrap(ErrNilSlice, name)
	}
	if len(s) < planes {
		return errors.Wrapf(ErrLengthMismatch, "%s holds %d planes, need %d", name, len(s), planes)
	}
	for i := 0; i < planes; i++ {
		if err := checkRows(name, s[i], rows, rowLen); err != nil {
			return err
		}
	}
	return nil
}

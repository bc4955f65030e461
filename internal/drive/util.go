package drive

import "gonum.org/v1/gonum/mat"

// newDense is a tiny convenience wrapper so the constructors below can
// write their matrices as flat literals instead of Set-ing each element.
func newDense(r, c int, data []float64) *mat.Dense {
	return mat.NewDense(r, c, data)
}

package drive

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// singularValueTolerance below which a singular value is treated as zero
// when building the Moore-Penrose pseudo-inverse. Chosen relative to the
// largest singular value rather than as an absolute constant, since the
// matrices here are built from physical quantities (meters, radians,
// volts) spanning widely different magnitudes.
const singularValueTolerance = 1e-10

// PseudoInverse returns the Moore-Penrose pseudo-inverse of a via its
// singular value decomposition, for over-actuated drives whose
// voltsFromBotAccel matrix (n x 3, n > 3) has no ordinary inverse.
func PseudoInverse(a *mat.Dense) (*mat.Dense, error) {
	var svd mat.SVD
	ok := svd.Factorize(a, mat.SVDThin)
	if !ok {
		return nil, fmt.Errorf("drive: SVD factorization failed")
	}

	values := svd.Values(nil)
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	tol := singularValueTolerance
	if len(values) > 0 {
		tol *= values[0]
	}

	sInvData := make([]float64, len(values))
	for i, sv := range values {
		if sv > tol {
			sInvData[i] = 1 / sv
		}
	}
	sInv := mat.NewDiagDense(len(values), sInvData)

	// pinv(a) = V * Sigma^+ * U^T
	var vs mat.Dense
	vs.Mul(&v, sInv)
	var out mat.Dense
	out.Mul(&vs, u.T())
	return &out, nil
}

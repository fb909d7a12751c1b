// Package tensor provides the dense matrix helpers used by the layers.
//
// Tensors are plain gonum matrices laid out as [batch, features]. This package
// only adds the few row-oriented operations that gonum/mat does not offer
// directly: bias broadcasting, batch reductions and seeded initialization.
//
// Shape errors are reported the way gonum reports them: by panicking with
// mat.ErrShape.
package tensor

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Zeros creates a rows x cols matrix filled with zeros.
func Zeros(rows, cols int) *mat.Dense {
	return mat.NewDense(rows, cols, nil)
}

// Full creates a rows x cols matrix filled with value.
func Full(rows, cols int, value float64) *mat.Dense {
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = value
	}
	return mat.NewDense(rows, cols, data)
}

// Randn creates a rows x cols matrix with values drawn from N(0, std²).
//
// When rng is nil the global math/rand/v2 source is used, so results are not
// reproducible. Pass a seeded generator to get deterministic weights:
//
//	rng := rand.New(rand.NewPCG(42, 0))
//	w := tensor.Randn(2, 3, 0.01, rng)
func Randn(rows, cols int, std float64, rng *rand.Rand) *mat.Dense {
	data := make([]float64, rows*cols)
	for i := range data {
		if rng != nil {
			data[i] = rng.NormFloat64() * std
		} else {
			data[i] = rand.NormFloat64() * std
		}
	}
	return mat.NewDense(rows, cols, data)
}

// Clone returns a dense copy of m that shares no storage with it.
func Clone(m mat.Matrix) *mat.Dense {
	return mat.DenseCopyOf(m)
}

// AddRow adds row to every row of dst in place.
//
// This is the bias broadcast of a fully connected layer: dst is
// [batch, features] and row has length features.
func AddRow(dst *mat.Dense, row []float64) {
	r, c := dst.Dims()
	if len(row) != c {
		panic(mat.ErrShape)
	}
	for i := 0; i < r; i++ {
		floats.Add(dst.RawRowView(i), row)
	}
}

// SumRows reduces m over its rows (the batch axis) and stores the per-column
// totals in dst, which must have one entry per column of m.
func SumRows(dst []float64, m *mat.Dense) {
	r, c := m.Dims()
	if len(dst) != c {
		panic(mat.ErrShape)
	}
	for j := range dst {
		dst[j] = 0
	}
	for i := 0; i < r; i++ {
		floats.Add(dst, m.RawRowView(i))
	}
}

// MaskWhere returns a copy of src where every entry whose matching entry in
// cond satisfies drop is set to zero. src and cond must have the same shape.
func MaskWhere(src, cond mat.Matrix, drop func(float64) bool) *mat.Dense {
	r, c := src.Dims()
	cr, cc := cond.Dims()
	if r != cr || c != cc {
		panic(mat.ErrShape)
	}
	out := mat.DenseCopyOf(src)
	out.Apply(func(i, j int, v float64) float64 {
		if drop(cond.At(i, j)) {
			return 0
		}
		return v
	}, out)
	return out
}

// SpectralNorm returns the matrix 2-norm of m: its largest singular value.
//
// gonum's mat.Norm(m, 2) is the Frobenius norm, so the value is taken from an
// SVD instead. A failed factorization yields NaN.
func SpectralNorm(m mat.Matrix) float64 {
	var svd mat.SVD
	if !svd.Factorize(m, mat.SVDNone) {
		return math.NaN()
	}
	values := svd.Values(nil)
	if len(values) == 0 {
		return 0
	}
	return floats.Max(values)
}

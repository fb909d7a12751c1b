package nn

import (
	"math/rand/v2"

	"github.com/born-ml/backprop/internal/tensor"
	"gonum.org/v1/gonum/mat"
)

// Normal initialization for weights.
//
// Initializes weights with values drawn from N(0, std²). A nil rng uses the
// global random source.
func Normal(rows, cols int, std float64, rng *rand.Rand) *mat.Dense {
	return tensor.Randn(rows, cols, std, rng)
}

// Zeros creates a matrix filled with zeros.
//
// This is used for bias initialization.
func Zeros(rows, cols int) *mat.Dense {
	return tensor.Zeros(rows, cols)
}

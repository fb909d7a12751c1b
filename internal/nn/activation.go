package nn

import (
	"fmt"
	"math"

	"github.com/born-ml/backprop/internal/tensor"
	"gonum.org/v1/gonum/mat"
)

// ReLU is a Rectified Linear Unit activation layer.
//
// Applies the element-wise function: f(x) = max(0, x)
//
// The sub-gradient at x == 0 is taken as 0.
//
// Example:
//
//	relu := nn.NewReLU("relu1")
//	output := relu.Forward(input)  // All negative values become 0
type ReLU struct {
	base
}

// NewReLU creates a new ReLU activation layer.
func NewReLU(name string) *ReLU {
	return &ReLU{base: base{name: name}}
}

// Forward applies ReLU activation and caches the input.
func (r *ReLU) Forward(input mat.Matrix) *mat.Dense {
	x := tensor.Clone(input)
	r.saveForBackward(x)

	out := mat.DenseCopyOf(x)
	out.Apply(func(_, _ int, v float64) float64 {
		return math.Max(v, 0)
	}, out)
	return out
}

// Backward returns gradOutput with the entries zeroed where the cached input
// was <= 0. gradOutput itself is left untouched.
func (r *ReLU) Backward(gradOutput mat.Matrix) *mat.Dense {
	x := r.savedTensor("ReLU")
	return tensor.MaskWhere(gradOutput, x, func(v float64) bool { return v <= 0 })
}

func (r *ReLU) String() string {
	return fmt.Sprintf("Relu: %s", r.name)
}

// Sigmoid is a sigmoid activation layer.
//
// Applies the element-wise function: σ(x) = 1 / (1 + exp(-x))
//
// The output is cached instead of the input, so Backward computes
// σ'(x) = σ(x) * (1 - σ(x)) without another exp.
type Sigmoid struct {
	base
}

// NewSigmoid creates a new Sigmoid activation layer.
func NewSigmoid(name string) *Sigmoid {
	return &Sigmoid{base: base{name: name}}
}

// Forward applies Sigmoid activation: σ(x) = 1 / (1 + exp(-x)).
func (s *Sigmoid) Forward(input mat.Matrix) *mat.Dense {
	out := mat.DenseCopyOf(input)
	out.Apply(func(_, _ int, v float64) float64 {
		return sigmoid(v)
	}, out)
	s.saveForBackward(out)
	return mat.DenseCopyOf(out)
}

// Backward returns gradOutput * s * (1 - s) for the cached output s.
func (s *Sigmoid) Backward(gradOutput mat.Matrix) *mat.Dense {
	saved := s.savedTensor("Sigmoid")
	deriv := mat.DenseCopyOf(saved)
	deriv.Apply(func(_, _ int, v float64) float64 {
		return v * (1 - v)
	}, deriv)

	var grad mat.Dense
	grad.MulElem(gradOutput, deriv)
	return &grad
}

func (s *Sigmoid) String() string {
	return fmt.Sprintf("Sigmoid: %s", s.name)
}

// sigmoid evaluates the logistic function without overflowing exp for
// large negative inputs.
func sigmoid(x float64) float64 {
	if x >= 0 {
		return 1 / (1 + math.Exp(-x))
	}
	e := math.Exp(x)
	return e / (1 + e)
}

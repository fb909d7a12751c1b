package nn

import (
	"github.com/born-ml/backprop/internal/optim"
	"gonum.org/v1/gonum/mat"
)

// Parameter represents a trainable matrix of a layer.
//
// Besides the value it owns two buffers of the same shape:
//   - grad: the gradient from the most recent Backward. It is overwritten,
//     not accumulated.
//   - diff: the momentum buffer. It starts at zero and lives as long as the
//     parameter, updated in place by every Step.
//
// Example:
//
//	w := layer.Weight()
//	rows, cols := w.Value().Dims()
//	fmt.Println(w.Name(), rows, cols)
type Parameter struct {
	name  string
	value *mat.Dense
	grad  *mat.Dense
	diff  *mat.Dense
}

// NewParameter creates a parameter around an initialized value.
//
// The gradient and momentum buffers are allocated with zeros.
func NewParameter(name string, value *mat.Dense) *Parameter {
	r, c := value.Dims()
	return &Parameter{
		name:  name,
		value: value,
		grad:  mat.NewDense(r, c, nil),
		diff:  mat.NewDense(r, c, nil),
	}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Value returns the parameter matrix. Changes to it are seen by the layer.
func (p *Parameter) Value() *mat.Dense {
	return p.value
}

// Grad returns the gradient from the most recent backward pass.
func (p *Parameter) Grad() *mat.Dense {
	return p.grad
}

// Diff returns the momentum buffer.
func (p *Parameter) Diff() *mat.Dense {
	return p.diff
}

// Step applies the momentum update rule to the value, see optim.MomentumStep.
func (p *Parameter) Step(cfg optim.Config) {
	optim.MomentumStep(p.value, p.grad, p.diff, cfg)
}

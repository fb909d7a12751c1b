package nn

import (
	"fmt"
	"math/rand/v2"

	"github.com/born-ml/backprop/internal/optim"
	"github.com/born-ml/backprop/internal/tensor"
	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"k8s.io/klog/v2"
)

// Linear implements a fully connected (dense) layer.
//
// Performs the transformation: y = x @ W + b
// where:
//   - x is the input with shape [batch_size, in_features]
//   - W is the weight matrix with shape [in_features, out_features]
//   - b is the bias with shape [1, out_features], broadcast over the batch
//   - y is the output with shape [batch_size, out_features]
//
// Weights are drawn from N(0, init_std²). Biases are initialized to zeros.
//
// Example:
//
//	rng := rand.New(rand.NewPCG(1, 2))
//	layer := nn.NewLinear("fc1", 784, 128, 0.01, rng)
//
//	output := layer.Forward(input)  // input [32, 784] -> output [32, 128]
type Linear struct {
	base
	inFeatures  int
	outFeatures int
	weight      *Parameter // [in_features, out_features]
	bias        *Parameter // [1, out_features]
}

// NewLinear creates a new Linear layer.
//
// Parameters:
//   - name: Layer name used in descriptions and logs
//   - inFeatures: Number of input features
//   - outFeatures: Number of output features
//   - initStd: Standard deviation of the weight initialization
//   - rng: Random source for the weights; nil uses the global source
//
// It panics if a dimension is not positive or initStd is negative.
func NewLinear(name string, inFeatures, outFeatures int, initStd float64, rng *rand.Rand) *Linear {
	if inFeatures <= 0 || outFeatures <= 0 {
		exceptions.Panicf("NewLinear(%q): dimensions must be positive, got in=%d, out=%d", name, inFeatures, outFeatures)
	}
	if initStd < 0 {
		exceptions.Panicf("NewLinear(%q): init std must be >= 0, got %g", name, initStd)
	}

	l := &Linear{
		base:        base{name: name, trainable: true},
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		weight:      NewParameter("weight", Normal(inFeatures, outFeatures, initStd, rng)),
		bias:        NewParameter("bias", Zeros(1, outFeatures)),
	}
	klog.V(1).Infof("created %s with init std %g", l, initStd)
	return l
}

// Forward computes y = x @ W + b and caches x for Backward.
//
// Input shape: [batch_size, in_features]
// Output shape: [batch_size, out_features]
//
// A mismatched input panics with mat.ErrShape.
func (l *Linear) Forward(input mat.Matrix) *mat.Dense {
	x := tensor.Clone(input)
	l.saveForBackward(x)

	var out mat.Dense
	out.Mul(x, l.weight.value)
	tensor.AddRow(&out, l.bias.value.RawRowView(0))
	return &out
}

// Backward computes the parameter gradients and the input gradient.
//
//	grad_W = x.T @ g        (summed over the batch)
//	grad_b = sum(g, axis=0)
//	grad_x = g @ W.T
//
// The gradients overwrite the ones from the previous call. It panics if
// Forward has never been called.
func (l *Linear) Backward(gradOutput mat.Matrix) *mat.Dense {
	x := l.savedTensor("Linear")
	g := tensor.Clone(gradOutput)

	l.weight.grad.Mul(x.T(), g)
	tensor.SumRows(l.bias.grad.RawRowView(0), g)

	var gradInput mat.Dense
	gradInput.Mul(g, l.weight.value.T())
	return &gradInput
}

// Update applies momentum gradient descent with weight decay to W and b.
//
// Weight decay is applied to the bias as well as to the weights.
func (l *Linear) Update(cfg optim.Config) {
	if cfg.Debug || Debug() {
		klog.Infof("%s: L2-norm of gradient is %g", l, tensor.SpectralNorm(l.weight.grad))
	}
	l.weight.Step(cfg)
	l.bias.Step(cfg)
	klog.V(2).Infof("%s: updated with lr=%g momentum=%g weight_decay=%g",
		l, cfg.LearningRate, cfg.Momentum, cfg.WeightDecay)
}

func (l *Linear) String() string {
	return fmt.Sprintf("Linear: %s, (?,%d,%d)", l.name, l.inFeatures, l.outFeatures)
}

// Parameters returns the trainable parameters of this layer: [weight, bias].
func (l *Linear) Parameters() []*Parameter {
	return []*Parameter{l.weight, l.bias}
}

// Weight returns the weight parameter.
func (l *Linear) Weight() *Parameter {
	return l.weight
}

// Bias returns the bias parameter.
func (l *Linear) Bias() *Parameter {
	return l.bias
}

// GradWeight returns the weight gradient from the last Backward.
func (l *Linear) GradWeight() *mat.Dense {
	return l.weight.grad
}

// GradBias returns the bias gradient from the last Backward as a vector.
func (l *Linear) GradBias() *mat.VecDense {
	return mat.NewVecDense(l.outFeatures, l.bias.grad.RawRowView(0))
}

// InFeatures returns the number of input features.
func (l *Linear) InFeatures() int {
	return l.inFeatures
}

// OutFeatures returns the number of output features.
func (l *Linear) OutFeatures() int {
	return l.outFeatures
}

// StateDict returns copies of the weight and bias keyed by parameter name.
func (l *Linear) StateDict() map[string]*mat.Dense {
	return map[string]*mat.Dense{
		"weight": tensor.Clone(l.weight.value),
		"bias":   tensor.Clone(l.bias.value),
	}
}

// LoadStateDict copies the weight and bias from stateDict into the layer.
//
// Both entries are required and must match the layer shapes. Gradients and
// momentum buffers are left as they are.
func (l *Linear) LoadStateDict(stateDict map[string]*mat.Dense) error {
	for _, p := range l.Parameters() {
		src, ok := stateDict[p.name]
		if !ok {
			return errors.Errorf("%s: missing %s in state dict", l, p.name)
		}
		wantR, wantC := p.value.Dims()
		r, c := src.Dims()
		if r != wantR || c != wantC {
			return errors.Errorf("%s: %s shape mismatch: expected [%d %d], got [%d %d]",
				l, p.name, wantR, wantC, r, c)
		}
	}
	for _, p := range l.Parameters() {
		p.value.Copy(stateDict[p.name])
	}
	return nil
}

package optim

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// MomentumStep applies one update to param in place:
//
//	diff  = momentum * diff + (grad + weight_decay * param)
//	param = param - learning_rate * diff
//
// diff is the momentum buffer and is updated in place as well. With
// Momentum == 0 and WeightDecay == 0 this is plain gradient descent.
//
// All three matrices must have the same shape, otherwise it panics with
// mat.ErrShape.
func MomentumStep(param, grad, diff *mat.Dense, cfg Config) {
	pr, pc := param.Dims()
	gr, gc := grad.Dims()
	dr, dc := diff.Dims()
	if pr != gr || pc != gc || pr != dr || pc != dc {
		panic(mat.ErrShape)
	}
	for i := 0; i < pr; i++ {
		p := param.RawRowView(i)
		d := diff.RawRowView(i)
		floats.Scale(cfg.Momentum, d)
		floats.Add(d, grad.RawRowView(i))
		floats.AddScaled(d, cfg.WeightDecay, p)
		floats.AddScaled(p, -cfg.LearningRate, d)
	}
}

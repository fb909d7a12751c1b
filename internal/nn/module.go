// Package nn implements the neural network layers of backprop.
//
// This package provides:
//   - Layer interface: Forward, Backward and Update for every layer kind
//   - Parameter: a trainable matrix with its gradient and momentum buffer
//   - Linear: fully connected layer
//   - Activations: ReLU, Sigmoid
//
// Layers are composed by the caller. A forward pass feeds each layer's output
// into the next one, the backward pass walks the layers in reverse order, and
// trainable layers are then updated with a shared optim.Config:
//
//	h := fc1.Forward(x)
//	h = relu.Forward(h)
//	y := fc2.Forward(h)
//
//	g := fc2.Backward(gradY)
//	g = relu.Backward(g)
//	_ = fc1.Backward(g)
//
//	fc1.Update(cfg)
//	fc2.Update(cfg)
//
// A layer is not safe for concurrent use: Forward caches the tensor that the
// next Backward consumes.
package nn

import (
	"github.com/born-ml/backprop/internal/optim"
	"github.com/gomlx/exceptions"
	"gonum.org/v1/gonum/mat"
)

// Layer is the capability contract shared by every layer kind.
type Layer interface {
	// Name returns the identifier given at construction.
	Name() string

	// Trainable reports whether Update has any effect.
	Trainable() bool

	// Forward computes the layer output for an input of shape
	// [batch_size, features] and caches what Backward needs.
	Forward(input mat.Matrix) *mat.Dense

	// Backward takes the gradient of the loss with respect to the last
	// Forward output and returns the gradient with respect to its input.
	//
	// Backward must follow a Forward. Calling it twice in a row reuses the
	// same cached tensor.
	Backward(gradOutput mat.Matrix) *mat.Dense

	// Update applies the parameter update rule. It is a no-op for layers
	// without parameters.
	Update(cfg optim.Config)

	// String returns a short description such as "Relu: relu1".
	String() string
}

// base carries the state common to all layers.
type base struct {
	name      string
	trainable bool
	saved     *mat.Dense // Overwritten by every Forward
}

// Name returns the layer name.
func (b *base) Name() string {
	return b.name
}

// Trainable reports whether the layer has parameters.
func (b *base) Trainable() bool {
	return b.trainable
}

// Update is a no-op.
func (b *base) Update(optim.Config) {}

func (b *base) saveForBackward(t *mat.Dense) {
	b.saved = t
}

// savedTensor returns the cached tensor or panics if Forward never ran.
func (b *base) savedTensor(layer string) *mat.Dense {
	if b.saved == nil {
		exceptions.Panicf("%s(%q).Backward: called before Forward, nothing saved for backward", layer, b.name)
	}
	return b.saved
}

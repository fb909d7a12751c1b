// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand/v2"

	"github.com/born-ml/backprop/internal/nn"
)

// Layer is the interface implemented by every layer.
type Layer = nn.Layer

// Parameter represents a trainable matrix with its gradient and momentum buffer.
type Parameter = nn.Parameter

// Layers

// Linear represents a fully connected (dense) layer.
type Linear = nn.Linear

// NewLinear creates a new linear layer with weights drawn from N(0, initStd²)
// and zero biases.
//
// Example:
//
//	rng := rand.New(rand.NewPCG(42, 0))
//	layer := nn.NewLinear("fc1", 784, 128, 0.01, rng)
func NewLinear(name string, inFeatures, outFeatures int, initStd float64, rng *rand.Rand) *Linear {
	return nn.NewLinear(name, inFeatures, outFeatures, initStd, rng)
}

// Activations

// ReLU represents the Rectified Linear Unit activation function.
type ReLU = nn.ReLU

// NewReLU creates a new ReLU activation layer.
//
// Example:
//
//	relu := nn.NewReLU("relu1")
func NewReLU(name string) *ReLU {
	return nn.NewReLU(name)
}

// Sigmoid represents the Sigmoid activation function.
type Sigmoid = nn.Sigmoid

// NewSigmoid creates a new Sigmoid activation layer.
//
// Example:
//
//	sigmoid := nn.NewSigmoid("sigmoid1")
func NewSigmoid(name string) *Sigmoid {
	return nn.NewSigmoid(name)
}

// Debug

// SetDebug turns on or off the process-wide gradient norm logging.
func SetDebug(on bool) {
	nn.SetDebug(on)
}

// Debug reports whether process-wide gradient norm logging is on.
func Debug() bool {
	return nn.Debug()
}

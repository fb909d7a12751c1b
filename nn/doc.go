// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides feed-forward neural network layers with explicit
// backpropagation.
//
// # Overview
//
// This package contains:
//   - Layer interface: Forward, Backward, Update
//   - Linear: fully connected layer with momentum updates and weight decay
//   - Activations: ReLU, Sigmoid
//   - Parameter: a weight or bias with its gradient and momentum buffer
//
// Tensors are gonum matrices of shape [batch_size, features].
//
// # Basic Usage
//
//	import (
//	    "math/rand/v2"
//
//	    "github.com/born-ml/backprop/nn"
//	    "github.com/born-ml/backprop/optim"
//	)
//
//	func main() {
//	    rng := rand.New(rand.NewPCG(1, 2))
//	    fc1 := nn.NewLinear("fc1", 2, 3, 0.1, rng)
//	    relu := nn.NewReLU("relu1")
//	    fc2 := nn.NewLinear("fc2", 3, 1, 0.1, rng)
//
//	    // Forward pass
//	    y := fc2.Forward(relu.Forward(fc1.Forward(x)))
//
//	    // Backward pass, in reverse order
//	    g := fc2.Backward(gradY)
//	    g = relu.Backward(g)
//	    fc1.Backward(g)
//
//	    // Update trainable layers
//	    cfg := optim.Config{LearningRate: 0.01, Momentum: 0.9, WeightDecay: 5e-4}
//	    fc1.Update(cfg)
//	    fc2.Update(cfg)
//	}
//
// # Contract
//
// Forward caches the tensor its Backward needs, so every Backward must follow
// a Forward on the same layer, and a layer must not be shared between
// goroutines. Backward on a layer that never ran Forward panics. Shape
// mismatches panic with gonum's mat.ErrShape.
//
// Backward never modifies the gradient passed in.
//
// # Debug Output
//
// Set optim.Config.Debug, or call SetDebug(true) for the whole process, to
// have Linear log the 2-norm of its weight gradient through klog on every
// Update.
package nn

// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn_test

import (
	"fmt"
	"math/rand/v2"

	"github.com/born-ml/backprop/nn"
	"github.com/born-ml/backprop/optim"
	"gonum.org/v1/gonum/mat"
)

func ExampleLinear() {
	rng := rand.New(rand.NewPCG(1, 2))
	fc1 := nn.NewLinear("fc1", 2, 3, 0.1, rng)
	relu := nn.NewReLU("relu1")
	fc2 := nn.NewLinear("fc2", 3, 1, 0.1, rng)

	x := mat.NewDense(4, 2, []float64{0, 0, 0, 1, 1, 0, 1, 1})
	y := fc2.Forward(relu.Forward(fc1.Forward(x)))

	// Gradient of the loss with respect to y, from an external loss function.
	gradY := mat.NewDense(4, 1, []float64{0.1, -0.2, 0.3, -0.4})
	g := fc2.Backward(gradY)
	g = relu.Backward(g)
	fc1.Backward(g)

	cfg := optim.Config{LearningRate: 0.01, Momentum: 0.9, WeightDecay: 5e-4}
	fc1.Update(cfg)
	fc2.Update(cfg)

	rows, cols := y.Dims()
	fmt.Println(fc1, rows, cols)
	// Output: Linear: fc1, (?,2,3) 4 1
}

// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides the hyperparameters of the layer update rule.
//
// # Overview
//
// Trainable layers update their parameters with gradient descent using
// momentum and weight decay:
//
//	diff  = momentum * diff + (grad + weight_decay * param)
//	param = param - learning_rate * diff
//
// The momentum buffer diff belongs to the layer; this package only carries
// the Config passed to Layer.Update.
//
// # Basic Usage
//
//	cfg := optim.Config{
//	    Momentum:     0.9,
//	    LearningRate: 0.01,
//	    WeightDecay:  0.0005,
//	}
//	fc1.Update(cfg)
//
// # Loading
//
// Configs can also come from a map or a YAML file:
//
//	cfg, err := optim.LoadConfig("update.yaml")
//
// where update.yaml holds:
//
//	momentum: 0.9
//	learning_rate: 0.01
//	weight_decay: 0.0005
//	debug: false
//
// All three numeric keys are required; a missing key is an error.
package optim

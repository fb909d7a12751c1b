// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/born-ml/backprop/internal/optim"
)

// Config holds the update hyperparameters shared by trainable layers.
type Config = optim.Config

// Config keys accepted by ConfigFromMap and LoadConfig.
const (
	KeyMomentum     = optim.KeyMomentum
	KeyLearningRate = optim.KeyLearningRate
	KeyWeightDecay  = optim.KeyWeightDecay
)

// ConfigFromMap builds a Config from a mapping. The keys "momentum",
// "learning_rate" and "weight_decay" are all required.
//
// Example:
//
//	cfg, err := optim.ConfigFromMap(map[string]float64{
//	    "momentum":      0.9,
//	    "learning_rate": 0.01,
//	    "weight_decay":  0.0005,
//	})
func ConfigFromMap(m map[string]float64) (Config, error) {
	return optim.ConfigFromMap(m)
}

// ParseConfig decodes a YAML document with the same keys as ConfigFromMap,
// plus an optional "debug" flag.
func ParseConfig(data []byte) (Config, error) {
	return optim.ParseConfig(data)
}

// LoadConfig reads a YAML config file, see ParseConfig.
func LoadConfig(path string) (Config, error) {
	return optim.LoadConfig(path)
}

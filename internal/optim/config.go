// Package optim implements the parameter update rule used by trainable layers.
//
// The rule is gradient descent with momentum and weight decay:
//
//	diff  = momentum * diff + (grad + weight_decay * param)
//	param = param - learning_rate * diff
//
// Layers own their momentum buffers; this package only holds the
// hyperparameters and the arithmetic.
package optim

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config keys, shared by ConfigFromMap and the YAML loader.
const (
	KeyMomentum     = "momentum"
	KeyLearningRate = "learning_rate"
	KeyWeightDecay  = "weight_decay"
)

// Config holds the hyperparameters passed to Layer.Update.
//
// The same Config is usually shared by every trainable layer of a model.
type Config struct {
	Momentum     float64 `yaml:"momentum"`
	LearningRate float64 `yaml:"learning_rate"`
	WeightDecay  float64 `yaml:"weight_decay"`

	// Debug makes trainable layers log the norm of their gradient on each
	// update. It is OR-ed with the process-wide debug flag.
	Debug bool `yaml:"debug"`
}

// ConfigFromMap builds a Config from a mapping with the keys "momentum",
// "learning_rate" and "weight_decay". All three are required.
func ConfigFromMap(m map[string]float64) (Config, error) {
	var cfg Config
	for _, field := range []struct {
		key string
		dst *float64
	}{
		{KeyMomentum, &cfg.Momentum},
		{KeyLearningRate, &cfg.LearningRate},
		{KeyWeightDecay, &cfg.WeightDecay},
	} {
		v, ok := m[field.key]
		if !ok {
			return Config{}, errors.Errorf("optim: missing required config key %q", field.key)
		}
		*field.dst = v
	}
	return cfg, nil
}

// yamlConfig uses pointers so that missing keys can be told apart from zeros.
type yamlConfig struct {
	Momentum     *float64 `yaml:"momentum"`
	LearningRate *float64 `yaml:"learning_rate"`
	WeightDecay  *float64 `yaml:"weight_decay"`
	Debug        bool     `yaml:"debug"`
}

// ParseConfig decodes a YAML document holding the update hyperparameters.
//
// Example document:
//
//	momentum: 0.9
//	learning_rate: 0.01
//	weight_decay: 0.0005
func ParseConfig(data []byte) (Config, error) {
	var raw yamlConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Config{}, errors.Wrap(err, "optim: failed to parse config")
	}
	m := make(map[string]float64, 3)
	if raw.Momentum != nil {
		m[KeyMomentum] = *raw.Momentum
	}
	if raw.LearningRate != nil {
		m[KeyLearningRate] = *raw.LearningRate
	}
	if raw.WeightDecay != nil {
		m[KeyWeightDecay] = *raw.WeightDecay
	}
	cfg, err := ConfigFromMap(m)
	if err != nil {
		return Config{}, err
	}
	cfg.Debug = raw.Debug
	return cfg, nil
}

// LoadConfig reads a YAML config file, see ParseConfig.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "optim: failed to read config %q", path)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, errors.WithMessagef(err, "config file %q", path)
	}
	return cfg, nil
}

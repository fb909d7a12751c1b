package optim_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/born-ml/backprop/internal/optim"
	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestMomentumStep_PlainGradientDescent tests the update without momentum and decay.
func TestMomentumStep_PlainGradientDescent(t *testing.T) {
	param := mat.NewDense(1, 2, []float64{2.0, -1.0})
	grad := mat.NewDense(1, 2, []float64{1.0, 0.5})
	diff := mat.NewDense(1, 2, nil)

	optim.MomentumStep(param, grad, diff, optim.Config{LearningRate: 0.1})

	// param = param - lr * grad
	assert.InDeltaSlice(t, []float64{1.9, -1.05}, param.RawMatrix().Data, 1e-12)
	assert.InDeltaSlice(t, []float64{1.0, 0.5}, diff.RawMatrix().Data, 1e-12)
}

// TestMomentumStep_WithMomentum tests that the momentum buffer persists between steps.
func TestMomentumStep_WithMomentum(t *testing.T) {
	param := mat.NewDense(1, 1, []float64{1.0})
	grad := mat.NewDense(1, 1, []float64{1.0})
	diff := mat.NewDense(1, 1, nil)
	cfg := optim.Config{LearningRate: 0.1, Momentum: 0.9}

	// v_1 = 0.9 * 0 + 1.0 = 1.0
	// x_1 = 1.0 - 0.1 * 1.0 = 0.9
	optim.MomentumStep(param, grad, diff, cfg)
	assert.InDelta(t, 0.9, param.At(0, 0), 1e-12)

	// v_2 = 0.9 * 1.0 + 1.0 = 1.9
	// x_2 = 0.9 - 0.1 * 1.9 = 0.71
	optim.MomentumStep(param, grad, diff, cfg)
	assert.InDelta(t, 1.9, diff.At(0, 0), 1e-12)
	assert.InDelta(t, 0.71, param.At(0, 0), 1e-12)
}

// TestMomentumStep_WeightDecay tests that the decay term uses the value before the update.
func TestMomentumStep_WeightDecay(t *testing.T) {
	param := mat.NewDense(1, 1, []float64{2.0})
	grad := mat.NewDense(1, 1, []float64{0.0})
	diff := mat.NewDense(1, 1, nil)

	optim.MomentumStep(param, grad, diff, optim.Config{LearningRate: 0.5, WeightDecay: 0.1})

	// diff = 0 + (0 + 0.1 * 2) = 0.2
	// param = 2 - 0.5 * 0.2 = 1.9
	assert.InDelta(t, 0.2, diff.At(0, 0), 1e-12)
	assert.InDelta(t, 1.9, param.At(0, 0), 1e-12)
}

func TestMomentumStep_ShapeMismatch(t *testing.T) {
	err := exceptions.TryCatch[error](func() {
		optim.MomentumStep(mat.NewDense(1, 2, nil), mat.NewDense(2, 1, nil), mat.NewDense(1, 2, nil), optim.Config{})
	})
	assert.Equal(t, mat.ErrShape, err)
}

func TestConfigFromMap(t *testing.T) {
	cfg, err := optim.ConfigFromMap(map[string]float64{
		"momentum":      0.9,
		"learning_rate": 0.01,
		"weight_decay":  0.0005,
	})
	require.NoError(t, err)
	assert.Equal(t, optim.Config{Momentum: 0.9, LearningRate: 0.01, WeightDecay: 0.0005}, cfg)
}

func TestConfigFromMap_MissingKey(t *testing.T) {
	for _, key := range []string{optim.KeyMomentum, optim.KeyLearningRate, optim.KeyWeightDecay} {
		t.Run(key, func(t *testing.T) {
			m := map[string]float64{
				optim.KeyMomentum:     0.9,
				optim.KeyLearningRate: 0.01,
				optim.KeyWeightDecay:  0.0,
			}
			delete(m, key)

			_, err := optim.ConfigFromMap(m)
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "update.yaml")
	must.M(os.WriteFile(path, []byte("momentum: 0.9\nlearning_rate: 0.05\nweight_decay: 0\ndebug: true\n"), 0o600))

	cfg := must.M1(optim.LoadConfig(path))
	assert.Equal(t, optim.Config{Momentum: 0.9, LearningRate: 0.05, WeightDecay: 0, Debug: true}, cfg)
}

func TestParseConfig_MissingKey(t *testing.T) {
	// weight_decay: 0 is present but zero; learning_rate is absent.
	_, err := optim.ParseConfig([]byte("momentum: 0.9\nweight_decay: 0\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "learning_rate")
}

func TestParseConfig_Invalid(t *testing.T) {
	_, err := optim.ParseConfig([]byte("momentum: [not, a, number]\n"))
	require.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := optim.LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(errors.Cause(err)))
}

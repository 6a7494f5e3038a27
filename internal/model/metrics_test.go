package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateMetrics_PerfectPrediction(t *testing.T) {
	y := []float64{0.2, 0.5, 0.8}

	metrics := EvaluateMetrics(y, y)

	assert.Equal(t, 1.0, metrics.R2)
	assert.Equal(t, 0.0, metrics.MSE)
	assert.Equal(t, 0.0, metrics.RMSE)
	assert.Equal(t, 0.0, metrics.MAE)
	assert.Equal(t, 1.0, metrics.ClassificationAccuracy)
}

func TestEvaluateMetrics_ConstantError(t *testing.T) {
	yTrue := []float64{0.2, 0.4, 0.6}
	yPred := []float64{0.3, 0.5, 0.7}

	metrics := EvaluateMetrics(yTrue, yPred)

	assert.InDelta(t, 0.01, metrics.MSE, 1e-9)
	assert.InDelta(t, 0.1, metrics.RMSE, 1e-9)
	assert.InDelta(t, 0.1, metrics.MAE, 1e-9)
	assert.InDelta(t, 1.0-0.03/0.08, metrics.R2, 1e-9)
}

func TestEvaluateMetrics_ClassificationAccuracy(t *testing.T) {
	// 0.70 boundary: true APTO vs predicted CONSIDERADO counts as a miss
	yTrue := []float64{0.75, 0.55, 0.30, 0.71}
	yPred := []float64{0.80, 0.52, 0.55, 0.69}

	metrics := EvaluateMetrics(yTrue, yPred)

	assert.InDelta(t, 0.5, metrics.ClassificationAccuracy, 1e-9)
}

func TestEvaluateMetrics_Empty(t *testing.T) {
	assert.Equal(t, Metrics{}, EvaluateMetrics(nil, nil))
}

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFitScaler(t *testing.T) {
	rows := [][]float64{
		{1, 10, 5},
		{3, 20, 5},
	}

	scaler := FitScaler(rows)

	assert.Equal(t, []float64{2, 15, 5}, scaler.Means)
	assert.Equal(t, 1.0, scaler.Stds[0])
	assert.Equal(t, 5.0, scaler.Stds[1])
	// Constant column passes through with std 1
	assert.Equal(t, 1.0, scaler.Stds[2])
}

func TestScalerTransform(t *testing.T) {
	scaler := FitScaler([][]float64{
		{1, 10, 5},
		{3, 20, 5},
	})

	scaled := scaler.Transform([]float64{3, 10, 5})

	assert.InDelta(t, 1.0, scaled[0], 1e-9)
	assert.InDelta(t, -1.0, scaled[1], 1e-9)
	assert.InDelta(t, 0.0, scaled[2], 1e-9)
}

func TestScalerTransformAll_ZeroMeanUnitVariance(t *testing.T) {
	rows := [][]float64{{1, 2}, {2, 4}, {3, 6}, {4, 8}}
	scaler := FitScaler(rows)

	scaled := scaler.TransformAll(rows)

	for j := 0; j < 2; j++ {
		sum := 0.0
		sumSq := 0.0
		for _, row := range scaled {
			sum += row[j]
			sumSq += row[j] * row[j]
		}
		assert.InDelta(t, 0.0, sum/float64(len(scaled)), 1e-9)
		assert.InDelta(t, 1.0, sumSq/float64(len(scaled)), 1e-9)
	}
}

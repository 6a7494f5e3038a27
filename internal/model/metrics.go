package model

import (
	"math"

	"github.com/mauricio/profile-matcher/internal/types"
)

// Metrics are the regression and classification quality measures reported
// after training and evaluation.
type Metrics struct {
	R2                     float64 `json:"r2_score"`
	MSE                    float64 `json:"mse"`
	RMSE                   float64 `json:"rmse"`
	MAE                    float64 `json:"mae"`
	ClassificationAccuracy float64 `json:"classification_accuracy"`
}

// EvaluateMetrics compares predictions against true scores. Classification
// accuracy uses the default label thresholds on both sides.
func EvaluateMetrics(yTrue, yPred []float64) Metrics {
	n := float64(len(yTrue))
	if n == 0 {
		return Metrics{}
	}

	mean := 0.0
	for _, y := range yTrue {
		mean += y
	}
	mean /= n

	var ssRes, ssTot, absErr float64
	agreed := 0
	for i, y := range yTrue {
		d := y - yPred[i]
		ssRes += d * d
		absErr += math.Abs(d)

		t := y - mean
		ssTot += t * t

		if types.Classify(y, types.DefaultThresholds) == types.Classify(yPred[i], types.DefaultThresholds) {
			agreed++
		}
	}

	r2 := 0.0
	if ssTot > 0 {
		r2 = 1 - ssRes/ssTot
	}

	mse := ssRes / n
	return Metrics{
		R2:                     r2,
		MSE:                    mse,
		RMSE:                   math.Sqrt(mse),
		MAE:                    absErr / n,
		ClassificationAccuracy: float64(agreed) / n,
	}
}

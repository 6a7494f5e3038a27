package model

import (
	"gonum.org/v1/gonum/mat"
)

// Ridge is a linear model with L2 regularization, fit via the closed-form
// normal equations on standardized features. The intercept is the training
// target mean and is not penalized.
type Ridge struct {
	Alpha        float64
	Coefficients []float64
	Intercept    float64
	Scaler       *Scaler
}

// FitRidge trains a ridge regression on the given rows. Features are
// standardized first; the solve runs on (XᵀX + αI)β = Xᵀ(y - ȳ).
func FitRidge(rows [][]float64, targets []float64, alpha float64) (*Ridge, error) {
	if len(rows) == 0 || len(rows) != len(targets) {
		return nil, &ArtifactError{Reason: "training data is empty or misaligned"}
	}
	n := len(rows)
	p := len(rows[0])

	scaler := FitScaler(rows)
	scaled := scaler.TransformAll(rows)

	yMean := 0.0
	for _, y := range targets {
		yMean += y
	}
	yMean /= float64(n)

	x := mat.NewDense(n, p, nil)
	yCentered := mat.NewVecDense(n, nil)
	for i, row := range scaled {
		x.SetRow(i, row)
		yCentered.SetVec(i, targets[i]-yMean)
	}

	var xtx mat.Dense
	xtx.Mul(x.T(), x)
	for j := 0; j < p; j++ {
		xtx.Set(j, j, xtx.At(j, j)+alpha)
	}

	var xty mat.VecDense
	xty.MulVec(x.T(), yCentered)

	var beta mat.VecDense
	if err := beta.SolveVec(&xtx, &xty); err != nil {
		return nil, &ArtifactError{Reason: "normal equations are singular", Cause: err}
	}

	coefficients := make([]float64, p)
	copy(coefficients, beta.RawVector().Data)

	return &Ridge{
		Alpha:        alpha,
		Coefficients: coefficients,
		Intercept:    yMean,
		Scaler:       scaler,
	}, nil
}

// Predict scores a single feature vector, clipped to [0,1].
func (r *Ridge) Predict(vector []float64) (float64, error) {
	if len(vector) != len(r.Coefficients) {
		return 0, &ArtifactError{Reason: "feature vector length does not match model"}
	}

	scaled := r.Scaler.Transform(vector)
	score := r.Intercept
	for j, coefficient := range r.Coefficients {
		score += coefficient * scaled[j]
	}
	return clip01(score), nil
}

// PredictAll scores every row.
func (r *Ridge) PredictAll(rows [][]float64) ([]float64, error) {
	predictions := make([]float64, len(rows))
	for i, row := range rows {
		score, err := r.Predict(row)
		if err != nil {
			return nil, err
		}
		predictions[i] = score
	}
	return predictions, nil
}

func clip01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

package model

import (
	"context"
	"math"
	"time"

	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"

	"github.com/mauricio/profile-matcher/internal/features"
)

// Training defaults, overridable per TrainOptions.
const (
	DefaultTestFraction = 0.2
	DefaultCVFolds      = 5
	DefaultTrainSeed    = 42
)

// DefaultAlphas is the log-spaced regularization grid searched during training.
var DefaultAlphas = []float64{0.01, 0.1, 0.5, 1.0, 2.0, 5.0, 10.0, 50.0, 100.0}

// TrainOptions configures the training run. Zero values fall back to the
// package defaults.
type TrainOptions struct {
	Alphas       []float64
	CVFolds      int
	TestFraction float64
	Seed         uint64
}

func (o TrainOptions) withDefaults() TrainOptions {
	if len(o.Alphas) == 0 {
		o.Alphas = DefaultAlphas
	}
	if o.CVFolds <= 1 {
		o.CVFolds = DefaultCVFolds
	}
	if o.TestFraction <= 0 || o.TestFraction >= 1 {
		o.TestFraction = DefaultTestFraction
	}
	if o.Seed == 0 {
		o.Seed = DefaultTrainSeed
	}
	return o
}

// AlphaResult is the cross-validation outcome for one regularization candidate.
type AlphaResult struct {
	Alpha    float64   `json:"alpha"`
	MeanR2   float64   `json:"mean_r2"`
	FoldR2   []float64 `json:"fold_r2"`
	StdDevR2 float64   `json:"stddev_r2"`
}

// TrainResult bundles the trained artifact with the search history and the
// held-out test metrics.
type TrainResult struct {
	Artifact    *Artifact
	BestAlpha   float64
	GridResults []AlphaResult
	TestMetrics Metrics
	TrainSize   int
	TestSize    int
}

// Train runs the full training pipeline: seeded shuffle, train/test split,
// grid search over alphas with k-fold cross-validation, final fit on the
// whole training split, evaluation on the held-out split. Alpha candidates
// are evaluated concurrently; each goroutine reads only its own slice views.
func Train(ctx context.Context, rows [][]float64, targets []float64, opts TrainOptions) (*TrainResult, error) {
	opts = opts.withDefaults()
	if len(rows) < opts.CVFolds*2 {
		return nil, &ArtifactError{Reason: "not enough samples to train"}
	}

	// Shuffle a copy so the caller's ordering is untouched.
	shuffledRows := make([][]float64, len(rows))
	shuffledTargets := make([]float64, len(targets))
	copy(shuffledRows, rows)
	copy(shuffledTargets, targets)

	rnd := rand.New(rand.NewSource(opts.Seed))
	rnd.Shuffle(len(shuffledRows), func(i, j int) {
		shuffledRows[i], shuffledRows[j] = shuffledRows[j], shuffledRows[i]
		shuffledTargets[i], shuffledTargets[j] = shuffledTargets[j], shuffledTargets[i]
	})

	testSize := int(float64(len(shuffledRows)) * opts.TestFraction)
	trainRows, testRows := shuffledRows[testSize:], shuffledRows[:testSize]
	trainTargets, testTargets := shuffledTargets[testSize:], shuffledTargets[:testSize]

	gridResults := make([]AlphaResult, len(opts.Alphas))
	group, ctx := errgroup.WithContext(ctx)
	for i, alpha := range opts.Alphas {
		i, alpha := i, alpha
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := crossValidate(trainRows, trainTargets, alpha, opts.CVFolds)
			if err != nil {
				return err
			}
			gridResults[i] = result
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	best := gridResults[0]
	for _, candidate := range gridResults[1:] {
		if candidate.MeanR2 > best.MeanR2 {
			best = candidate
		}
	}

	ridge, err := FitRidge(trainRows, trainTargets, best.Alpha)
	if err != nil {
		return nil, err
	}

	predictions, err := ridge.PredictAll(testRows)
	if err != nil {
		return nil, err
	}
	testMetrics := EvaluateMetrics(testTargets, predictions)

	artifact := &Artifact{
		SchemaVersion:       ArtifactSchemaVersion,
		FeatureOrderVersion: features.FeatureOrderVersion,
		FeatureNames:        features.Names(),
		Alpha:               ridge.Alpha,
		Coefficients:        ridge.Coefficients,
		Intercept:           ridge.Intercept,
		ScalerMeans:         ridge.Scaler.Means,
		ScalerStds:          ridge.Scaler.Stds,
		TrainingMetrics:     testMetrics,
		CVMeanR2:            best.MeanR2,
		TrainedAt:           time.Now().UTC(),
	}

	return &TrainResult{
		Artifact:    artifact,
		BestAlpha:   best.Alpha,
		GridResults: gridResults,
		TestMetrics: testMetrics,
		TrainSize:   len(trainRows),
		TestSize:    len(testRows),
	}, nil
}

// crossValidate computes k-fold R² for one alpha over contiguous folds of
// the already shuffled training split.
func crossValidate(rows [][]float64, targets []float64, alpha float64, folds int) (AlphaResult, error) {
	result := AlphaResult{Alpha: alpha, FoldR2: make([]float64, 0, folds)}
	n := len(rows)

	for fold := 0; fold < folds; fold++ {
		lo := fold * n / folds
		hi := (fold + 1) * n / folds

		trainRows := make([][]float64, 0, n-(hi-lo))
		trainTargets := make([]float64, 0, n-(hi-lo))
		trainRows = append(trainRows, rows[:lo]...)
		trainRows = append(trainRows, rows[hi:]...)
		trainTargets = append(trainTargets, targets[:lo]...)
		trainTargets = append(trainTargets, targets[hi:]...)

		ridge, err := FitRidge(trainRows, trainTargets, alpha)
		if err != nil {
			return AlphaResult{}, err
		}

		predictions, err := ridge.PredictAll(rows[lo:hi])
		if err != nil {
			return AlphaResult{}, err
		}
		result.FoldR2 = append(result.FoldR2, EvaluateMetrics(targets[lo:hi], predictions).R2)
	}

	for _, r2 := range result.FoldR2 {
		result.MeanR2 += r2
	}
	result.MeanR2 /= float64(len(result.FoldR2))

	for _, r2 := range result.FoldR2 {
		d := r2 - result.MeanR2
		result.StdDevR2 += d * d
	}
	result.StdDevR2 = math.Sqrt(result.StdDevR2 / float64(len(result.FoldR2)))

	return result, nil
}

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mauricio/profile-matcher/internal/dataset"
	"github.com/mauricio/profile-matcher/internal/db"
	"github.com/mauricio/profile-matcher/internal/model"
	"github.com/mauricio/profile-matcher/internal/observability"
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train the ridge matching model",
	Long:  "Train a ridge regression model on a labeled dataset CSV, selecting the regularization strength by cross-validation, and persist the resulting artifact.",
	RunE:  runTrain,
}

var (
	trainData string
	trainOut     string
	trainSeed    uint64
	trainFolds   int
	trainTest    float64
	trainDBURL   string
	trainConfig  string
)

func init() {
	trainCmd.Flags().StringVarP(&trainData, "data", "d", "", "Path to training dataset CSV (required)")
	trainCmd.Flags().StringVarP(&trainOut, "out", "o", "model.json", "Output artifact JSON path")
	trainCmd.Flags().Uint64Var(&trainSeed, "seed", 0, "RNG seed for the train/test split")
	trainCmd.Flags().IntVar(&trainFolds, "folds", 0, "Cross-validation fold count")
	trainCmd.Flags().Float64Var(&trainTest, "test-size", 0, "Held-out test fraction in (0,1)")
	trainCmd.Flags().StringVar(&trainDBURL, "db-url", "", "PostgreSQL URL; when set the artifact is also stored as the active model")
	trainCmd.Flags().StringVarP(&trainConfig, "config", "c", "", "Path to CLI config JSON file")

	rootCmd.AddCommand(trainCmd)
}

func runTrain(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(trainConfig)
	if err != nil {
		return err
	}

	datasetPath := trainData
	if datasetPath == "" {
		datasetPath = cfg.Dataset
	}
	if datasetPath == "" {
		return fmt.Errorf("a dataset is required: pass --data or set 'dataset' in the config file")
	}

	seed := trainSeed
	if seed == 0 {
		seed = cfg.Seed
	}

	rows, targets, err := dataset.ReadFile(datasetPath)
	if err != nil {
		return fmt.Errorf("failed to read dataset: %w", err)
	}

	ctx := cmd.Context()
	result, err := model.Train(ctx, rows, targets, model.TrainOptions{
		Seed:         seed,
		CVFolds:      trainFolds,
		TestFraction: trainTest,
	})
	if err != nil {
		return fmt.Errorf("training failed: %w", err)
	}

	encoded, err := result.Artifact.Encode()
	if err != nil {
		return fmt.Errorf("failed to encode artifact: %w", err)
	}
	if err := os.WriteFile(trainOut, encoded, 0o644); err != nil {
		return fmt.Errorf("failed to write artifact: %w", err)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintTrainingResult(result)
	fmt.Printf("Wrote model artifact to %s\n", trainOut)

	dbURL := trainDBURL
	if dbURL == "" {
		dbURL = cfg.DatabaseURLFromEnv()
	}
	if dbURL != "" {
		if err := storeArtifact(ctx, dbURL, result.Artifact); err != nil {
			return err
		}
	}

	return nil
}

func storeArtifact(ctx context.Context, dbURL string, artifact *model.Artifact) error {
	conn, err := db.Connect(ctx, dbURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer conn.Close()

	id, err := conn.SaveModel(ctx, artifact)
	if err != nil {
		return fmt.Errorf("failed to store model: %w", err)
	}
	fmt.Printf("Stored model %s as active\n", id)
	return nil
}

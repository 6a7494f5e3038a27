package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mauricio/profile-matcher/internal/dataset"
	"github.com/mauricio/profile-matcher/internal/model"
	"github.com/mauricio/profile-matcher/internal/observability"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate a trained model against a labeled dataset",
	Long:  "Compute regression and classification metrics for a trained model over a labeled dataset CSV, compared against the interaction heuristic baseline.",
	RunE:  runEvaluate,
}

var (
	evaluateData      string
	evaluateModelPath string
	evaluateCfgPath   string
)

func init() {
	evaluateCmd.Flags().StringVarP(&evaluateData, "data", "d", "", "Path to labeled dataset CSV (required)")
	evaluateCmd.Flags().StringVarP(&evaluateModelPath, "model", "m", "", "Path to trained model artifact JSON (required)")
	evaluateCmd.Flags().StringVarP(&evaluateCfgPath, "config", "c", "", "Path to CLI config JSON file")

	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(evaluateCfgPath)
	if err != nil {
		return err
	}

	dataPath := evaluateData
	if dataPath == "" {
		dataPath = cfg.Dataset
	}
	modelPath := evaluateModelPath
	if modelPath == "" {
		modelPath = cfg.Model
	}
	if dataPath == "" || modelPath == "" {
		return fmt.Errorf("both --data and --model are required")
	}

	rows, targets, err := dataset.ReadFile(dataPath)
	if err != nil {
		return fmt.Errorf("failed to read dataset: %w", err)
	}

	encoded, err := os.ReadFile(modelPath)
	if err != nil {
		return fmt.Errorf("failed to read model artifact: %w", err)
	}
	artifact, err := model.DecodeArtifact(encoded)
	if err != nil {
		return fmt.Errorf("failed to decode model artifact: %w", err)
	}

	ridgePreds := make([]float64, len(rows))
	heuristicPreds := make([]float64, len(rows))
	heuristic := model.Heuristic{}
	for i, row := range rows {
		if ridgePreds[i], err = artifact.Predict(row); err != nil {
			return fmt.Errorf("model prediction failed on row %d: %w", i+1, err)
		}
		if heuristicPreds[i], err = heuristic.Predict(row); err != nil {
			return fmt.Errorf("heuristic prediction failed on row %d: %w", i+1, err)
		}
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintMetricsComparison(
		model.EvaluateMetrics(targets, ridgePreds),
		model.EvaluateMetrics(targets, heuristicPreds),
		len(rows),
	)

	return nil
}

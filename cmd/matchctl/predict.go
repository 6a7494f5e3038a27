package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mauricio/profile-matcher/internal/db"
	"github.com/mauricio/profile-matcher/internal/engine"
	"github.com/mauricio/profile-matcher/internal/model"
	"github.com/mauricio/profile-matcher/internal/observability"
	"github.com/mauricio/profile-matcher/internal/types"
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Score a candidate profile against an institutional configuration",
	Long:  "Score a candidate profile JSON against an institutional configuration JSON and print the match report with per-dimension scores and feature contributions.",
	RunE:  runPredict,
}

var (
	predictProfile     string
	predictInstitution string
	predictModel       string
	predictUseModel    bool
	predictDBURL       string
	predictStoreAs     string
	predictOut         string
	predictJSONOnly    bool
	predictConfig      string
)

func init() {
	predictCmd.Flags().StringVarP(&predictProfile, "profile", "p", "", "Path to candidate profile JSON (required)")
	predictCmd.Flags().StringVarP(&predictInstitution, "institution", "i", "", "Path to institutional config JSON (required)")
	predictCmd.Flags().StringVarP(&predictModel, "model", "m", "", "Path to a trained model artifact JSON")
	predictCmd.Flags().BoolVar(&predictUseModel, "use-model", false, "Score with the active database model instead of the heuristic")
	predictCmd.Flags().StringVar(&predictDBURL, "db-url", "", "PostgreSQL URL for model loading and evaluation storage")
	predictCmd.Flags().StringVar(&predictStoreAs, "store-as", "", "Store the evaluation under this configuration name (requires a database URL)")
	predictCmd.Flags().StringVarP(&predictOut, "out", "o", "", "Write the full report JSON to this path")
	predictCmd.Flags().BoolVar(&predictJSONOnly, "json", false, "Print the report as JSON instead of the formatted summary")
	predictCmd.Flags().StringVarP(&predictConfig, "config", "c", "", "Path to CLI config JSON file")

	rootCmd.AddCommand(predictCmd)
}

func runPredict(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(predictConfig)
	if err != nil {
		return err
	}

	profilePath := predictProfile
	if profilePath == "" {
		profilePath = cfg.Profile
	}
	institutionPath := predictInstitution
	if institutionPath == "" {
		institutionPath = cfg.Institution
	}
	if profilePath == "" || institutionPath == "" {
		return fmt.Errorf("both --profile and --institution are required")
	}

	modelPath := predictModel
	if modelPath == "" {
		modelPath = cfg.Model
	}
	useModel := predictUseModel || cfg.UseModel

	dbURL := predictDBURL
	if dbURL == "" {
		dbURL = cfg.DatabaseURLFromEnv()
	}

	profileJSON, err := os.ReadFile(profilePath)
	if err != nil {
		return fmt.Errorf("failed to read profile: %w", err)
	}
	configJSON, err := os.ReadFile(institutionPath)
	if err != nil {
		return fmt.Errorf("failed to read institutional config: %w", err)
	}

	ctx := cmd.Context()

	var conn *db.DB
	if dbURL != "" && (useModel || predictStoreAs != "") {
		conn, err = db.Connect(ctx, dbURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer conn.Close()
	}

	strategy, modelID, err := resolveStrategy(ctx, conn, modelPath, useModel)
	if err != nil {
		return err
	}

	eng := engine.New(engine.WithStrategy(strategy))
	report, err := eng.EvaluateJSON(profileJSON, configJSON)
	if err != nil {
		var inputErr *types.InputValidationError
		var cfgErr *types.ConfigError
		switch {
		case errors.As(err, &inputErr):
			return fmt.Errorf("invalid candidate profile: %w", err)
		case errors.As(err, &cfgErr):
			return fmt.Errorf("invalid institutional config: %w", err)
		}
		return err
	}

	if predictOut != "" {
		encoded, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		if err := os.WriteFile(predictOut, encoded, 0o644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	if predictJSONOnly {
		encoded, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		fmt.Println(string(encoded))
	} else {
		observability.NewPrinter(os.Stdout).PrintReport(report)
	}

	if predictStoreAs != "" {
		if conn == nil {
			return fmt.Errorf("--store-as requires a database URL")
		}
		if err := storeEvaluation(ctx, conn, predictStoreAs, modelID, configJSON, report); err != nil {
			return err
		}
	}

	return nil
}

// resolveStrategy picks the scoring strategy: an artifact file when given,
// otherwise the active database model when --use-model is set, otherwise
// the interaction heuristic. The returned model ID is non-nil only for
// database models.
func resolveStrategy(ctx context.Context, conn *db.DB, modelPath string, useModel bool) (model.Strategy, *uuid.UUID, error) {
	if modelPath != "" {
		data, err := os.ReadFile(modelPath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read model artifact: %w", err)
		}
		artifact, err := model.DecodeArtifact(data)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to decode model artifact: %w", err)
		}
		return artifact, nil, nil
	}

	if useModel {
		if conn == nil {
			return nil, nil, fmt.Errorf("--use-model requires a database URL")
		}
		artifact, id, err := conn.GetActiveModel(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load active model: %w", err)
		}
		if artifact == nil {
			return nil, nil, &model.ModelNotReadyError{Reason: "no active model in database"}
		}
		return artifact, &id, nil
	}

	return model.Heuristic{}, nil, nil
}

func storeEvaluation(ctx context.Context, conn *db.DB, name string, modelID *uuid.UUID, configJSON []byte, report *engine.Report) error {
	cfg, err := types.ParseInstitutionalConfig(configJSON)
	if err != nil {
		return fmt.Errorf("failed to parse institutional config: %w", err)
	}

	configID, err := conn.SaveConfig(ctx, name, cfg)
	if err != nil {
		return fmt.Errorf("failed to store configuration: %w", err)
	}

	id, err := conn.SaveEvaluation(ctx, configID, modelID, report)
	if err != nil {
		return fmt.Errorf("failed to store evaluation: %w", err)
	}
	fmt.Printf("Stored evaluation %s under configuration %q\n", id, name)
	return nil
}

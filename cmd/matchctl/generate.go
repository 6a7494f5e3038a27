package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mauricio/profile-matcher/internal/config"
	"github.com/mauricio/profile-matcher/internal/dataset"
	"github.com/mauricio/profile-matcher/internal/observability"
	"github.com/mauricio/profile-matcher/internal/synthetic"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a synthetic training dataset",
	Long:  "Generate a labeled synthetic dataset using the expert rule system and write it to a CSV file.",
	RunE:  runGenerate,
}

var (
	generateOut     string
	generateSamples int
	generateSeed    uint64
	generateConfig  string
)

func init() {
	generateCmd.Flags().StringVarP(&generateOut, "out", "o", "dataset.csv", "Output CSV file path")
	generateCmd.Flags().IntVarP(&generateSamples, "samples", "n", 0, "Number of samples to generate")
	generateCmd.Flags().Uint64Var(&generateSeed, "seed", 0, "RNG seed")
	generateCmd.Flags().StringVarP(&generateConfig, "config", "c", "", "Path to CLI config JSON file")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(generateConfig)
	if err != nil {
		return err
	}

	samples := generateSamples
	if samples == 0 {
		samples = cfg.Samples
	}
	if samples == 0 {
		samples = synthetic.DefaultSampleCount
	}
	if samples < 0 {
		return fmt.Errorf("sample count must be positive, got %d", samples)
	}

	seed := generateSeed
	if seed == 0 {
		seed = cfg.Seed
	}
	if seed == 0 {
		seed = synthetic.DefaultSeed
	}

	gen := synthetic.NewGenerator(seed)
	data, err := gen.GenerateDataset(samples)
	if err != nil {
		return fmt.Errorf("failed to generate dataset: %w", err)
	}

	if err := dataset.WriteFile(generateOut, data); err != nil {
		return fmt.Errorf("failed to write dataset: %w", err)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintDatasetSummary(data)
	fmt.Printf("Wrote %d samples to %s (seed %d)\n", len(data), generateOut, seed)

	return nil
}

// resolveConfig loads the optional CLI config file, falling back to an
// empty config when no path is given.
func resolveConfig(path string) (*config.Config, error) {
	if path == "" {
		return &config.Config{}, nil
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

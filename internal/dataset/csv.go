// Package dataset persists training data as CSV, one row per labeled sample:
// the feature columns followed by match_score and classification.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/mauricio/profile-matcher/internal/features"
	"github.com/mauricio/profile-matcher/internal/synthetic"
	"github.com/mauricio/profile-matcher/internal/types"
)

const (
	scoreColumn          = "match_score"
	classificationColumn = "classification"
)

// Header returns the CSV column names in file order.
func Header() []string {
	return append(features.Names(), scoreColumn, classificationColumn)
}

// Write streams samples as CSV with a header row.
func Write(w io.Writer, samples []synthetic.Sample) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(Header()); err != nil {
		return fmt.Errorf("failed to write dataset header: %w", err)
	}

	record := make([]string, features.VectorSize+2)
	for i, sample := range samples {
		if len(sample.Features) != features.VectorSize {
			return fmt.Errorf("sample %d has %d features, want %d", i, len(sample.Features), features.VectorSize)
		}
		for j, value := range sample.Features {
			record[j] = strconv.FormatFloat(value, 'g', -1, 64)
		}
		record[features.VectorSize] = strconv.FormatFloat(sample.MatchScore, 'g', -1, 64)
		record[features.VectorSize+1] = string(sample.Classification)

		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write dataset row %d: %w", i, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteFile writes samples to a CSV file, truncating any existing file.
func WriteFile(path string, samples []synthetic.Sample) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create dataset file: %w", err)
	}
	defer f.Close()

	if err := Write(f, samples); err != nil {
		return err
	}
	return f.Close()
}

// Read parses a dataset CSV back into feature rows and target scores. The
// header must carry the exact column layout produced by Write.
func Read(r io.Reader) ([][]float64, []float64, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read dataset header: %w", err)
	}
	expected := Header()
	if len(header) != len(expected) {
		return nil, nil, fmt.Errorf("dataset has %d columns, want %d", len(header), len(expected))
	}
	for i, name := range expected {
		if header[i] != name {
			return nil, nil, fmt.Errorf("dataset column %d is %q, want %q", i, header[i], name)
		}
	}

	var rows [][]float64
	var targets []float64
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read dataset line %d: %w", line, err)
		}

		vector := make([]float64, features.VectorSize)
		for j := 0; j < features.VectorSize; j++ {
			vector[j], err = strconv.ParseFloat(record[j], 64)
			if err != nil {
				return nil, nil, fmt.Errorf("invalid value %q at line %d column %s: %w", record[j], line, expected[j], err)
			}
		}
		score, err := strconv.ParseFloat(record[features.VectorSize], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid match_score %q at line %d: %w", record[features.VectorSize], line, err)
		}

		rows = append(rows, vector)
		targets = append(targets, score)
	}

	return rows, targets, nil
}

// ReadFile parses a dataset CSV from disk.
func ReadFile(path string) ([][]float64, []float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open dataset file: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// ClassDistribution counts samples per label.
func ClassDistribution(samples []synthetic.Sample) map[types.Classification]int {
	distribution := make(map[types.Classification]int, 3)
	for _, sample := range samples {
		distribution[sample.Classification]++
	}
	return distribution
}

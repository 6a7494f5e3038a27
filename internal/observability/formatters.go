// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/mauricio/profile-matcher/internal/dataset"
	"github.com/mauricio/profile-matcher/internal/engine"
	"github.com/mauricio/profile-matcher/internal/model"
	"github.com/mauricio/profile-matcher/internal/synthetic"
	"github.com/mauricio/profile-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// barWidth is the character width of score bars
	barWidth = 10
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// scoreBar renders a score in [0,1] as a fixed-width bar.
func scoreBar(score float64) string {
	filled := int(score*barWidth + 0.5)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}

// PrintReport outputs a human-readable summary of an evaluation.
func (p *Printer) PrintReport(report *engine.Report) {
	if report == nil {
		return
	}

	var sb strings.Builder
	prediction := report.Prediction

	sb.WriteString(fmt.Sprintf("Match score:     %.2f\n", prediction.MatchScore))
	sb.WriteString(fmt.Sprintf("Classification:  %s\n", prediction.Classification))
	sb.WriteString("\n")

	scores := prediction.CVScores
	sb.WriteString(fmt.Sprintf("Hard skills  %s %.2f\n", scoreBar(scores.HardSkills), scores.HardSkills))
	sb.WriteString(fmt.Sprintf("Soft skills  %s %.2f\n", scoreBar(scores.SoftSkills), scores.SoftSkills))
	sb.WriteString(fmt.Sprintf("Experience   %s %.2f\n", scoreBar(scores.Experience), scores.Experience))
	sb.WriteString(fmt.Sprintf("Education    %s %.2f\n", scoreBar(scores.Education), scores.Education))
	sb.WriteString(fmt.Sprintf("Languages    %s %.2f\n", scoreBar(scores.Languages), scores.Languages))

	if len(report.HardSkills.MissingRequired) > 0 {
		sb.WriteString(fmt.Sprintf("\nMissing required skills: %s\n",
			strings.Join(report.HardSkills.MissingRequired, ", ")))
	}
	if report.Experience.Classification != "" {
		sb.WriteString(fmt.Sprintf("Experience: %.1f years (%s)\n",
			report.Experience.TotalYears, report.Experience.Classification))
	}

	p.printBox("MATCH EVALUATION", strings.TrimSuffix(sb.String(), "\n"))
	p.printContributions(prediction)
}

func (p *Printer) printContributions(prediction types.Prediction) {
	if len(prediction.TopStrengths) == 0 && len(prediction.TopWeaknesses) == 0 {
		return
	}

	var sb strings.Builder
	if len(prediction.TopStrengths) > 0 {
		sb.WriteString("Strengths:\n")
		for _, c := range prediction.TopStrengths {
			sb.WriteString(fmt.Sprintf("  + %-24s %+.3f\n", c.Feature, c.Value))
		}
	}
	if len(prediction.TopWeaknesses) > 0 {
		sb.WriteString("Weaknesses:\n")
		for _, c := range prediction.TopWeaknesses {
			sb.WriteString(fmt.Sprintf("  - %-24s %+.3f\n", c.Feature, c.Value))
		}
	}

	p.printBox("FEATURE CONTRIBUTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTrainingResult outputs the grid search history and test metrics.
func (p *Printer) PrintTrainingResult(result *model.TrainResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Train/test split: %d/%d\n", result.TrainSize, result.TestSize))
	sb.WriteString(fmt.Sprintf("Best alpha:       %g\n\n", result.BestAlpha))

	sb.WriteString("Alpha grid (CV mean R²):\n")
	for _, candidate := range result.GridResults {
		marker := " "
		if candidate.Alpha == result.BestAlpha {
			marker = "*"
		}
		sb.WriteString(fmt.Sprintf("  %s %-8g %.4f ± %.4f\n", marker, candidate.Alpha, candidate.MeanR2, candidate.StdDevR2))
	}

	metrics := result.TestMetrics
	sb.WriteString("\nTest metrics:\n")
	sb.WriteString(fmt.Sprintf("  R²:        %.4f\n", metrics.R2))
	sb.WriteString(fmt.Sprintf("  RMSE:      %.4f\n", metrics.RMSE))
	sb.WriteString(fmt.Sprintf("  MAE:       %.4f\n", metrics.MAE))
	sb.WriteString(fmt.Sprintf("  Accuracy:  %.4f\n", metrics.ClassificationAccuracy))

	p.printBox("MODEL TRAINING", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMetricsComparison outputs ridge and heuristic metrics side by side.
func (p *Printer) PrintMetricsComparison(ridge, heuristic model.Metrics, samples int) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Samples: %d\n\n", samples))
	sb.WriteString(fmt.Sprintf("  %-10s %10s %10s\n", "", "ridge", "heuristic"))
	sb.WriteString(fmt.Sprintf("  %-10s %10.4f %10.4f\n", "R²", ridge.R2, heuristic.R2))
	sb.WriteString(fmt.Sprintf("  %-10s %10.4f %10.4f\n", "RMSE", ridge.RMSE, heuristic.RMSE))
	sb.WriteString(fmt.Sprintf("  %-10s %10.4f %10.4f\n", "MAE", ridge.MAE, heuristic.MAE))
	sb.WriteString(fmt.Sprintf("  %-10s %10.4f %10.4f\n", "Accuracy", ridge.ClassificationAccuracy, heuristic.ClassificationAccuracy))

	p.printBox("MODEL EVALUATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDatasetSummary outputs the size and label distribution of a dataset.
func (p *Printer) PrintDatasetSummary(samples []synthetic.Sample) {
	if len(samples) == 0 {
		return
	}

	distribution := dataset.ClassDistribution(samples)
	labels := make([]string, 0, len(distribution))
	for label := range distribution {
		labels = append(labels, string(label))
	}
	sort.Strings(labels)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Samples: %d\n\n", len(samples)))
	for _, label := range labels {
		count := distribution[types.Classification(label)]
		share := float64(count) / float64(len(samples))
		sb.WriteString(fmt.Sprintf("  %-12s %5d (%.1f%%)\n", label, count, share*100))
	}

	p.printBox("SYNTHETIC DATASET", strings.TrimSuffix(sb.String(), "\n"))
}

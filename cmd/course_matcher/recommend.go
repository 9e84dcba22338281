package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/course-matcher/internal/config"
	"github.com/jonathan/course-matcher/internal/engine"
	"github.com/jonathan/course-matcher/internal/ingestion"
	"github.com/jonathan/course-matcher/internal/observability"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend courses for a resume",
	Long:  "Analyze a resume file and print the best-matching courses from the catalog as JSON.",
	RunE:  runRecommend,
}

var (
	recommendResumeFile string
	recommendDataset    string
	recommendTop        int
	recommendVerbose    bool
)

func init() {
	recommendCmd.Flags().StringVarP(&recommendResumeFile, "resume", "r", "", "Path to resume file (txt, md or html)")
	recommendCmd.Flags().StringVarP(&recommendDataset, "dataset", "d", "", "Path to course dataset (CSV or JSON)")
	recommendCmd.Flags().IntVar(&recommendTop, "top", 0, "Number of recommendations to return")
	recommendCmd.Flags().BoolVarP(&recommendVerbose, "verbose", "v", false, "Print formatted profile and recommendation summaries")
	_ = recommendCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(_ *cobra.Command, _ []string) error {
	cfg := (&config.Config{DatasetPath: recommendDataset}).MergeWithDefaults(config.Default())
	if cfg.DatasetPath == "" {
		return fmt.Errorf("a course dataset is required (set --dataset or DATASET_PATH)")
	}

	text, err := readResume(recommendResumeFile)
	if err != nil {
		return err
	}

	ctx := context.Background()
	eng, err := engine.New(ctx, engine.FileSource{Path: cfg.DatasetPath}, engine.Config{
		MaxFeatures:  cfg.MaxFeatures,
		TopN:         cfg.TopN,
		MinimumScore: cfg.MinimumScore,
	})
	if err != nil {
		return fmt.Errorf("failed to build recommendation engine: %w", err)
	}

	result, err := eng.Recommend(ctx, text, recommendTop)
	if err != nil {
		return fmt.Errorf("recommendation failed: %w", err)
	}

	if recommendVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintResumeProfile(result.Profile)
		printer.PrintRecommendations(result.Recommendations)
	}

	jsonBytes, err := json.MarshalIndent(map[string]any{
		"analysis":              result.Analysis,
		"recommendations":       result.Recommendations,
		"total_recommendations": result.Total,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	fmt.Fprintln(os.Stdout, string(jsonBytes))
	return nil
}

// readResume loads and extracts plain text from a resume file.
func readResume(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read resume file: %w", err)
	}
	text, err := ingestion.ExtractText(path, data)
	if err != nil {
		return "", fmt.Errorf("failed to extract resume text: %w", err)
	}
	return text, nil
}

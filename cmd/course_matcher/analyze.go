package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/course-matcher/internal/observability"
	"github.com/jonathan/course-matcher/internal/profile"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Extract a profile from a resume",
	Long:  "Analyze a resume file and print the extracted skills, experience level, education and domains as JSON. No catalog is required.",
	RunE:  runAnalyze,
}

var (
	analyzeResumeFile string
	analyzeVerbose    bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeResumeFile, "resume", "r", "", "Path to resume file (txt, md or html)")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print a formatted profile summary")
	_ = analyzeCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	text, err := readResume(analyzeResumeFile)
	if err != nil {
		return err
	}

	extractor := profile.NewExtractor()
	prof := extractor.Analyze(text)

	if analyzeVerbose {
		observability.NewPrinter(os.Stderr).PrintResumeProfile(prof)
	}

	jsonBytes, err := json.MarshalIndent(prof, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	fmt.Fprintln(os.Stdout, string(jsonBytes))
	return nil
}

// Package main provides the entry point for the course matcher CLI and server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "course_matcher",
	Short: "Course recommendation engine",
	Long:  "Course matcher analyzes a resume, extracts a skill profile and recommends the best-matching courses from a catalog using TF-IDF similarity.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

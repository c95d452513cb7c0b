// Package main provides the entry point for the Career Intelligence Engine HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "career_engine",
	Short: "Career Intelligence Engine HTTP API Server",
	Long:  "Career Intelligence Engine analyzes uploaded resumes: skill detection, project and capability analysis, AI-assisted grading, and a career-fit report via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

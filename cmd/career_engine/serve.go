package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-engine/internal/config"
	"github.com/jonathan/career-engine/internal/grading"
	"github.com/jonathan/career-engine/internal/llm"
	"github.com/jonathan/career-engine/internal/pipeline"
	"github.com/jonathan/career-engine/internal/server"
	"github.com/jonathan/career-engine/internal/vocab"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the resume analysis endpoint.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if servePort > 0 {
		cfg.Port = servePort
	}

	llmConfig := llm.DefaultConfig()
	llmConfig.Model = cfg.GeminiModel

	client, err := llm.NewClient(context.Background(), llmConfig, cfg.GeminiAPIKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer client.Close()

	if !client.Available() {
		log.Println("GEMINI_API_KEY not set, grading falls back to deterministic scoring")
	}

	engine := grading.NewEngine(client, llm.DefaultRetryPolicy())
	runner := pipeline.New(vocab.Default(), engine)

	srv := server.New(server.Config{
		Port:           cfg.Port,
		RequestTimeout: cfg.RequestTimeout,
	}, runner)

	return srv.Start()
}

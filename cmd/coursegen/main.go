package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"course-planner/internal/adapter/textgen"
	"course-planner/internal/cli"
	"course-planner/internal/config"
	"course-planner/internal/logger"
	"course-planner/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	cfg.Logger.Stderr = true
	if err := logger.Initialize(cfg.Logger); err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer logger.Sync()

	if cfg.Gemini.APIKey == "" {
		return errors.New("GEMINI_API_KEY is not set")
	}

	ctx := context.Background()
	model, err := textgen.NewGoogleAIModel(ctx, cfg.Gemini.APIKey, cfg.Gemini.TextModel)
	if err != nil {
		return fmt.Errorf("creating text model: %w", err)
	}

	// No image backend: every command is a one-shot text generation.
	generation := service.NewGenerationService(
		textgen.NewGeminiTextGenerator(model, cfg.Gemini.Timeout, nil),
		nil, nil,
		service.GenerationOptions{},
	)

	root := cli.NewRootCmd(&cli.App{Generation: generation})
	return root.ExecuteContext(ctx)
}

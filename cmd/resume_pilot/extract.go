package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resumepilot/internal/ingestion"
	"github.com/jonathan/resumepilot/internal/observability"
	"github.com/jonathan/resumepilot/internal/pipeline"
)

var (
	extractInput   string
	extractOutput  string
	extractAPIKey  string
	extractModel   string
	extractVerbose bool
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract a structured profile from raw resume text",
	Long:  `Parse an unstructured resume or career summary into a structured profile JSON document.`,
	RunE:  runExtract,
}

func init() {
	extractCmd.Flags().StringVarP(&extractInput, "input", "i", "", "Path to the raw resume text file (required)")
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "Path to write the profile JSON (default stdout)")
	extractCmd.Flags().StringVar(&extractAPIKey, "api-key", "", "Gemini API key (optional, defaults to GEMINI_API_KEY env var)")
	extractCmd.Flags().StringVar(&extractModel, "model", "", "Model name override")
	extractCmd.Flags().BoolVarP(&extractVerbose, "verbose", "v", false, "Print a formatted profile summary")
	_ = extractCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	content, err := os.ReadFile(extractInput)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", extractInput, err)
	}

	rawText, err := ingestion.PrepareRawText(string(content), extractInput)
	if err != nil {
		return err
	}

	client, err := newModelClient(ctx, extractAPIKey, extractModel)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	result, err := pipeline.ExtractProfile(ctx, client, rawText)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	if extractVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintProfile(result.Document)
		printer.PrintWarnings(result.Warnings)
	} else {
		printWarnings(result.Warnings)
	}
	return writeJSON(extractOutput, result.Document)
}

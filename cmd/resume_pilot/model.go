package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resumepilot/internal/llm"
	"github.com/jonathan/resumepilot/internal/schema"
)

// newModelClient builds the model client from a flag-supplied API key,
// falling back to the GEMINI_API_KEY environment variable.
func newModelClient(ctx context.Context, apiKey, model string) (llm.Client, error) {
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required: pass --api-key or set GEMINI_API_KEY")
	}

	cfg := llm.DefaultConfig()
	if model != "" {
		cfg = cfg.WithModel(model)
	}
	return llm.NewClient(ctx, cfg, apiKey)
}

// writeJSON writes a document as indented JSON to the given path, or to
// stdout when the path is empty.
func writeJSON(path string, doc any) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	data = append(data, '\n')

	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// readDocument reads a JSON document from a file.
func readDocument(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return doc, nil
}

// printWarnings reports normalization warnings on stderr.
func printWarnings(warnings []schema.Warning) {
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s: %s\n", w.Field, w.Message)
	}
}

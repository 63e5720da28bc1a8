// Package pipeline orchestrates the two model-backed document operations:
// parsing unstructured career text into a Profile and transforming a
// Profile plus a job target into a Resume. Both share one five-step shape:
// build prompt, invoke model, strip fences, parse JSON, normalize.
package pipeline

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/jonathan/resumepilot/internal/llm"
	"github.com/jonathan/resumepilot/internal/schema"
)

// Result holds a pipeline output document together with any per-field
// normalization warnings.
type Result struct {
	Document schema.Document
	Warnings []schema.Warning
}

// ExtractProfile parses unstructured career text into a normalized Profile.
func ExtractProfile(ctx context.Context, client llm.Client, rawText string) (*Result, error) {
	return run(ctx, client, BuildExtractionPrompt(rawText), schema.KindProfile)
}

// TailorResume transforms a profile plus a job target into a normalized
// Resume. An empty job title fails fast before any model call.
func TailorResume(ctx context.Context, client llm.Client, profile schema.Document, jobTitle, jobDescription string) (*Result, error) {
	if strings.TrimSpace(jobTitle) == "" {
		return nil, &MissingJobTitleError{}
	}

	prompt, err := BuildTailoringPrompt(profile, jobTitle, jobDescription)
	if err != nil {
		return nil, err
	}
	return run(ctx, client, prompt, schema.KindResume)
}

// run executes the shared pipeline shape for one prompt and target kind.
// Model-collaborator failures propagate with their classification
// unchanged; nothing here retries.
func run(ctx context.Context, client llm.Client, prompt string, kind schema.Kind) (*Result, error) {
	raw, err := client.Invoke(ctx, prompt)
	if err != nil {
		return nil, err
	}

	cleaned := llm.CleanJSONBlock(raw)

	var payload any
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return nil, &MalformedResponseError{Cause: err}
	}

	doc, warnings, err := schema.Normalize(kind, payload)
	if err != nil {
		return nil, err
	}

	return &Result{Document: doc, Warnings: warnings}, nil
}

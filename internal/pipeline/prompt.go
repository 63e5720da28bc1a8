package pipeline

import (
	"encoding/json"
	"fmt"

	"github.com/jonathan/resumepilot/internal/prompts"
	"github.com/jonathan/resumepilot/internal/schema"
)

const promptFile = "pipeline.json"

// BuildExtractionPrompt renders the resume-parsing prompt. The prompt
// embeds the literal Profile schema so the model's output shape is
// self-describing and checkable.
func BuildExtractionPrompt(rawText string) string {
	template := prompts.MustGet(promptFile, "extract-profile")
	return prompts.Format(template, map[string]string{
		"RawText": rawText,
	})
}

// BuildTailoringPrompt renders the resume-generation prompt. The profile is
// embedded as canonical JSON (sorted keys) so prompt construction is
// reproducible for identical input.
func BuildTailoringPrompt(profile schema.Document, jobTitle, jobDescription string) (string, error) {
	profileJSON, err := canonicalJSON(profile)
	if err != nil {
		return "", fmt.Errorf("failed to serialize profile: %w", err)
	}

	jobContext := ""
	if jobDescription != "" {
		jobContext = "JOB DESCRIPTION: " + jobDescription + "\n"
	}

	template := prompts.MustGet(promptFile, "tailor-resume")
	return prompts.Format(template, map[string]string{
		"JobTitle":    jobTitle,
		"JobContext":  jobContext,
		"ProfileJSON": profileJSON,
	}), nil
}

// canonicalJSON serializes a document with stable key order.
// encoding/json sorts map keys, which is exactly the guarantee needed.
func canonicalJSON(doc schema.Document) (string, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

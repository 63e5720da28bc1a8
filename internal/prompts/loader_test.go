package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_ExtractionPrompt(t *testing.T) {
	prompt, err := Get("pipeline.json", "extract-profile")
	require.NoError(t, err)
	assert.NotEmpty(t, prompt)
	assert.Contains(t, prompt, "{{.RawText}}")
}

func TestGet_TailoringPrompt(t *testing.T) {
	prompt, err := Get("pipeline.json", "tailor-resume")
	require.NoError(t, err)
	assert.Contains(t, prompt, "{{.JobTitle}}")
	assert.Contains(t, prompt, "{{.JobContext}}")
	assert.Contains(t, prompt, "{{.ProfileJSON}}")
}

func TestGet_InvalidFile(t *testing.T) {
	_, err := Get("nonexistent.json", "some-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read prompt file")
}

func TestGet_InvalidKey(t *testing.T) {
	_, err := Get("pipeline.json", "nonexistent-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestMustGet_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustGet("nonexistent.json", "some-key")
	})
}

func TestMustGet_ValidPrompt(t *testing.T) {
	assert.NotPanics(t, func() {
		prompt := MustGet("pipeline.json", "extract-profile")
		assert.NotEmpty(t, prompt)
	})
}

func TestFormat(t *testing.T) {
	template := "Tailor for {{.JobTitle}} using {{.ProfileJSON}}"
	data := map[string]string{
		"JobTitle":    "Engineer",
		"ProfileJSON": "{}",
	}

	result := Format(template, data)
	assert.Equal(t, "Tailor for Engineer using {}", result)
}

func TestFormat_NoPlaceholders(t *testing.T) {
	template := "No placeholders here"
	result := Format(template, map[string]string{"Key": "Value"})
	assert.Equal(t, template, result)
}

func TestFormat_MissingData(t *testing.T) {
	template := "Hello {{.Name}}"
	result := Format(template, map[string]string{})
	assert.Equal(t, template, result) // Placeholder remains
}

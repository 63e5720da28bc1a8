package ingestion

import (
	"fmt"
	"path/filepath"
	"strings"
)

// MaxRawTextBytes bounds uploaded career text so oversized prompts never
// reach the model.
const MaxRawTextBytes = 16 << 20 // 16 MiB

// allowedExtensions lists the source document formats accepted for
// extraction. The upstream UI extracts text before upload; the extension
// only records provenance.
var allowedExtensions = map[string]bool{
	".txt":  true,
	".md":   true,
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

// InputError indicates raw text that violates the ingestion constraints.
type InputError struct {
	Message string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Message)
}

// PrepareRawText validates and cleans uploaded career text. fileName may
// be empty for text pasted directly.
func PrepareRawText(content, fileName string) (string, error) {
	if len(content) > MaxRawTextBytes {
		return "", &InputError{
			Message: fmt.Sprintf("content exceeds %d byte limit", MaxRawTextBytes),
		}
	}

	if fileName != "" {
		ext := strings.ToLower(filepath.Ext(fileName))
		if !allowedExtensions[ext] {
			return "", &InputError{
				Message: fmt.Sprintf("unsupported file format %q", ext),
			}
		}
	}

	cleaned := CleanText(content)
	if cleaned == "" {
		return "", &InputError{Message: "content is empty"}
	}
	return cleaned, nil
}

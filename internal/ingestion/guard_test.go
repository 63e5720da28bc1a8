package ingestion

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepareRawText_Valid(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		fileName string
	}{
		{name: "pasted text", content: "Ada Lovelace\nEngineer", fileName: ""},
		{name: "txt file", content: "some text", fileName: "resume.txt"},
		{name: "markdown file", content: "# Resume", fileName: "resume.md"},
		{name: "uppercase extension", content: "some text", fileName: "RESUME.PDF"},
		{name: "docx file", content: "some text", fileName: "cv.docx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := PrepareRawText(tt.content, tt.fileName)
			require.NoError(t, err)
			assert.NotEmpty(t, out)
		})
	}
}

func TestPrepareRawText_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		fileName string
		contains string
	}{
		{name: "empty", content: "", fileName: "", contains: "empty"},
		{name: "whitespace only", content: "  \n\t  ", fileName: "", contains: "empty"},
		{name: "bad extension", content: "text", fileName: "resume.exe", contains: "unsupported file format"},
		{name: "no extension", content: "text", fileName: "resume", contains: "unsupported file format"},
		{
			name:     "oversized",
			content:  strings.Repeat("a", MaxRawTextBytes+1),
			fileName: "",
			contains: "byte limit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PrepareRawText(tt.content, tt.fileName)
			require.Error(t, err)

			var inputErr *InputError
			require.True(t, errors.As(err, &inputErr))
			assert.Contains(t, inputErr.Error(), tt.contains)
		})
	}
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "crlf normalized",
			input: "line one\r\nline two\r",
			want:  "line one\nline two",
		},
		{
			name:  "trailing whitespace stripped",
			input: "line one   \nline two\t",
			want:  "line one\nline two",
		},
		{
			name:  "space runs collapsed",
			input: "Ada    Lovelace   was  here",
			want:  "Ada Lovelace was here",
		},
		{
			name:  "blank lines capped at two",
			input: "a\n\n\n\n\nb",
			want:  "a\n\nb",
		},
		{
			name:  "bullets preserved",
			input: "Experience:\n  - built things\n  * shipped things",
			want:  "Experience:\n  - built things\n  * shipped things",
		},
		{
			name:  "headings preserved",
			input: "   # Resume\ntext",
			want:  "# Resume\ntext",
		},
		{
			name:  "indentation preserved",
			input: "Job:\n    details   here",
			want:  "Job:\n    details here",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.input))
		})
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resumepilot/internal/export"
)

var (
	exportInput  string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render a resume JSON document as plain text",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportInput, "input", "i", "", "Path to the resume JSON file (required)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Path to write the plain text resume (default stdout)")
	_ = exportCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	resume, err := readDocument(exportInput)
	if err != nil {
		return err
	}

	text := export.RenderPlainText(resume)

	if exportOutput == "" {
		_, err = fmt.Fprint(os.Stdout, text)
		return err
	}
	if err := os.WriteFile(exportOutput, []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", exportOutput, err)
	}
	return nil
}

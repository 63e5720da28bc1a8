package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resumepilot/internal/jobfetch"
	"github.com/jonathan/resumepilot/internal/observability"
	"github.com/jonathan/resumepilot/internal/pipeline"
)

var (
	tailorProfile    string
	tailorJobTitle   string
	tailorJobDesc    string
	tailorJobFile    string
	tailorJobURL     string
	tailorOutput     string
	tailorAPIKey     string
	tailorModel      string
	tailorUseBrowser bool
	tailorVerbose    bool
)

var tailorCmd = &cobra.Command{
	Use:   "tailor",
	Short: "Generate a resume tailored to a job target",
	Long: `Transform a profile JSON document into a resume tailored to a job title.
The job description can be given inline, from a file, or fetched from a posting URL.`,
	RunE: runTailor,
}

func init() {
	tailorCmd.Flags().StringVarP(&tailorProfile, "profile", "p", "", "Path to the profile JSON file (required)")
	tailorCmd.Flags().StringVar(&tailorJobTitle, "job-title", "", "Target job title (required)")
	tailorCmd.Flags().StringVar(&tailorJobDesc, "job-description", "", "Job description text")
	tailorCmd.Flags().StringVar(&tailorJobFile, "job-file", "", "Path to a job description text file")
	tailorCmd.Flags().StringVar(&tailorJobURL, "job-url", "", "URL to fetch the job posting from")
	tailorCmd.Flags().StringVarP(&tailorOutput, "output", "o", "", "Path to write the resume JSON (default stdout)")
	tailorCmd.Flags().StringVar(&tailorAPIKey, "api-key", "", "Gemini API key (optional, defaults to GEMINI_API_KEY env var)")
	tailorCmd.Flags().StringVar(&tailorModel, "model", "", "Model name override")
	tailorCmd.Flags().BoolVar(&tailorUseBrowser, "use-browser", false, "Use headless browser fallback for job URLs (requires Chrome)")
	tailorCmd.Flags().BoolVarP(&tailorVerbose, "verbose", "v", false, "Print a formatted resume summary")
	_ = tailorCmd.MarkFlagRequired("profile")
	_ = tailorCmd.MarkFlagRequired("job-title")
	rootCmd.AddCommand(tailorCmd)
}

func runTailor(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	profile, err := readDocument(tailorProfile)
	if err != nil {
		return err
	}

	jobDescription, err := resolveJobDescription(ctx)
	if err != nil {
		return err
	}

	client, err := newModelClient(ctx, tailorAPIKey, tailorModel)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	result, err := pipeline.TailorResume(ctx, client, profile, tailorJobTitle, jobDescription)
	if err != nil {
		return fmt.Errorf("tailoring failed: %w", err)
	}

	if tailorVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintResume(result.Document)
		printer.PrintWarnings(result.Warnings)
	} else {
		printWarnings(result.Warnings)
	}
	return writeJSON(tailorOutput, result.Document)
}

// resolveJobDescription picks the job description source: inline text,
// file, then URL. Missing description is allowed; tailoring proceeds on
// the job title alone.
func resolveJobDescription(ctx context.Context) (string, error) {
	if tailorJobDesc != "" {
		return tailorJobDesc, nil
	}
	if tailorJobFile != "" {
		data, err := os.ReadFile(tailorJobFile)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", tailorJobFile, err)
		}
		return string(data), nil
	}
	if tailorJobURL != "" {
		opts := jobfetch.DefaultOptions()
		opts.UseBrowser = tailorUseBrowser
		return jobfetch.JobDescription(ctx, tailorJobURL, opts)
	}
	return "", nil
}

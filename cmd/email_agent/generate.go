package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jonathan/interview-mailer/internal/composer"
	"github.com/jonathan/interview-mailer/internal/config"
	"github.com/jonathan/interview-mailer/internal/llm"
	"github.com/jonathan/interview-mailer/internal/logging"
	"github.com/jonathan/interview-mailer/internal/observability"
	"github.com/jonathan/interview-mailer/internal/schemas"
	"github.com/jonathan/interview-mailer/internal/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one interview email from record files",
	Long:  "Reads a job parser record and a candidate matching record, runs the email pipeline once and prints the draft as JSON.",
	RunE:  runGenerate,
}

var (
	generateJobFile    string
	generateMatchFile  string
	generateOutputFile string
	generateVerbose    bool
)

func init() {
	generateCmd.Flags().StringVarP(&generateJobFile, "job", "j", "", "Path to job parser JSON file (required)")
	generateCmd.Flags().StringVarP(&generateMatchFile, "match", "m", "", "Path to candidate matching JSON file (required)")
	generateCmd.Flags().StringVarP(&generateOutputFile, "out", "o", "", "Write the draft JSON to this file instead of stdout")
	generateCmd.Flags().BoolVarP(&generateVerbose, "verbose", "v", false, "Print the draft in a readable box and log pipeline details")

	if err := generateCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}
	if err := generateCmd.MarkFlagRequired("match"); err != nil {
		panic(fmt.Sprintf("failed to mark match flag as required: %v", err))
	}

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	job, err := readRecord(generateJobFile)
	if err != nil {
		return err
	}
	match, err := readRecord(generateMatchFile)
	if err != nil {
		return err
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	if generateVerbose {
		level = zapcore.DebugLevel
	}
	logger := logging.NewWriter(cmd.ErrOrStderr(), level)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	client, err := llm.NewClient(ctx, cfg.ModelConfig())
	if err != nil {
		return fmt.Errorf("failed to create llm client: %w", err)
	}
	defer func() { _ = client.Close() }()

	draft, err := generateDraft(ctx, client, logger, job, match)
	if err != nil {
		return err
	}

	if generateOutputFile != "" {
		return writeDraftFile(generateOutputFile, draft)
	}
	return printDraft(cmd.OutOrStdout(), draft, generateVerbose)
}

// generateDraft runs the pipeline once with the given model client.
func generateDraft(ctx context.Context, client llm.Completer, logger *zap.Logger, job, match map[string]any) (*types.EmailDraft, error) {
	c, err := composer.New(client, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create composer: %w", err)
	}

	return c.GenerateEmail(ctx, job, match)
}

// readRecord loads a JSON object from path, keeping numbers as json.Number.
func readRecord(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read record file: %w", err)
	}

	if err := schemas.ValidateRecord(data); err != nil {
		return nil, fmt.Errorf("record file %s is not a JSON object: %w", path, err)
	}

	var record map[string]any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal record JSON: %w", err)
	}
	return record, nil
}

func printDraft(out io.Writer, draft *types.EmailDraft, verbose bool) error {
	if verbose {
		observability.NewPrinter(out).PrintEmail(draft)
		return nil
	}

	jsonBytes, err := json.MarshalIndent(types.GenerateEmailResponse{Email: *draft}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(out, string(jsonBytes))
	return err
}

func writeDraftFile(path string, draft *types.EmailDraft) error {
	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	jsonBytes, err := json.MarshalIndent(types.GenerateEmailResponse{Email: *draft}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/benjaminschreck/go-cvfill/pkg/extract"
	"github.com/benjaminschreck/go-cvfill/pkg/ingest"
)

//nolint:gochecknoglobals // Cobra boilerplate
var extractCmd = &cobra.Command{
	Use:   "extract <cv-file>",
	Short: "Extract a candidate record without rendering",
	Long: `Extract the structured candidate record from one CV and print it as
JSON. Useful for inspecting what the model found before converting.`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.AnthropicAPIKey == "" {
		return errors.New("anthropic_api_key is required (set in config or ANTHROPIC_API_KEY env var)")
	}

	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		return errors.Wrap(err, "building logger")
	}
	defer func() { _ = log.Sync() }()

	text, err := ingest.Read(ctx, args[0])
	if err != nil {
		return err
	}

	extractor := extract.NewClaude(cfg.AnthropicAPIKey, cfg.Model, cfg.MaxTokens, log)
	rec, err := extractor.Extract(ctx, text)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding record")
	}
	fmt.Println(string(out))
	return nil
}

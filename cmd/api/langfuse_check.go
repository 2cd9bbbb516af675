package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/blaisecz/mood-journal/internal/langfuse"
	"github.com/blaisecz/mood-journal/internal/llm"
	"github.com/spf13/cobra"
)

var langfuseCheckCmd = &cobra.Command{
	Use:   "langfuse-check",
	Short: "Send a test trace to Langfuse and resolve the report prompt",
	RunE:  runLangfuseCheck,
}

func init() {
	rootCmd.AddCommand(langfuseCheckCmd)
}

func runLangfuseCheck(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "=== Langfuse Connection Check ===")
	fmt.Fprintf(out, "Base URL:    %s\n", cfg.LangfuseBaseURL)
	fmt.Fprintf(out, "Public Key:  %s\n", maskKey(cfg.LangfusePublicKey))
	fmt.Fprintf(out, "Secret Key:  %s\n", maskKey(cfg.LangfuseSecretKey))
	fmt.Fprintf(out, "Environment: %s\n\n", cfg.LangfuseEnv)

	client := langfuse.NewClient(langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
		Synchronous: true,
		Logger:      log,
	})
	if !client.IsEnabled() {
		return fmt.Errorf("langfuse client is disabled, check LANGFUSE_* settings")
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	defer cancel()

	traceID, err := client.CreateTrace(ctx, langfuse.TraceInput{
		UserID: "langfuse-check",
		Name:   "langfuse-check",
		Input: map[string]any{
			"message": "connectivity check",
			"time":    time.Now().UTC().Format(time.RFC3339),
		},
		Output: map[string]any{"status": "success"},
		Tags:   []string{"check", "manual"},
	})
	if err != nil {
		return fmt.Errorf("create trace: %w", err)
	}
	fmt.Fprintf(out, "✓ Trace created: %s\n", traceID)
	fmt.Fprintf(out, "  View at: %s/trace/%s\n", strings.TrimSuffix(cfg.LangfuseBaseURL, "/"), traceID)

	loader := &langfuse.PromptLoader{
		BaseURL:   cfg.LangfuseBaseURL,
		PublicKey: cfg.LangfusePublicKey,
		SecretKey: cfg.LangfuseSecretKey,
		CachePath: cfg.ReportPromptPath,
		Default:   llm.DefaultReportSystemPrompt,
		Logger:    log,
	}
	prompt, source, err := loader.Load(ctx, cfg.ReportPromptName, cfg.ReportPromptLabel)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "✓ Report prompt resolved from %s (%d chars)\n", source, len(prompt))
	return nil
}

func maskKey(key string) string {
	if len(key) < 8 {
		if key == "" {
			return "(empty)"
		}
		return "***"
	}
	return key[:8] + "..."
}

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/phrazzld/slidegen/internal/domain"
	"github.com/phrazzld/slidegen/internal/generation"
	"github.com/phrazzld/slidegen/internal/redact"
	"github.com/spf13/cobra"
)

// choiceFlags are the per-run overrides of the saved preferences.
type choiceFlags struct {
	format       string
	language     string
	mode         string
	customFormat string
}

func (f *choiceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.format, "format", "", "content format id (see `slidegen formats`)")
	cmd.Flags().StringVar(&f.language, "language", "", "content language: en, es, pt, fr, de or it")
	cmd.Flags().StringVar(&f.mode, "mode", "", "content mode: viral or organic")
	cmd.Flags().StringVar(&f.customFormat, "custom-format", "", "format description used with --format custom")
}

// applyTo overlays the non-empty flags on prefs.
func (f *choiceFlags) applyTo(prefs domain.UserPreferences) domain.UserPreferences {
	if f.format != "" {
		prefs.FormatID = domain.FormatID(f.format)
	}
	if f.language != "" {
		prefs.Language = domain.Language(f.language)
	}
	if f.mode != "" {
		prefs.Mode = domain.Mode(f.mode)
	}
	if f.customFormat != "" {
		prefs.CustomFormat = f.customFormat
	}
	return prefs
}

func newGenerateCmd(c *cli) *cobra.Command {
	var choices choiceFlags
	var topic string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a slideshow script",
		Long: "Generate a slideshow script for the configured business description.\n" +
			"Unset flags fall back to the saved preferences. The choices of a successful run are saved.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := c.newApplication(c.stderr)
			if err != nil {
				return err
			}

			prefs, err := app.preferences.Load()
			if err != nil {
				app.logger.Warn("failed to load preferences, using defaults", "error", redact.Error(err))
				prefs = domain.DefaultPreferences()
			}
			chosen := choices.applyTo(prefs)

			req := chosen.NewRequest(topic, app.cfg.Business.Description, app.cfg.LLM.APIKey)

			ctx := cmd.Context()
			if timeout := app.cfg.LLM.RequestTimeout(); timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			result, err := app.service.Generate(ctx, req, func(stage generation.ProgressStage) {
				fmt.Fprintf(c.stderr, "%s...\n", stage)
			})
			if err != nil {
				if errors.Is(err, generation.ErrSetup) {
					return fmt.Errorf("%w (set SLIDEGEN_LLM_API_KEY and SLIDEGEN_BUSINESS_DESCRIPTION)", err)
				}
				return err
			}

			if result.Fallback {
				fmt.Fprintf(c.stderr, "notice: %s\n", result.Notice)
			}

			if err := app.preferences.Save(chosen); err != nil {
				app.logger.Warn("failed to save preferences", "error", redact.Error(err))
			}

			if asJSON {
				enc := json.NewEncoder(c.stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(result.Content)
			}
			return writeContent(c.stdout, result.Content)
		},
	}

	choices.register(cmd)
	cmd.Flags().StringVar(&topic, "topic", "", "topic of the slideshow; defaults to \"<format title> content\", e.g. \"top 5 tips content\"")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the content as JSON")
	return cmd
}

// writeContent renders content for reading in a terminal.
func writeContent(w io.Writer, content domain.GeneratedContent) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", content.Title)
	fmt.Fprintf(&b, "format: %s\n\n", content.Format)

	fmt.Fprintf(&b, "hook: %s\n", content.Hook)
	for i, h := range content.HookVariations {
		marker := " "
		if i == content.SelectedHookIndex {
			marker = "*"
		}
		fmt.Fprintf(&b, "  %s %d. %s\n", marker, i+1, h)
	}

	b.WriteString("\nslides:\n")
	for i, s := range content.Slides {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, s)
	}

	fmt.Fprintf(&b, "\ncta: %s\n", content.CTA)
	fmt.Fprintf(&b, "search terms: %s\n", strings.Join(content.SearchTerms, ", "))

	_, err := io.WriteString(w, b.String())
	return err
}

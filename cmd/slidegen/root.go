package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/phrazzld/slidegen/internal/config"
	"github.com/phrazzld/slidegen/internal/events"
	"github.com/phrazzld/slidegen/internal/pipeline"
	"github.com/phrazzld/slidegen/internal/platform/logger"
	"github.com/phrazzld/slidegen/internal/preferences"
	"github.com/spf13/cobra"
)

// cli holds what every subcommand shares. cfg is set by the root command's
// pre-run hook.
type cli struct {
	stdout  io.Writer
	stderr  io.Writer
	envFile string
	cfg     *config.Config
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	c := &cli{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:           "slidegen",
		Short:         "Generate short-form slideshow scripts with a language model",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.loadConfig()
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().StringVar(&c.envFile, "env-file", ".env", "dotenv file loaded before the environment is read")

	root.AddCommand(
		newGenerateCmd(c),
		newFormatsCmd(c),
		newPrefsCmd(c),
		newServeCmd(c),
	)
	return root
}

// loadConfig loads the dotenv file, when present, and then the configuration.
func (c *cli) loadConfig() error {
	if c.envFile != "" {
		if err := godotenv.Load(c.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", c.envFile, err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	c.cfg = cfg
	return nil
}

// application is the wired dependency graph of one command invocation.
type application struct {
	cfg         *config.Config
	logger      *slog.Logger
	preferences *preferences.Store
	service     *pipeline.Service
}

// newApplication wires the pipeline with logs written to logOut.
func (c *cli) newApplication(logOut io.Writer) (*application, error) {
	log, err := logger.SetupWithWriter(c.cfg.Server, logOut)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	store, err := preferences.NewStore(log, c.cfg.Preferences.Path)
	if err != nil {
		return nil, err
	}

	completer, err := pipeline.NewCompleter(log, c.cfg.LLM)
	if err != nil {
		return nil, err
	}

	emitter := events.NewInMemoryEventEmitter(log)
	emitter.RegisterHandler(events.NewLogHandler(log))

	service, err := pipeline.NewService(log, completer, emitter, pipeline.SettingsFromConfig(c.cfg.LLM))
	if err != nil {
		return nil, err
	}

	log.Debug("application initialized",
		"provider", c.cfg.LLM.Provider,
		"model", c.cfg.LLM.Model,
		"schema_version", c.cfg.LLM.SchemaVersion,
		"api_key_present", c.cfg.LLM.APIKey != "",
		"business_description_present", c.cfg.Business.Description != "")

	return &application{
		cfg:         c.cfg,
		logger:      log,
		preferences: store,
		service:     service,
	}, nil
}

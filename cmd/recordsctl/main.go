package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/records/internal/console"
	"github.com/aussiebroadwan/records/pkg/recordsdk"
	"github.com/aussiebroadwan/records/pkg/slogx"
)

// errReported marks failures the user has already been told about.
var errReported = errors.New("reported")

// cli carries the state shared by every subcommand.
type cli struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	configPath string
	apiURL     string
	logLevel   string
	jsonOutput bool
	assumeYes  bool

	// isTerminal reports whether stdin is interactive; swapped in tests.
	isTerminal func() bool

	vm *console.ViewModel
}

func newCLI(stdin io.Reader, stdout, stderr io.Writer) *cli {
	return &cli{
		stdin:      stdin,
		stdout:     stdout,
		stderr:     stderr,
		isTerminal: stdinIsTerminal,
	}
}

func (c *cli) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "recordsctl",
		Short:         "Command line client for the records data service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default ~/.config/records/config.toml)")
	root.PersistentFlags().StringVar(&c.apiURL, "api-url", "", "records API base URL (overrides RECORDS_API_URL and the config file)")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "log level for diagnostics on stderr (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&c.jsonOutput, "json", false, "output as JSON")

	root.AddCommand(
		c.healthCmd(),
		c.listCmd(),
		c.addCmd(),
		c.editCmd(),
		c.deleteCmd(),
	)

	return root
}

// setup resolves configuration and builds the view-model.
func (c *cli) setup(cmd *cobra.Command) error {
	cfg, err := loadConfig(c.configPath)
	if err != nil {
		return err
	}
	if c.apiURL != "" {
		cfg.APIURL = c.apiURL
	}
	if c.logLevel != "" {
		cfg.LogLevel = c.logLevel
	}

	logger := slog.New(slogx.NewHandler(slogx.Config{
		Level:  cfg.LogLevel,
		Format: "text",
		Output: c.stderr,
	}))

	client := recordsdk.NewSDKClient(cfg.APIURL)
	client.HTTPClient.Timeout = time.Duration(cfg.Timeout)

	prompter := &termPrompter{
		in:          c.stdin,
		out:         c.stderr,
		assumeYes:   c.assumeYes,
		interactive: c.isTerminal(),
	}

	c.vm = console.NewViewModel(client, prompter, logger)
	logger.Debug("configured", "api_url", cfg.APIURL, "timeout", time.Duration(cfg.Timeout))
	return nil
}

func main() {
	if err := newCLI(os.Stdin, os.Stdout, os.Stderr).rootCmd().Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

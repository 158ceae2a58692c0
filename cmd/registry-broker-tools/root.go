package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/hashgraph-online/registry-broker-tools-go/adapters/mcpserver"
	"github.com/hashgraph-online/registry-broker-tools-go/pkg/agentlookup"
	"github.com/hashgraph-online/registry-broker-tools-go/pkg/config"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var errToolFailed = errors.New("tool reported failure")

type globalFlags struct {
	configFile string
	envFile    string
	baseURL    string
	apiKey     string
	timeout    time.Duration
	logLevel   string
}

func newRootCommand(stdout io.Writer, stderr io.Writer) *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:           "registry-broker-tools",
		Short:         "Discover AI agents through the HOL Registry Broker",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	persistent := rootCmd.PersistentFlags()
	persistent.StringVar(&flags.configFile, "config", "", "path to a TOML config file")
	persistent.StringVar(&flags.envFile, "env-file", ".env", "optional .env file to load")
	persistent.StringVar(&flags.baseURL, "base-url", "", "Registry Broker API base URL")
	persistent.StringVar(&flags.apiKey, "api-key", "", "Registry Broker API key")
	persistent.DurationVar(&flags.timeout, "timeout", 0, "HTTP timeout for broker requests")
	persistent.StringVar(&flags.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		newSearchCommand(flags, stderr),
		newDetailsCommand(flags, stderr),
		newMCPCommand(flags, stderr),
	)
	return rootCmd
}

func newSearchCommand(flags *globalFlags, stderr io.Writer) *cobra.Command {
	var (
		protocol   string
		capability string
		limit      int
	)
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search for agents by free text or a JSON query",
		Long: `Search the Registry Broker index. The query may be plain text or a JSON
object with query, protocol, capability and limit keys. The --protocol,
--capability and --limit flags build the JSON object for you.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter, err := buildAdapter(flags, stderr)
			if err != nil {
				return err
			}

			input := strings.Join(args, " ")
			if protocol != "" || capability != "" || cmd.Flags().Changed("limit") {
				payload, err := json.Marshal(agentlookup.SearchQuery{
					Query:      &input,
					Protocol:   protocol,
					Capability: capability,
					Limit:      float64(limit),
				})
				if err != nil {
					return err
				}
				input = string(payload)
			}

			output, searchErr := adapter.Search(cmd.Context(), input)
			return printOutput(cmd, output, searchErr)
		},
	}
	cmd.Flags().StringVar(&protocol, "protocol", "", "filter by protocol: nanda, mcp, openrouter, a2a, virtuals, olas")
	cmd.Flags().StringVar(&capability, "capability", "", "filter by capability: chat, code, research, creative, analysis")
	cmd.Flags().IntVar(&limit, "limit", agentlookup.DefaultLimit, "maximum number of results")
	return cmd
}

func newDetailsCommand(flags *globalFlags, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "details <uaid>",
		Short: "Show the Registry Broker record of one agent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter, err := buildAdapter(flags, stderr)
			if err != nil {
				return err
			}
			output, detailsErr := adapter.Details(cmd.Context(), args[0])
			return printOutput(cmd, output, detailsErr)
		},
	}
}

func newMCPCommand(flags *globalFlags, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve both tools over MCP on stdin/stdout",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, logger, err := loadSettings(flags, stderr)
			if err != nil {
				return err
			}
			adapter, err := newAdapter(cfg, &logger)
			if err != nil {
				return err
			}
			logger.Info().Str("base_url", adapter.BaseURL()).Msg("serving registry broker tools over MCP stdio")
			return mcpserver.ServeStdio(mcpserver.NewServer(adapter, mcpserver.ServerOptions{Logger: &logger}))
		},
	}
}

func buildAdapter(flags *globalFlags, stderr io.Writer) (*agentlookup.Adapter, error) {
	cfg, logger, err := loadSettings(flags, stderr)
	if err != nil {
		return nil, err
	}
	return newAdapter(cfg, &logger)
}

func newAdapter(cfg config.Config, logger *zerolog.Logger) (*agentlookup.Adapter, error) {
	return agentlookup.New(agentlookup.Options{
		BaseURL:     cfg.BaseURL,
		APIKey:      cfg.APIKey,
		HTTPTimeout: cfg.HTTPTimeout(),
		Logger:      logger,
	})
}

// loadSettings resolves configuration with command-line flags taking
// precedence over every other source.
func loadSettings(flags *globalFlags, stderr io.Writer) (config.Config, zerolog.Logger, error) {
	loadOptions := config.LoadOptions{ConfigFile: flags.configFile}
	if strings.TrimSpace(flags.envFile) != "" {
		loadOptions.EnvFiles = []string{flags.envFile}
	}
	cfg, err := config.Load(loadOptions)
	if err != nil {
		return config.Config{}, zerolog.Nop(), err
	}

	if strings.TrimSpace(flags.baseURL) != "" {
		cfg.BaseURL = strings.TrimSpace(flags.baseURL)
	}
	if strings.TrimSpace(flags.apiKey) != "" {
		cfg.APIKey = strings.TrimSpace(flags.apiKey)
	}
	if flags.timeout > 0 {
		cfg.Timeout = config.Duration(flags.timeout)
	}
	if strings.TrimSpace(flags.logLevel) != "" {
		cfg.LogLevel = strings.TrimSpace(flags.logLevel)
	}

	return cfg, newLogger(stderr, cfg.LogLevel), nil
}

func newLogger(stderr io.Writer, level string) zerolog.Logger {
	logLevel, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		logLevel = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.RFC3339}).
		Level(logLevel).
		With().
		Timestamp().
		Logger()
}

func printOutput(cmd *cobra.Command, output string, toolErr error) error {
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), output); err != nil {
		return err
	}
	if toolErr != nil {
		return errToolFailed
	}
	return nil
}

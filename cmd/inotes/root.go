package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/inotes/inotes/internal/config"
	"github.com/inotes/inotes/internal/server"
)

var (
	flagTransport string
	flagHost      string
	flagPort      int
	flagVerbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "inotes",
	Short: "MCP gateway for Apple Notes",
	Long: `inotes exposes four MCP tools (create_note, get_note, append_to_note,
get_notes_list) to a language-model client and translates each one into an
AppleScript call against the Notes application. All operations are scoped
to a single fixed folder; the gateway itself stores nothing.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		if cmd.Flags().Changed("transport") {
			cfg.Transport = flagTransport
		}
		if cmd.Flags().Changed("host") {
			cfg.Host = flagHost
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = flagPort
		}

		setupLogging(cfg.LogLevel)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return server.New(cfg).Run(ctx)
	},
}

// setupLogging configures the global zerolog logger. Logs go to stderr:
// stdout belongs to the stdio transport.
func setupLogging(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	if flagVerbose {
		lvl = zerolog.DebugLevel
	}

	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVar(&flagTransport, "transport", config.DefaultTransport, "MCP transport: stdio or sse")
	rootCmd.Flags().StringVar(&flagHost, "host", config.DefaultHost, "bind host for the sse transport")
	rootCmd.Flags().IntVar(&flagPort, "port", config.DefaultPort, "bind port for the sse transport")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
}

// Package ctl implements the solvctl command tree: parsing and preflighting
// preload configuration, and querying a running solverd.
package ctl

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Config carries persistent flag values into the command actions.
type Config struct {
	Addr   string
	LogLvl string
}

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

// SetLogLevel adjusts the CLI logger level.
func SetLogLevel(level string) {
	switch strings.ToLower(level) {
	case "debug":
		logger = logger.Level(zerolog.DebugLevel)
	case "warn", "warning":
		logger = logger.Level(zerolog.WarnLevel)
	case "error", "err":
		logger = logger.Level(zerolog.ErrorLevel)
	default:
		logger = logger.Level(zerolog.InfoLevel)
	}
}

// buildRootCmdWith constructs the Cobra command tree wired to the fn* actions.
func buildRootCmdWith(cfg *Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "solvctl",
		Short:         "Inspect and preflight solver library preloads",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&cfg.Addr, "addr", cfg.Addr, "solverd address for remote commands (defaults SOLVERD_ADDR or http://localhost:8080)")
	root.PersistentFlags().StringVar(&cfg.LogLvl, "log-level", cfg.LogLvl, "Log level: debug|info|warn|error")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		SetLogLevel(cfg.LogLvl)
	}

	parseCmd := &cobra.Command{
		Use:     "parse <spec>",
		Short:   "Validate a preload spec string and print the mapping",
		Example: `  solvctl parse "highs:/opt/highs/lib/libhighs.so,ipopt:/opt/coin/lib/libipopt.so"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return fnParse(cmd.OutOrStdout(), args[0])
		},
	}

	preflightCmd := &cobra.Command{
		Use:   "preflight <spec|path>",
		Short: "Attempt a real dynamic load of each configured library in this process",
		Long: "Preflight validates each name:path entry and performs an actual OS dynamic\n" +
			"load in the solvctl process, surfacing the dynamic linker's diagnostics\n" +
			"(missing dependencies, ABI mismatches) before a host application is pointed\n" +
			"at the path. A bare library path derives the solver name from the filename.",
		Example: "  solvctl preflight \"highs:/opt/highs/lib/libhighs.so\"\n" +
			"  solvctl preflight /opt/highs/lib/libhighs.so",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return fnPreflight(cmd.OutOrStdout(), args[0])
		},
	}

	reportCmd := &cobra.Command{
		Use:   "report <name>",
		Short: "Ask a running solverd which binary is active for a solver",
		Example: "  solvctl report highs\n" +
			"  solvctl report highs --observe",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			observe, _ := cmd.Flags().GetBool("observe")
			return fnReport(cmd.OutOrStdout(), cfg.Addr, args[0], observe)
		},
	}
	reportCmd.Flags().Bool("observe", false, "allow solverd to initialize the framework as a side effect")

	root.AddCommand(parseCmd, preflightCmd, reportCmd)
	return root
}

// Execute runs the solvctl command tree against os.Args.
func Execute() error {
	cfg := &Config{Addr: envStr("SOLVERD_ADDR", "http://localhost:8080"), LogLvl: "info"}
	return buildRootCmdWith(cfg).Execute()
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

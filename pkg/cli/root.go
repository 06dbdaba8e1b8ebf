package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/getmockd/conneg/pkg/config"
	"github.com/getmockd/conneg/pkg/logging"
	"github.com/spf13/cobra"
)

var (
	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// globalFlags holds the persistent flags shared by every subcommand.
type globalFlags struct {
	jsonOutput bool
	configPath string
	logLevel   string
	logFormat  string
}

// NewRootCmd builds the conneg command tree.
func NewRootCmd() *cobra.Command {
	g := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "conneg",
		Short: "conneg inspects HTTP content negotiation",
		Long: `conneg parses Accept headers the way the negotiation library does and shows
how media ranges are ranked and which representation a server would choose.

Offer profiles can be provided via a configuration file, either with --config
or the CONNEG_CONFIG environment variable.`,
		SilenceUsage:  true,
		SilenceErrors: true, // Main prints errors
	}

	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&g.jsonOutput, "json", false, "Output command results in JSON format")
	pf.StringVar(&g.configPath, "config", "", "Path to config file (default: $"+config.EnvConfigPath+")")
	pf.StringVar(&g.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	pf.StringVar(&g.logFormat, "log-format", "", "Log format: text, json (overrides config)")

	rootCmd.AddCommand(
		newRankCmd(g),
		newMatchCmd(g),
		newQualityCmd(g),
		newProfilesCmd(g),
		newVersionCmd(g),
	)
	return rootCmd
}

// Main runs the CLI with os.Args and returns the process exit code.
func Main() int {
	return run(os.Args[1:], os.Stdout, os.Stderr)
}

func run(args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// loadConfig reads the file named by --config, $CONNEG_CONFIG or the
// built-in default, in that order.
func (g *globalFlags) loadConfig() (*config.Config, error) {
	return config.Load(g.configPath)
}

// logger builds the command logger on stderr. Flags override the config.
func (g *globalFlags) logger(cmd *cobra.Command, cfg *config.Config) *slog.Logger {
	lc := logging.DefaultConfig()
	if cfg != nil {
		lc = cfg.LoggingConfig()
	}
	if g.logLevel != "" {
		lc.Level = logging.ParseLevel(g.logLevel)
	}
	if g.logFormat != "" {
		lc.Format = logging.ParseFormat(g.logFormat)
	}
	lc.Output = cmd.ErrOrStderr()
	return logging.New(lc)
}

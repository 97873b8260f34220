// Command ethrpc is a thin terminal front end for the ethrpc library: invoke
// a single method, list the registry, or run a YAML batch file.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmagro/ethrpc/internal/config"
	"github.com/dmagro/ethrpc/internal/output"
)

var (
	flagEndpoint string
	flagConfig   string
	flagTimeout  time.Duration
	flagNoColor  bool
)

func main() {
	root := &cobra.Command{
		Use:           "ethrpc",
		Short:         "Ethereum JSON-RPC client",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			if flagNoColor {
				output.DisableColors()
			}
		},
	}

	root.PersistentFlags().StringVar(&flagEndpoint, "endpoint", "", "RPC endpoint (overrides config)")
	root.PersistentFlags().StringVar(&flagConfig, "config", "", "path to YAML config file")
	root.PersistentFlags().DurationVar(&flagTimeout, "timeout", 0, "HTTP request timeout (overrides config)")
	root.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable color output")

	root.AddCommand(newCallCmd())
	root.AddCommand(newMethodsCmd())
	root.AddCommand(newBatchCmd())

	if err := root.Execute(); err != nil {
		output.Errorf(os.Stderr, "%v", err)
		os.Exit(1)
	}
}

// loadConfig resolves the effective settings: defaults, then the config
// file, then command-line flags.
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if flagConfig != "" {
		loaded, err := config.Load(flagConfig)
		if err != nil {
			return nil, fmt.Errorf("config %s: %w", flagConfig, err)
		}
		cfg = loaded
	}
	if flagEndpoint != "" {
		cfg.Endpoint = flagEndpoint
	}
	if flagTimeout > 0 {
		cfg.Timeout = flagTimeout
	}
	return cfg, nil
}

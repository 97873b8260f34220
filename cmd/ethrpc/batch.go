package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmagro/ethrpc"
	"github.com/dmagro/ethrpc/internal/output"
)

// batchFile is the YAML layout consumed by the batch command:
//
//	calls:
//	  - method: eth_block_number
//	  - method: eth_get_balance
//	    args: ["0xde0b295669a9fd93d5f28d9ec85e40f4cb697bae", "latest"]
type batchFile struct {
	Calls []struct {
		Method string `yaml:"method"`
		Args   []any  `yaml:"args"`
	} `yaml:"calls"`
}

func newBatchCmd() *cobra.Command {
	var concurrency int

	cmd := &cobra.Command{
		Use:   "batch <file.yaml>",
		Short: "Run a YAML batch of RPC calls concurrently",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if concurrency > 0 {
				cfg.MaxConcurrency = concurrency
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read batch file: %w", err)
			}
			var batch batchFile
			if err := yaml.Unmarshal(data, &batch); err != nil {
				return fmt.Errorf("failed to parse batch file: %w", err)
			}
			if len(batch.Calls) == 0 {
				return fmt.Errorf("batch file has no calls")
			}

			calls := make([]ethrpc.Call, len(batch.Calls))
			for i, c := range batch.Calls {
				if c.Method == "" {
					return fmt.Errorf("call %d: method is required", i)
				}
				calls[i] = ethrpc.Call{Method: c.Method, Args: c.Args}
			}

			client := ethrpc.NewAsyncClient(cfg.Endpoint,
				ethrpc.WithTimeout(cfg.Timeout),
				ethrpc.WithMaxConcurrency(cfg.MaxConcurrency))
			defer client.Close()

			output.Infof(os.Stderr, "running %d calls against %s", len(calls), cfg.Endpoint)
			results, err := client.InvokeAll(context.Background(), calls)
			if err != nil {
				return err
			}

			for i, raw := range results {
				if err := output.RenderResponse(os.Stdout, calls[i].Method, raw); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "max in-flight requests (overrides config)")
	return cmd
}

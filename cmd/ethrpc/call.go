package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmagro/ethrpc"
	"github.com/dmagro/ethrpc/internal/output"
)

func newCallCmd() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "call <method> [args...]",
		Short: "Invoke one RPC method and print the raw response",
		Long: `Invoke one RPC method by its client name (eth_get_balance) or wire name
(eth_getBalance). Arguments are parsed as integers, booleans, null, JSON
literals, or strings, in that order of preference.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			client := ethrpc.NewClient(cfg.Endpoint, ethrpc.WithTimeout(cfg.Timeout))
			defer client.Close()

			ctx := context.Background()
			method := args[0]
			params := parseArgs(args[1:])

			var resp []byte
			if raw {
				resp, err = client.Call(ctx, method, params...)
			} else {
				resp, err = client.Invoke(ctx, method, params...)
			}
			if err != nil {
				return err
			}
			return output.RenderResponse(os.Stdout, method, resp)
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "skip argument shaping and send params verbatim")
	return cmd
}

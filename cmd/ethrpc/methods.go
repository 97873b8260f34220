package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmagro/ethrpc"
	"github.com/dmagro/ethrpc/internal/output"
)

func newMethodsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "methods [prefix]",
		Short: "List registered RPC methods",
		Long: `List every registered method with its client name, wire name and request
id. An optional prefix filters the listing (e.g. "parity_set").`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			descriptors := ethrpc.DefaultRegistry().Methods()
			if len(args) == 1 {
				prefix := args[0]
				filtered := descriptors[:0]
				for _, d := range descriptors {
					if strings.HasPrefix(d.ClientName, prefix) || strings.HasPrefix(d.WireName, prefix) {
						filtered = append(filtered, d)
					}
				}
				descriptors = filtered
			}
			output.RenderMethods(os.Stdout, descriptors)
			return nil
		},
	}
}

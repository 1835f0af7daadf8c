package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vgcpu/vgbench/ir"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file.irbin>",
		Short: "Decode and summarize an IR scene file without rendering it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			report, err := ir.Validate(data)
			if err != nil {
				return fmt.Errorf("%s is not a valid IR scene: %w", args[0], err)
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		},
	}
}

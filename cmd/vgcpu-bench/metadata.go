package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vgcpu/vgbench"
	"github.com/vgcpu/vgbench/environment"
)

func newMetadataCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "metadata",
		Short: "Print suite version and collected environment info as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := struct {
				SuiteVersion string                  `json:"suite_version"`
				IRFormatVer  string                  `json:"ir_format_version"`
				Environment  vgbench.EnvironmentInfo `json:"environment"`
			}{
				SuiteVersion: vgbench.Version,
				IRFormatVer:  vgbench.IRFormatVersion,
				Environment:  environment.Collect(),
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(out); err != nil {
				return fmt.Errorf("encode metadata: %w", err)
			}
			return nil
		},
	}
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vgcpu/vgbench/backend"
	"github.com/vgcpu/vgbench/scenecatalog"
)

func newListCmd() *cobra.Command {
	var manifestPath, assetsDir string

	cmd := &cobra.Command{
		Use:   "list backends|scenes",
		Short: "List registered backends or cataloged scenes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "backends":
				for _, name := range backend.Available() {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
				return nil
			case "scenes":
				if manifestPath == "" {
					return fmt.Errorf("--manifest is required to list scenes")
				}
				cat, err := scenecatalog.LoadManifest(manifestPath, assetsDir)
				if err != nil {
					return err
				}
				for _, id := range cat.SceneIDs() {
					fmt.Fprintln(cmd.OutOrStdout(), id)
				}
				return nil
			default:
				return fmt.Errorf("unknown list target %q: want \"backends\" or \"scenes\"", args[0])
			}
		},
	}

	cmd.Flags().StringVar(&manifestPath, "manifest", "", "scene manifest JSON path (required for \"scenes\")")
	cmd.Flags().StringVar(&assetsDir, "assets-dir", ".", "directory .irbin paths in the manifest are relative to")
	return cmd
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

type showCmdConfig struct {
	*rootCmdConfig
	treeInput string
}

func showCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &showCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print a tree",
		Long:  `Print a tree as text, one node per line`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if config.treeInput == "" {
				return exit(1, fmt.Errorf("required tree flag was not set"))
			}
			t, err := loadTree(cmd.Context(), config.treeInput)
			if err != nil {
				return exit(3, err)
			}
			splits, leaves, depth := t.Stats()
			config.Logger().Debug("tree loaded", "features", t.Features, "class", t.Class, "splits", splits, "leaves", leaves, "depth", depth)
			fmt.Fprint(cmd.OutOrStdout(), t)
			return nil
		},
	}
	cmd.Flags().StringVarP(&(config.treeInput), "tree", "t", "", "path to a JSON file or redis URL from which the tree to show will be read (required)")
	return cmd
}

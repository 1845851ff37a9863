package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pbanos/id3/feature"
	"github.com/pbanos/id3/feature/yaml"
	"github.com/pbanos/id3/set"
	"github.com/pbanos/id3/set/prompt"
	"github.com/pbanos/id3/tree"
)

type classifyCmdConfig struct {
	*rootCmdConfig
	treeInput     string
	metadataInput string
}

func classifyCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &classifyCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "classify [VALUE...]",
		Short: "Classify a vector of feature values",
		Long: `Use a tree to classify a vector given as one value per feature, in the order the metadata lists them.
Without values, each of them is requested and read from STDIN.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := config.Validate()
			if err != nil {
				return exit(1, err)
			}
			md, err := yaml.ReadMetadataFromFile(config.metadataInput)
			if err != nil {
				return exit(2, err)
			}
			t, err := loadTree(cmd.Context(), config.treeInput)
			if err != nil {
				return exit(3, err)
			}
			var vector []feature.Value
			if len(args) == 0 {
				vector, err = prompt.ReadVector(cmd.InOrStdin(), md, prompt.NewWriterRequester(cmd.ErrOrStderr()))
			} else {
				vector, err = set.ParseVector(md, args)
			}
			if err != nil {
				return exit(4, err)
			}
			label, err := tree.Classify(t.Root, md.Labels(), vector)
			if err != nil {
				if errors.Is(err, tree.ErrMissingValue) {
					return exit(5, err)
				}
				return exit(6, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), label)
			return nil
		},
	}
	cmd.Flags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file with metadata describing the features (required)")
	cmd.Flags().StringVarP(&(config.treeInput), "tree", "t", "", "path to a JSON file or redis URL from which the tree will be read (required)")
	return cmd
}

func (ccc *classifyCmdConfig) Validate() error {
	if ccc.treeInput == "" {
		return fmt.Errorf("required tree flag was not set")
	}
	if ccc.metadataInput == "" {
		return fmt.Errorf("required metadata flag was not set")
	}
	return nil
}

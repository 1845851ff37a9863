package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pbanos/id3/feature/yaml"
)

type testCmdConfig struct {
	*rootCmdConfig
	treeInput     string
	dataInput     string
	table         string
	metadataInput string
}

func testCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &testCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Test the performance of a tree",
		Long:  `Test the performance of a tree against a test data set`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := config.Validate()
			if err != nil {
				return exit(1, err)
			}
			ctx := cmd.Context()
			logger := config.Logger()
			md, err := yaml.ReadMetadataFromFile(config.metadataInput)
			if err != nil {
				return exit(2, err)
			}
			t, err := loadTree(ctx, config.treeInput)
			if err != nil {
				return exit(3, err)
			}
			if !t.Features.Equal(md.Labels()) {
				return exit(5, fmt.Errorf("tree was grown with features %v, metadata describes %v", t.Features, md.Labels()))
			}
			testingSet, err := readDataset(ctx, logger, cmd.InOrStdin(), config.dataInput, config.table, md)
			if err != nil {
				return exit(4, fmt.Errorf("reading testing set: %w", err))
			}
			logger.Debug("testing tree", "records", len(testingSet))
			successRate, missingCount, err := t.Test(ctx, testingSet)
			if err != nil {
				return exit(6, fmt.Errorf("testing tree: %w", err))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%f success rate, failed to classify %d records\n", successRate, missingCount)
			return nil
		},
	}
	cmd.Flags().StringVarP(&(config.dataInput), "input", "i", "", "path to an input CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL with data to test the tree against (defaults to STDIN, interpreted as CSV)")
	cmd.Flags().StringVar(&(config.table), "table", "", "table or collection to read the data from when the input is a database (defaults to samples)")
	cmd.Flags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file with metadata describing the features and the class available on the input (required)")
	cmd.Flags().StringVarP(&(config.treeInput), "tree", "t", "", "path to a JSON file or redis URL from which the tree to test will be read (required)")
	return cmd
}

func (tcc *testCmdConfig) Validate() error {
	if tcc.treeInput == "" {
		return fmt.Errorf("required tree flag was not set")
	}
	if tcc.metadataInput == "" {
		return fmt.Errorf("required metadata flag was not set")
	}
	return nil
}

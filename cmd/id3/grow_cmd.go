package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pbanos/id3"
	"github.com/pbanos/id3/feature/yaml"
	"github.com/pbanos/id3/tree"
)

type growCmdConfig struct {
	*rootCmdConfig
	dataInput     string
	table         string
	metadataInput string
	output        string
	workers       int
}

func growCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &growCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Grow a tree from a set of data",
		Long:  `Grow a decision tree from a set of data to predict its class feature.`,
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
			trainingSet, err := readDataset(ctx, logger, cmd.InOrStdin(), config.dataInput, config.table, md)
			if err != nil {
				return exit(4, fmt.Errorf("reading training set: %w", err))
			}
			logger.Debug("growing tree", "records", len(trainingSet), "features", len(md.Features), "class", md.Class.Name)
			g := &id3.Grower{Workers: config.workers, Logger: logger}
			root, err := g.Grow(ctx, trainingSet, md.Labels())
			if err != nil {
				return exit(8, fmt.Errorf("growing the tree: %w", err))
			}
			t := tree.New(root, md.Labels(), md.Class.Name)
			splits, leaves, depth := t.Stats()
			logger.Debug("tree grown", "splits", splits, "leaves", leaves, "depth", depth)
			err = saveTree(ctx, cmd.OutOrStdout(), config.output, t)
			if err != nil {
				return exit(9, fmt.Errorf("writing the tree: %w", err))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&(config.dataInput), "input", "i", "", "path to an input CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL with data to grow the tree from (defaults to STDIN, interpreted as CSV)")
	cmd.Flags().StringVar(&(config.table), "table", "", "table or collection to read the data from when the input is a database (defaults to samples)")
	cmd.Flags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file with metadata describing the features and the class available on the input (required)")
	cmd.Flags().StringVarP(&(config.output), "output", "o", "", "path to a file to which the grown tree will be written in JSON format, or a redis URL with the tree name as fragment (defaults to STDOUT)")
	cmd.Flags().IntVarP(&(config.workers), "workers", "w", 1, "number of features evaluated concurrently when choosing a split")
	return cmd
}

func (gcc *growCmdConfig) Validate() error {
	if gcc.metadataInput == "" {
		return fmt.Errorf("required metadata flag was not set")
	}
	if gcc.workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", gcc.workers)
	}
	return nil
}

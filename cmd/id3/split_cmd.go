package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/feature/yaml"
	"github.com/pbanos/id3/set/csv"
)

type splitCmdConfig struct {
	*rootCmdConfig
	dataInput        string
	metadataInput    string
	output           string
	splitOutput      string
	splitProbability int
	seed             int64
}

func splitCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &splitCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split a set of data in two",
		Long:  `Split a CSV set of data in two at random, usually to obtain a training set and a testing set`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := config.Validate()
			if err != nil {
				return exit(1, err)
			}
			logger := config.Logger()
			md, err := yaml.ReadMetadataFromFile(config.metadataInput)
			if err != nil {
				return exit(2, err)
			}

			var in io.Reader = cmd.InOrStdin()
			if config.dataInput != "" {
				f, err := os.Open(config.dataInput)
				if err != nil {
					return exit(4, fmt.Errorf("reading input set from %s: %w", config.dataInput, err))
				}
				defer f.Close()
				in = f
			}

			seed := config.seed
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			randomizer := rand.New(rand.NewSource(seed))
			var kept, split dataset.Dataset
			err = csv.ReadDatasetByRecord(in, md, func(_ int, r dataset.Record) (bool, error) {
				if 100*randomizer.Float64() < float64(config.splitProbability) {
					split = append(split, r)
				} else {
					kept = append(kept, r)
				}
				return true, nil
			})
			if err != nil {
				return exit(4, err)
			}

			out := cmd.OutOrStdout()
			if config.output != "" {
				f, err := os.Create(config.output)
				if err != nil {
					return exit(5, err)
				}
				defer f.Close()
				out = f
			}
			err = csv.WriteDataset(out, kept, md)
			if err != nil {
				return exit(6, fmt.Errorf("writing output set: %w", err))
			}
			sf, err := os.Create(config.splitOutput)
			if err != nil {
				return exit(5, err)
			}
			defer sf.Close()
			err = csv.WriteDataset(sf, split, md)
			if err != nil {
				return exit(6, fmt.Errorf("writing split set: %w", err))
			}
			logger.Info("set split", "records", len(kept)+len(split), "output", len(kept), "split", len(split))
			return nil
		},
	}
	cmd.Flags().StringVarP(&(config.dataInput), "input", "i", "", "path to an input CSV file with the set to split (defaults to STDIN)")
	cmd.Flags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file with metadata describing the features and the class available on the input (required)")
	cmd.Flags().StringVarP(&(config.output), "output", "o", "", "path to a file to dump the output set (defaults to STDOUT)")
	cmd.Flags().IntVarP(&(config.splitProbability), "split-probability", "p", 20, "probability as percent integer that a record of the set will be assigned to the split set")
	cmd.Flags().StringVarP(&(config.splitOutput), "split-output", "s", "", "path to a file to dump the split set (required)")
	cmd.Flags().Int64Var(&(config.seed), "seed", 0, "seed for the random assignment of records (defaults to the current time)")
	return cmd
}

func (scc *splitCmdConfig) Validate() error {
	if scc.metadataInput == "" {
		return fmt.Errorf("required metadata flag was not set")
	}
	if scc.splitOutput == "" {
		return fmt.Errorf("required split-output flag was not set")
	}
	if scc.splitProbability < 0 || scc.splitProbability > 100 {
		return fmt.Errorf("split-probability flag was set to an invalid value: it must be set to an integer between 0 and 100")
	}
	return nil
}

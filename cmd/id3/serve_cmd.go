package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/pbanos/id3"
	"github.com/pbanos/id3/feature/yaml"
	"github.com/pbanos/id3/metrics"
	"github.com/pbanos/id3/server"
	"github.com/pbanos/id3/tree"
)

const shutdownTimeout = 5 * time.Second

type serveCmdConfig struct {
	*rootCmdConfig
	treeInput     string
	dataInput     string
	table         string
	metadataInput string
	addr          string
	workers       int
}

func serveCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &serveCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a tree over HTTP",
		Long: `Serve a tree over HTTP to classify vectors posted to /classify.
The tree is either loaded with the tree flag or grown at startup from the data
given with the input and metadata flags.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := config.Validate()
			if err != nil {
				return exit(1, err)
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			logger := config.Logger()

			reg := prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
			m := metrics.New(reg)

			var t *tree.Tree
			if config.treeInput != "" {
				t, err = loadTree(ctx, config.treeInput)
				if err != nil {
					return exit(3, err)
				}
			} else {
				md, err := yaml.ReadMetadataFromFile(config.metadataInput)
				if err != nil {
					return exit(2, err)
				}
				trainingSet, err := readDataset(ctx, logger, cmd.InOrStdin(), config.dataInput, config.table, md)
				if err != nil {
					return exit(4, fmt.Errorf("reading training set: %w", err))
				}
				g := &id3.Grower{Workers: config.workers, Logger: logger, Observer: m}
				root, err := g.Grow(ctx, trainingSet, md.Labels())
				if err != nil {
					return exit(8, fmt.Errorf("growing the tree: %w", err))
				}
				t = tree.New(root, md.Labels(), md.Class.Name)
			}

			srv := &http.Server{
				Addr:              config.addr,
				Handler:           server.NewHandler(t, m, reg, logger),
				ReadHeaderTimeout: 10 * time.Second,
			}
			errc := make(chan error, 1)
			go func() {
				logger.Info("serving tree", "addr", config.addr, "features", t.Features, "class", t.Class)
				errc <- srv.ListenAndServe()
			}()
			select {
			case err = <-errc:
			case <-ctx.Done():
				logger.Info("shutting down")
				sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				err = srv.Shutdown(sctx)
			}
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return exit(10, err)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&(config.treeInput), "tree", "t", "", "path to a JSON file or redis URL from which the tree to serve will be read")
	cmd.Flags().StringVarP(&(config.dataInput), "input", "i", "", "path to an input CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL with data to grow the tree from when no tree is given (defaults to STDIN, interpreted as CSV)")
	cmd.Flags().StringVar(&(config.table), "table", "", "table or collection to read the data from when the input is a database (defaults to samples)")
	cmd.Flags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file with metadata describing the features and the class available on the input (required when no tree is given)")
	cmd.Flags().StringVar(&(config.addr), "addr", ":8080", "address to listen on")
	cmd.Flags().IntVarP(&(config.workers), "workers", "w", 1, "number of features evaluated concurrently when choosing a split")
	return cmd
}

func (scc *serveCmdConfig) Validate() error {
	if scc.treeInput == "" && scc.metadataInput == "" {
		return fmt.Errorf("either the tree or the metadata flag must be set")
	}
	if scc.workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", scc.workers)
	}
	if scc.addr == "" {
		return fmt.Errorf("addr must not be empty")
	}
	return nil
}

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type rootCmdConfig struct {
	verbose    bool
	configFile string
	logger     *slog.Logger
	stderr     io.Writer
}

// exitError carries the exit code the process should end with.
type exitError struct {
	code int
	err  error
}

func (ee *exitError) Error() string {
	return ee.err.Error()
}

func (ee *exitError) Unwrap() error {
	return ee.err
}

func exit(code int, err error) error {
	return &exitError{code, err}
}

func main() {
	if err := cliParser().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		var ee *exitError
		if errors.As(err, &ee) {
			os.Exit(ee.code)
		}
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	config := &rootCmdConfig{}
	rootCmd := &cobra.Command{
		Use:           "id3",
		Short:         "id3 is a tool to grow decision trees",
		Long:          `A tool to grow decision trees from your data with the ID3 algorithm, test them, and use them to classify new data`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.stderr = cmd.ErrOrStderr()
			return config.bindEnvironment(cmd)
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&(config.verbose), "verbose", "v", false, "log debug information on STDERR")
	rootCmd.PersistentFlags().StringVar(&(config.configFile), "config", "", "path to a YAML, JSON or TOML file with values for any flag")
	rootCmd.AddCommand(
		versionCmd(),
		growCmd(config),
		testCmd(config),
		classifyCmd(config),
		showCmd(config),
		splitCmd(config),
		serveCmd(config),
	)
	return rootCmd
}

/*
bindEnvironment fills every flag of the command that was not set on the
command line with the value found for it on the environment (ID3_ prefix,
dashes as underscores, e.g. ID3_CLASS_FEATURE) or the config file.
*/
func (rcc *rootCmdConfig) bindEnvironment(cmd *cobra.Command) error {
	v := viper.New()
	v.SetEnvPrefix("id3")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if rcc.configFile != "" {
		v.SetConfigFile(rcc.configFile)
		if err := v.ReadInConfig(); err != nil {
			return exit(1, fmt.Errorf("reading config file %s: %w", rcc.configFile, err))
		}
	}
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return exit(1, err)
	}
	var err error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if err != nil || f.Changed || !v.IsSet(f.Name) {
			return
		}
		if serr := cmd.Flags().Set(f.Name, v.GetString(f.Name)); serr != nil {
			err = exit(1, fmt.Errorf("setting %s from environment: %w", f.Name, serr))
		}
	})
	return err
}

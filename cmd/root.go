// Package cmd provides the root command and CLI setup for countroo.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"countroo.dev/pkg/countroo/internal/adapter"
	"countroo.dev/pkg/countroo/internal/config"
)

var fsAdapter adapter.SourceFSAdapter
var loader *config.Loader

// verboseFlag switches the log file to debug level.
var verboseFlag bool

// logFileFlag overrides the rotating log file location.
var logFileFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	loader = config.NewLoader(fsAdapter)
}

const extensionsHelp = `Extensions are matched case-insensitively and given without the leading dot:
  --ext go --ext rs      count only Go and Rust files
  --certain              count the curated list of common languages`

const rootLongDescription = `Countroo counts lines of source code in a project directory.

It walks the project, counts the lines of every file whose extension is
selected, and prints the total together with a per-extension breakdown.

` + extensionsHelp

const countLongDescription = `Count lines of code under a path (default: the project root).

Relative paths given as arguments resolve against the working directory.
Blank lines are ignored unless --empty-lines is set.

` + extensionsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "countroo",
		Short: "Source code line counter",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(logFileFlag, viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "write debug level logs")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "path of the rotating log file")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

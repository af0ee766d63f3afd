package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"countroo.dev/pkg/countroo/internal/adapter"
	"countroo.dev/pkg/countroo/internal/config"
	"countroo.dev/pkg/countroo/internal/controller"
	"countroo.dev/pkg/countroo/internal/domain"
	m "countroo.dev/pkg/countroo/internal/model"
)

var countExtensionsFlag []string
var countEmptyLinesFlag bool
var countParallelFlag int
var countFormatFlag string
var countOutFlag string
var countColorFlag string
var countConfigFlag string
var countCertainFlag bool

func newCountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count [path]",
		Short: "Count lines of code",
		Long:  countLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
			defer stop()

			return runCount(ctx, cmd, args)
		},
	}

	configureCountFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(newCountCmd())
}

func configureCountFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceVarP(&countExtensionsFlag, extensionsFlagName, "e", viper.GetStringSlice(extensionsConfigKey), "file extensions to count (can be repeated)")
	bindFlagToConfig(cmd.Flags().Lookup(extensionsFlagName), extensionsConfigKey)

	cmd.Flags().BoolVar(&countEmptyLinesFlag, emptyLinesFlagName, viper.GetBool(emptyLinesConfigKey), "count blank lines too")
	bindFlagToConfig(cmd.Flags().Lookup(emptyLinesFlagName), emptyLinesConfigKey)

	cmd.Flags().IntVarP(&countParallelFlag, parallelFlagName, "p", viper.GetInt(parallelConfigKey), "number of parallel workers for counting")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), parallelConfigKey)

	formatNames := make([]string, 0, len(controller.Formats()))
	for _, f := range controller.Formats() {
		formatNames = append(formatNames, string(f))
	}

	cmd.Flags().StringVarP(&countFormatFlag, formatFlagName, "f", viper.GetString(formatConfigKey), "output format: "+strings.Join(formatNames, ", "))
	bindFlagToConfig(cmd.Flags().Lookup(formatFlagName), formatConfigKey)

	cmd.Flags().StringVarP(&countOutFlag, outputFlagName, "o", viper.GetString(outputConfigKey), "write the report to a file instead of stdout")
	bindFlagToConfig(cmd.Flags().Lookup(outputFlagName), outputConfigKey)

	cmd.Flags().StringVar(&countColorFlag, colorFlagName, viper.GetString(colorConfigKey), "colorize table output: auto, always, never")
	bindFlagToConfig(cmd.Flags().Lookup(colorFlagName), colorConfigKey)

	cmd.Flags().StringVarP(&countConfigFlag, configFlagName, "c", "",
		"load counting settings from a file ("+strings.Join(config.SupportedFileTypes(), ", ")+")")
	cmd.Flags().BoolVar(&countCertainFlag, certainFlagName, false, "count the curated list of common languages")
}

func runCount(ctx context.Context, cmd *cobra.Command, args []string) error {
	cfg, err := resolveCountConfig(args)
	if err != nil {
		return err
	}

	format, err := controller.ParseFormat(viper.GetString(formatConfigKey))
	if err != nil {
		return err
	}

	out := strings.TrimSpace(viper.GetString(outputConfigKey))

	colored, err := resolveColor(viper.GetString(colorConfigKey), out)
	if err != nil {
		return err
	}

	counter := domain.NewCounter(fsAdapter, cfg, viper.GetInt(parallelConfigKey))
	if countCertainFlag {
		_, err = counter.CountCertainTypes(ctx)
	} else {
		_, err = counter.CountAllTypes(ctx)
	}

	if err != nil {
		return err
	}

	var writer adapter.OutputWriter = adapter.NewStdoutWriter(cmd)
	if out != "" {
		writer = adapter.NewFileWriter(m.Path(out))
	}

	aggregate := counter.LastAggregate()

	ui := controller.NewSimpleUI(writer)
	err = ui.Display(ctx, aggregate, controller.WithFormat(format), controller.WithColor(colored))
	if err != nil {
		return err
	}

	if aggregate.Skipped > 0 {
		cmd.PrintErrf("warning: %d file(s) could not be read and were counted as zero\n", aggregate.Skipped)
	}

	return nil
}

// resolveCountConfig builds the run configuration. A path argument wins over
// both the config file and the count.path setting.
func resolveCountConfig(args []string) (config.Config, error) {
	var argPath m.Path

	if len(args) > 0 {
		abs, err := filepath.Abs(args[0])
		if err != nil {
			return config.Config{}, fmt.Errorf("%w: resolve %s: %w", m.ErrIO, args[0], err)
		}

		argPath = m.Path(abs)
	}

	if strings.TrimSpace(countConfigFlag) == "" {
		path := argPath
		if path == "" {
			path = m.Path(viper.GetString(pathConfigKey))
		}

		return loader.Builder().
			ProjectPath(path).
			Extensions(viper.GetStringSlice(extensionsConfigKey)...).
			CountEmptyLines(viper.GetBool(emptyLinesConfigKey)).
			Build()
	}

	base := argPath
	if base == "" {
		resolved, err := loader.ResolvePath(m.Path(viper.GetString(pathConfigKey)))
		if err != nil {
			return config.Config{}, err
		}

		base = resolved
	}

	cfg, err := loader.FromStructuredFile(m.Path(countConfigFlag), base)
	if err != nil {
		return config.Config{}, err
	}

	if argPath != "" {
		cfg.ProjectPath = argPath
		return cfg, nil
	}

	resolved, err := loader.ResolvePath(cfg.ProjectPath)
	if err != nil {
		return config.Config{}, err
	}

	cfg.ProjectPath = resolved

	return cfg, nil
}

func resolveColor(mode string, out string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", colorAuto:
		return out == "" && term.IsTerminal(int(os.Stdout.Fd())), nil
	case colorAlways:
		return true, nil
	case colorNever:
		return false, nil
	}

	return false, fmt.Errorf("%w: unsupported color mode %q", m.ErrConfiguration, mode)
}

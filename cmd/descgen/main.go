package main

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"time"

	crdberrors "github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	descgeninternal "github.com/sublee/descgen/internal/descgen"
)

var Version = "dev"

func init() {
	descgeninternal.Version = Version
}

// errReported is returned when diagnostics were already printed.
var errReported = errors.New("descgen failed")

var configFile string

var rootCmd = &cobra.Command{
	Use:   "descgen [flags] [patterns...]",
	Short: "Generate static descriptions for enum constants",
	Long: `Generate Description methods for enum types from annotations on their
constants.

Directives are declared in files tagged with "//go:build descgen":

  var _ = descgen.Describe[ChargerStatus]()

and each constant carries an annotation:

  const Connected ChargerStatus = iota //descgen:"Charger connected!"

Examples:
  descgen ./...                 # Generate descgen_gen.go in every package
  descgen --format ./status     # Allow format templates in annotations
  descgen -b integration -t .   # Extra build tags, include test files`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of descgen",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "descgen", Version)
	},
}

func init() {
	defineFlags(rootCmd.Flags())
	rootCmd.AddCommand(versionCmd)
}

func defineFlags(flags *pflag.FlagSet) {
	flags.StringP("tags", "b", "", "comma-separated build tags")
	flags.BoolP("tests", "t", false, "include tests")
	flags.StringP("output", "o", descgeninternal.DefaultOutput, "output file name")
	flags.StringP("color", "c", "auto", "colorize (auto|always|never)")
	flags.Bool("format", false, "allow format templates in annotations")
	flags.BoolP("verbose", "v", false, "print debug logs")
	flags.StringVar(&configFile, "config", "", "config file (default: .descgen.yaml or .descgen.toml in the working directory)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	wd, err := os.Getwd()
	if err != nil {
		return crdberrors.Wrap(err, "failed to get working directory")
	}

	cfg, err := loadConfig(cmd.Flags(), wd, configFile)
	if err != nil {
		return err
	}

	color, err := useColor(cfg.Color)
	if err != nil {
		return err
	}

	log := newLogger(cfg.Verbose)
	defer func() { _ = log.Sync() }()

	if len(args) == 0 {
		args = []string{"."}
	}

	started := time.Now()
	outs, err := descgeninternal.Main(cmd.Context(), wd, os.Environ(), descgeninternal.Options{
		Tags:   cfg.Tags,
		Tests:  cfg.Tests,
		Output: cfg.Output,
		Format: cfg.Format,
		Logger: log,
	}, args)
	if err != nil {
		message := err.Error()
		if color {
			message = colorize(message)
		}
		fmt.Fprintln(os.Stderr, message)
		return errReported
	}

	for _, out := range slices.Sorted(maps.Keys(outs)) {
		if err := os.WriteFile(out, outs[out], 0o644); err != nil {
			return crdberrors.Wrapf(err, "failed to write %s", out)
		}

		if relOut, err := filepath.Rel(wd, out); err == nil {
			out = relOut
		}
		log.Info("Generated", zap.String("file", out))
	}

	log.Debug("done", zap.Int("files", len(outs)), zap.Duration("elapsed", time.Since(started)))
	return nil
}

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/kazu/barajar"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var Logger *zap.Logger

func SetupLogger(debug bool) {

	if debug {
		Logger, _ = zap.NewDevelopment()
		return
	}
	Logger, _ = zap.NewProduction()

}

type options struct {
	seed   int64
	phrase string
	debug  bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "barajar [file]",
		Short: "Print the lines of file (or stdin) in random order",
		Args:  cobra.MaximumNArgs(1),
		PersistentPreRun: func(*cobra.Command, []string) {
			SetupLogger(opts.debug)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			defer Logger.Sync()

			rng, kind, err := sourceOf(cmd, opts)
			if err != nil {
				return err
			}

			in := cmd.InOrStdin()
			if len(args) > 0 {
				f, err := os.Open(args[0])
				if err != nil {
					return errors.Wrap(err, "open input")
				}
				defer f.Close()
				in = f
			}

			lines, err := readLines(in)
			if err != nil {
				return err
			}
			if opts.debug {
				Logger.Debug("input", zap.String("lines", spew.Sdump(lines)))
			}

			barajar.Slice(lines, rng)

			if err := writeLines(cmd.OutOrStdout(), lines); err != nil {
				return err
			}
			Logger.Info("shuffled",
				zap.Int("lines", len(lines)),
				zap.String("source", kind))
			return nil
		},
	}

	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "Seed for a reproducible order")
	cmd.Flags().StringVar(&opts.phrase, "phrase", "", "Text seed for a reproducible order")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "Development logging with input dump")
	return cmd
}

// sourceOf returns a nil Source when neither --seed nor --phrase is given.
func sourceOf(cmd *cobra.Command, opts *options) (barajar.Source, string, error) {
	seeded := cmd.Flags().Changed("seed")
	phrased := cmd.Flags().Changed("phrase")

	switch {
	case seeded && phrased:
		return nil, "", errors.New("--seed and --phrase are exclusive")
	case seeded:
		return barajar.New(opts.seed), "seed", nil
	case phrased:
		return barajar.NewFromPhrase(opts.phrase), "phrase", nil
	}
	return nil, "default", nil
}

func readLines(r io.Reader) (lines []string, err error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err = scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read input")
	}
	return lines, nil
}

func writeLines(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := fmt.Fprintln(bw, line); err != nil {
			return errors.Wrap(err, "write output")
		}
	}
	return errors.Wrap(bw.Flush(), "write output")
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if Logger != nil {
			Logger.Error("barajar failed", zap.Error(err))
		}
		os.Exit(1)
	}
}

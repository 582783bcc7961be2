package main

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/born-ml/ringtensor/algebra"
	"github.com/born-ml/ringtensor/internal/einsum"
	"github.com/born-ml/ringtensor/internal/parallel"
	"github.com/born-ml/ringtensor/tensor"
)

type options struct {
	logLevel  string
	workers   int
	threshold int
	logger    zerolog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "ringtensor",
		Short:         "Strided tensors and Einstein summation over float64",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd.ErrOrStderr())
		},
	}

	def := parallel.DefaultConfig()
	flags := root.PersistentFlags()
	flags.StringVar(&opts.logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	flags.IntVar(&opts.workers, "workers", def.NumWorkers, "worker goroutines for parallel operations (1 disables parallelism)")
	flags.IntVar(&opts.threshold, "threshold", def.Threshold, "minimum element count for the parallel path")

	root.AddCommand(newVersionCmd(), newEinsumCmd(opts), newSumCmd(opts))
	return root
}

// setup configures logging and the process-wide parallel policy from flags.
func (o *options) setup(stderr io.Writer) error {
	level, err := zerolog.ParseLevel(o.logLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", o.logLevel, err)
	}
	o.logger = zerolog.New(zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.RFC3339}).
		Level(level).
		With().Timestamp().Logger()
	einsum.SetLogger(o.logger)

	if o.workers < 1 {
		return fmt.Errorf("--workers must be at least 1, got %d", o.workers)
	}
	if o.threshold < 1 {
		return fmt.Errorf("--threshold must be at least 1, got %d", o.threshold)
	}
	parallel.SetDefault(parallel.Config{
		Enabled:    o.workers > 1,
		NumWorkers: o.workers,
		Threshold:  o.threshold,
	})
	o.logger.Debug().
		Int("workers", o.workers).
		Int("threshold", o.threshold).
		Msg("parallel policy configured")
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ringtensor %s (%s)\n", version, runtime.Version())
		},
	}
}

func newEinsumCmd(opts *options) *cobra.Command {
	var operands []string

	cmd := &cobra.Command{
		Use:   "einsum EQUATION -o JSON [-o JSON ...]",
		Short: "Evaluate an Einstein-summation equation",
		Example: `  ringtensor einsum "ij,jk->ik" -o "[[1,2],[3,4]]" -o "[[5,6],[7,8]]"
  ringtensor einsum ii -o "[[1,2],[3,4]]"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs := make([]*tensor.Tensor[float64, algebra.Float64], len(operands))
			for i, raw := range operands {
				t, err := parseTensor(raw)
				if err != nil {
					return fmt.Errorf("operand %d: %w", i, err)
				}
				inputs[i] = t
			}

			start := time.Now()
			result, err := tensor.Einsum(args[0], inputs...)
			if err != nil {
				opts.logger.Error().Err(err).Str("equation", args[0]).Msg("einsum failed")
				return err
			}
			opts.logger.Info().
				Str("equation", args[0]).
				Ints("shape", result.Shape()).
				Dur("elapsed", time.Since(start)).
				Msg("einsum complete")
			return writeTensor(cmd.OutOrStdout(), result)
		},
	}
	cmd.Flags().StringArrayVarP(&operands, "operand", "o", nil, "operand as a nested JSON array (repeatable, in equation order)")
	return cmd
}

func newSumCmd(opts *options) *cobra.Command {
	var axis int

	cmd := &cobra.Command{
		Use:   "sum JSON [--axis N]",
		Short: "Sum all elements, or along one axis",
		Example: `  ringtensor sum "[[1,2],[3,4]]"
  ringtensor sum "[[1,2],[3,4]]" --axis 0`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := parseTensor(args[0])
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("axis") {
				s, err := t.Sum()
				if err != nil {
					return err
				}
				opts.logger.Debug().Int("size", t.Size()).Msg("sum complete")
				return json.NewEncoder(cmd.OutOrStdout()).Encode(s)
			}

			r, err := t.SumAxis(axis)
			if err != nil {
				opts.logger.Error().Err(err).Int("axis", axis).Msg("sum failed")
				return err
			}
			opts.logger.Debug().Int("axis", axis).Ints("shape", r.Shape()).Msg("sum complete")
			return writeTensor(cmd.OutOrStdout(), r)
		},
	}
	cmd.Flags().IntVar(&axis, "axis", 0, "reduce along this axis only")
	return cmd
}

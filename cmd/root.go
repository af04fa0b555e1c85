package cmd

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/dlshle/golodash/config"
	"github.com/dlshle/golodash/errors"
	"github.com/dlshle/golodash/logging"
	"github.com/dlshle/golodash/performance"
	"github.com/dlshle/golodash/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	flagNumbers = "numbers"
	flagTiming  = "timing"
)

var logger = logging.GlobalLogger

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           config.Name,
		Short:         "Play with sentinel-linked stacks, queues and lists",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return utils.ProcessWithErrors(
				config.Setup,
				func() error { return viper.BindPFlag(config.Timing, cmd.Flags().Lookup(flagTiming)) },
				func() error {
					logger = config.Logger(cmd.ErrOrStderr())
					logging.SetLogger(logger)
					return nil
				},
			)
		},
	}
	rootCmd.PersistentFlags().Bool(flagNumbers, false, "parse values as numbers")
	rootCmd.PersistentFlags().Bool(flagTiming, false, "log how long the operations took")
	rootCmd.AddCommand(newStackCmd(), newQueueCmd(), newListCmd())
	return rootCmd
}

func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		logger.Error(context.Background(), err.Error())
		return err
	}
	return nil
}

// runTyped parses args as float64 when --numbers is set and hands them to
// the matching callback. Every unparsable value is reported at once.
func runTyped(cmd *cobra.Command, args []string, onStrings func([]string) error, onNumbers func([]float64) error) error {
	numbers, err := cmd.Flags().GetBool(flagNumbers)
	if err != nil {
		return err
	}
	var runErr error
	run := func() {
		if !numbers {
			runErr = onStrings(args)
			return
		}
		parsed, err := parseNumbers(args)
		if err != nil {
			runErr = err
			return
		}
		runErr = onNumbers(parsed)
	}
	if viper.GetBool(config.Timing) {
		performance.MeasureWithLog(cmd.Context(), logger, cmd.Name(), run)
	} else {
		run()
	}
	return runErr
}

func parseNumbers(args []string) ([]float64, error) {
	errs := errors.NewMultiError()
	parsed := make([]float64, 0, len(args))
	for _, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			errs.Add(errors.Errorf("invalid number %q", arg))
			continue
		}
		parsed = append(parsed, v)
	}
	return parsed, errs.ErrorOrNil()
}

func printDump[T any](cmd *cobra.Command, dump []T) error {
	return json.NewEncoder(cmd.OutOrStdout()).Encode(dump)
}

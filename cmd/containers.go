package cmd

import (
	"fmt"

	"github.com/dlshle/golodash/data_structures"
	"github.com/dlshle/golodash/logging"
	"github.com/spf13/cobra"
)

func newStackCmd() *cobra.Command {
	var pops int
	c := &cobra.Command{
		Use:   "stack [values...]",
		Short: "Push values onto a stack, pop some, print what is left",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTyped(cmd, args,
				func(values []string) error { return runStack(cmd, data_structures.NewStack[string](), values, pops) },
				func(values []float64) error { return runStack(cmd, data_structures.NewStack[float64](), values, pops) },
			)
		},
	}
	c.Flags().IntVar(&pops, "pop", 0, "number of pops after pushing")
	return c
}

func runStack[T any](cmd *cobra.Command, s data_structures.Stack[T], values []T, pops int) error {
	ctx := logging.WrapCtx(cmd.Context(), "container", "stack")
	for _, v := range values {
		s.Push(v)
	}
	for i := 0; i < pops; i++ {
		popped, ok := s.TryPop().Get()
		if !ok {
			logger.Warnf(ctx, "pop %d on empty stack", i+1)
			continue
		}
		logger.Infof(ctx, "popped %v", popped)
	}
	if err := printDump(cmd, s.ToSlice()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "size %d\n", s.Size())
	return err
}

func newQueueCmd() *cobra.Command {
	var dequeues int
	c := &cobra.Command{
		Use:   "queue [values...]",
		Short: "Enqueue values, dequeue some, print what is left",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTyped(cmd, args,
				func(values []string) error { return runQueue(cmd, data_structures.NewQueue[string](), values, dequeues) },
				func(values []float64) error { return runQueue(cmd, data_structures.NewNumberQueue(), values, dequeues) },
			)
		},
	}
	c.Flags().IntVar(&dequeues, "dequeue", 0, "number of dequeues after enqueueing")
	return c
}

func runQueue[T any](cmd *cobra.Command, q data_structures.Queue[T], values []T, dequeues int) error {
	ctx := logging.WrapCtx(cmd.Context(), "container", "queue")
	for _, v := range values {
		q.Enqueue(v)
	}
	for i := 0; i < dequeues; i++ {
		dequeued, ok := q.TryDequeue().Get()
		if !ok {
			logger.Warnf(ctx, "dequeue %d on empty queue", i+1)
			continue
		}
		logger.Infof(ctx, "dequeued %v", dequeued)
	}
	return printDump(cmd, q.ToSlice())
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [values...]",
		Short: "Append values to a list and print it",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTyped(cmd, args,
				func(values []string) error { return runList(cmd, data_structures.NewList[string](), values) },
				func(values []float64) error { return runList(cmd, data_structures.NewNumberList(), values) },
			)
		},
	}
}

func runList[T any](cmd *cobra.Command, l data_structures.List[T], values []T) error {
	for _, v := range values {
		l.Push(v)
	}
	logger.Debugf(logging.WrapCtx(cmd.Context(), "container", "list"), "pushed %d values", len(values))
	return printDump(cmd, l.ToSlice())
}

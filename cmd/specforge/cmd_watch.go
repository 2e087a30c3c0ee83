package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"specforge/internal/codegen"
	"specforge/internal/steps"
	"specforge/internal/table"
	"specforge/internal/watch"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// watchCmd regenerates test code whenever the table or steps file changes.
var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Watch a decision table and regenerate on change",
	Long: `Runs one generation pass, then watches the decision table and the steps
file and regenerates whenever either changes. Stop with Ctrl-C.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	// Watch shares the generate flag set.
	watchCmd.Flags().AddFlagSet(generateCmd.Flags())
	_ = watchCmd.MarkFlagRequired("steps")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := generationConfig()
	if err != nil {
		return err
	}
	tablePath := args[0]

	regenerate := func() {
		tbl, err := table.NewParser(logger).ParseFile(tablePath)
		if err != nil {
			fmt.Printf("parse failed: %v\n", err)
			return
		}
		stepSets, err := steps.LoadFile(genStepsFile)
		if err != nil {
			fmt.Printf("loading steps failed: %v\n", err)
			return
		}
		res := codegen.New(cfg, logger).Generate(tbl, stepSets)
		printResult(res)
	}

	regenerate()

	w, err := watch.New([]string{tablePath, genStepsFile}, func(path string) {
		fmt.Printf("change detected: %s\n", path)
		regenerate()
	}, logger)
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	w.Start(ctx)
	defer w.Stop()

	logger.Info("watching for changes",
		zap.String("table", tablePath),
		zap.String("steps", genStepsFile))
	fmt.Println("watching for changes (Ctrl-C to stop)")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sigCh:
	case <-ctx.Done():
	}
	fmt.Println("stopping")
	return nil
}

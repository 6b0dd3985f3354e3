package main

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newBatchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Transliterate every line of a file",
		Long:  "Transliterates the lines of FILE on a worker pool and writes them in the same order. FILE - reads stdin.",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runBatch,
	}

	cmd.Flags().IntVarP(&a.workers, "workers", "w", 0, "Lines worked on at once (default: config, else one per CPU)")

	return cmd
}

func (a *app) runBatch(cmd *cobra.Command, args []string) error {
	in := cmd.InOrStdin()
	if args[0] != "-" {
		file, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer file.Close()
		in = file
	}

	var lines []string
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}

	engine, err := a.newEngine()
	if err != nil {
		return err
	}

	start := time.Now()
	results, err := engine.TransliterateBatch(cmd.Context(), lines)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(cmd.OutOrStdout())
	for _, line := range results {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	a.log.Info("batch done", zap.Int("lines", len(lines)), zap.Duration("took", time.Since(start)))

	return w.Flush()
}

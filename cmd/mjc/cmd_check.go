package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/dhamidi/mjc/format"
	"github.com/dhamidi/mjc/minijava/codebase"
)

func newCheckCmd(g *globalOptions) *cobra.Command {
	var watch bool
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "check <path>",
		Short: "Check every source file in a directory, or a single file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			info, err := os.Stat(path)
			if err != nil {
				return fmt.Errorf("stat %s: %w", path, err)
			}

			out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
			cb := codebase.New(path, g.cfg)

			if watch {
				return runWatch(cmd, cb, interval)
			}

			if info.IsDir() {
				if err := cb.ScanAll(); err != nil {
					return fmt.Errorf("walk %s: %w", path, err)
				}
			} else {
				cb.ScanFile(path)
			}

			files := cb.Files()
			for _, f := range files {
				reportFile(out, errOut, f)
			}

			failed := cb.Failed()
			fmt.Fprintf(out, "\n=== CHECK COMPLETE ===\n")
			fmt.Fprintf(out, "Files checked: %d\n", len(files))
			fmt.Fprintf(out, "Failed: %d\n", failed)
			if failed > 0 {
				return errSyntax
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "keep running and recheck files when they change")
	cmd.Flags().DurationVar(&interval, "interval", time.Second, "polling interval for --watch")

	return cmd
}

func reportFile(out, errOut io.Writer, f *codebase.FileInfo) {
	switch {
	case f.Err != nil:
		fmt.Fprintf(out, "[ERROR] %s: %v\n", f.Path, f.Err)
	case f.OK():
		fmt.Fprintf(out, "[OK] %s\n", f.Path)
	default:
		fmt.Fprintf(out, "[FAIL] %s (%d errors)\n", f.Path, f.Result.Errors())
		format.NewTextEncoder(out, errOut).EncodeResult(f.Result)
	}
}

func runWatch(cmd *cobra.Command, cb *codebase.Codebase, interval time.Duration) error {
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	cb.OnUpdate(func(f *codebase.FileInfo) {
		reportFile(out, errOut, f)
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	w := codebase.NewFileWatcher(cb, interval)
	w.Start()
	defer w.Stop()

	log.Info("watching", "root", cb.RootDir(), "interval", interval)
	<-ctx.Done()
	return nil
}

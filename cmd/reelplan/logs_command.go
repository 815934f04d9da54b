package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"reelplan/internal/logging"
	"reelplan/internal/logs"
	"reelplan/internal/services"
)

func newLogsCommand(ctx *commandContext) *cobra.Command {
	var lines int
	var follow bool
	var runRef string
	var level string

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show recent entries from the reelplan log file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if strings.TrimSpace(cfg.Paths.LogDir) == "" {
				return services.Wrap(services.ErrConfiguration, "logs", "", "paths.log_dir is empty; the log file is disabled", nil)
			}
			path := filepath.Join(cfg.Paths.LogDir, logging.LogFileName)
			filter := logs.Filter{RunID: runRef, MinLevel: level}
			out := cmd.OutOrStdout()
			runCtx := ctx.commandCtx(cmd)

			result, err := logs.Tail(runCtx, path, logs.TailOptions{Offset: -1, Limit: lines})
			if err != nil {
				return err
			}
			for _, entry := range filter.Apply(result.Lines) {
				fmt.Fprintln(out, logs.Format(entry))
			}
			offset := result.Offset
			for follow {
				next, err := logs.Tail(runCtx, path, logs.TailOptions{Offset: offset, Follow: true, Wait: 5 * time.Second})
				if err != nil {
					return err
				}
				offset = next.Offset
				for _, entry := range filter.Apply(next.Lines) {
					fmt.Fprintln(out, logs.Format(entry))
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", 50, "Number of trailing lines to read")
	cmd.Flags().BoolVar(&follow, "follow", false, "Keep printing new entries until interrupted")
	cmd.Flags().StringVar(&runRef, "run", "", "Only show entries for this run id prefix")
	cmd.Flags().StringVar(&level, "level", "", "Minimum level to show (debug, info, warn, error)")
	return cmd
}

package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"reelplan/internal/pipeline"
	"reelplan/internal/services"
	"reelplan/internal/store"
)

func newRunsCommand(ctx *commandContext) *cobra.Command {
	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "Inspect and manage saved runs",
	}
	runsCmd.AddCommand(newRunsListCommand(ctx))
	runsCmd.AddCommand(newRunsShowCommand(ctx))
	runsCmd.AddCommand(newRunsRemoveCommand(ctx))
	return runsCmd
}

func newRunsListCommand(ctx *commandContext) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List saved runs, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(s *store.Store) error {
				summaries, err := s.List(ctx.commandCtx(cmd), limit)
				if err != nil {
					return err
				}
				return emit(cmd, ctx.outputFormat(), summaries, func() string {
					if len(summaries) == 0 {
						return "No saved runs."
					}
					rows := make([][]string, 0, len(summaries))
					for _, sum := range summaries {
						rows = append(rows, []string{
							shortID(sum.ID),
							sum.CreatedAt.Local().Format(time.DateTime),
							sum.Source,
							strconv.Itoa(sum.SceneCount),
							strconv.Itoa(sum.DayCount),
						})
					}
					return renderTable(
						[]string{"ID", "Created", "Source", "Scenes", "Days"},
						rows,
						[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight},
					)
				})
			})
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to list (0 for all)")
	return cmd
}

func newRunsShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show [id]",
		Short: "Show a saved run (defaults to the latest)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref := ""
			if len(args) > 0 {
				ref = args[0]
			}
			return ctx.withStore(func(s *store.Store) error {
				run, err := ctx.loadRun(cmd, s, ref)
				if err != nil {
					return err
				}
				if ctx.outputFormat() != formatTable {
					return emit(cmd, ctx.outputFormat(), run, nil)
				}
				result := pipeline.ResultFromRun(run)
				summary := runSummary{
					RunID:       run.ID,
					Source:      run.Source,
					Scenes:      run.SceneCount,
					Days:        run.DayCount,
					Characters:  len(result.Cast.Characters),
					SilentAdded: run.SilentAdded,
					Saved:       true,
				}
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, renderRunSummary(summary, shouldColorize(out)))
				fmt.Fprintf(out, "Created: %s\nSHA-256: %s\n", run.CreatedAt.Local().Format(time.DateTime), run.SourceSHA256)
				return nil
			})
		},
	}
}

func newRunsRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Delete a saved run",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(s *store.Store) error {
				runCtx := ctx.commandCtx(cmd)
				id, err := s.Resolve(runCtx, args[0])
				if err != nil {
					return err
				}
				deleted, err := s.Delete(runCtx, id)
				if err != nil {
					return err
				}
				if !deleted {
					return services.Wrap(services.ErrNotFound, "runs", "rm", id, nil)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted run %s\n", id)
				return nil
			})
		},
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

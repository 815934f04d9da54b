package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"reelplan/internal/callsheet"
	"reelplan/internal/pipeline"
	"reelplan/internal/schedule"
	"reelplan/internal/services"
)

func newParseCommand(ctx *commandContext) *cobra.Command {
	var runRef string
	cmd := &cobra.Command{
		Use:   "parse [screenplay|-]",
		Short: "List the scenes of a screenplay or a saved run",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := ctx.loadResult(cmd, args, runRef, nil)
			if err != nil {
				return err
			}
			return emit(cmd, ctx.outputFormat(), result.Scenes, func() string {
				rows := make([][]string, 0, len(result.Scenes))
				for _, scene := range result.Scenes {
					rows = append(rows, []string{
						strconv.Itoa(scene.Number),
						scene.Heading,
						scene.Location,
						string(scene.TimeOfDay),
						joinOrDash(scene.Characters),
					})
				}
				return renderTable(
					[]string{"#", "Heading", "Location", "Time", "Characters"},
					rows,
					[]columnAlignment{alignRight},
				)
			})
		},
	}
	cmd.Flags().StringVar(&runRef, "run", "", "Saved run id or prefix (defaults to the latest run)")
	return cmd
}

func newScheduleCommand(ctx *commandContext) *cobra.Command {
	var runRef string
	var lunchPolicy string
	var maxHours int
	cmd := &cobra.Command{
		Use:   "schedule [screenplay|-]",
		Short: "Show the shooting schedule",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tweak := func(opts *pipeline.Options) error {
				if cmd.Flags().Changed("lunch-policy") {
					policy, err := schedule.ParseLunchPolicy(lunchPolicy)
					if err != nil {
						return services.Wrap(services.ErrValidation, "schedule", "flags", "", err)
					}
					opts.Schedule.LunchPolicy = policy
				}
				if cmd.Flags().Changed("max-hours") {
					if maxHours < 1 || maxHours > 24 {
						return services.Wrap(services.ErrValidation, "schedule", "flags", "--max-hours must be between 1 and 24", nil)
					}
					opts.Schedule.MaxHoursPerDay = maxHours
				}
				return nil
			}
			result, err := ctx.loadResult(cmd, args, runRef, tweak)
			if err != nil {
				return err
			}
			return emit(cmd, ctx.outputFormat(), result.Schedule, func() string {
				rows := make([][]string, 0, len(result.Schedule))
				for _, entry := range result.Schedule {
					rows = append(rows, []string{
						strconv.Itoa(entry.Day),
						entry.StartTime,
						strconv.Itoa(entry.EstimatedDuration),
						entry.SceneHeading,
						entry.Location,
						string(entry.TimeOfDay),
						joinOrDash(entry.Characters),
					})
				}
				return renderTable(
					[]string{"Day", "Start", "Hours", "Scene", "Location", "Time", "Characters"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignRight},
				)
			})
		},
	}
	cmd.Flags().StringVar(&runRef, "run", "", "Saved run id or prefix (defaults to the latest run)")
	cmd.Flags().StringVar(&lunchPolicy, "lunch-policy", "", "Override schedule.lunch_policy (exact or once)")
	cmd.Flags().IntVar(&maxHours, "max-hours", 0, "Override schedule.max_hours_per_day")
	return cmd
}

func newCallSheetCommand(ctx *commandContext) *cobra.Command {
	var runRef string
	var day int
	cmd := &cobra.Command{
		Use:     "callsheet [screenplay|-]",
		Aliases: []string{"callsheets"},
		Short:   "Show per-day call sheets",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := ctx.loadResult(cmd, args, runRef, nil)
			if err != nil {
				return err
			}
			sheets := result.CallSheets
			if day > 0 {
				sheets = filterSheets(sheets, day)
				if len(sheets) == 0 {
					return services.Wrap(services.ErrNotFound, "callsheet", "select", fmt.Sprintf("day %d is not on the schedule", day), nil)
				}
			}
			return emit(cmd, ctx.outputFormat(), sheets, func() string {
				return renderCallSheets(sheets, shouldColorize(cmd.OutOrStdout()))
			})
		},
	}
	cmd.Flags().StringVar(&runRef, "run", "", "Saved run id or prefix (defaults to the latest run)")
	cmd.Flags().IntVar(&day, "day", 0, "Only show this shooting day")
	return cmd
}

func filterSheets(sheets []callsheet.Sheet, day int) []callsheet.Sheet {
	out := []callsheet.Sheet{}
	for _, sheet := range sheets {
		if sheet.Day == day {
			out = append(out, sheet)
		}
	}
	return out
}

func renderCallSheets(sheets []callsheet.Sheet, colorize bool) string {
	if len(sheets) == 0 {
		return "No shooting days scheduled."
	}
	parts := make([]string, 0, len(sheets))
	for _, sheet := range sheets {
		var b strings.Builder
		b.WriteString(renderSectionHeader(fmt.Sprintf("Day %d", sheet.Day), colorize))
		b.WriteString("\n")
		rows := [][]string{
			{"First call", sheet.FirstCall},
			{"Estimated wrap", sheet.EstimatedWrap},
			{"Scene hours", strconv.Itoa(sheet.SceneHours)},
			{"Cast", joinOrDash(sheet.Actors)},
			{"Locations", joinOrDash(sheet.Locations)},
		}
		for i, scene := range sheet.Scenes {
			rows = append(rows, []string{fmt.Sprintf("Scene %d", i+1), scene})
		}
		b.WriteString(renderTable([]string{"Field", "Value"}, rows, nil))
		parts = append(parts, b.String())
	}
	return strings.Join(parts, "\n\n")
}

func newCastCommand(ctx *commandContext) *cobra.Command {
	var runRef string
	cmd := &cobra.Command{
		Use:   "cast [screenplay|-]",
		Short: "Report characters by scene count and flag likely duplicate names",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := ctx.loadResult(cmd, args, runRef, nil)
			if err != nil {
				return err
			}
			report := result.Cast
			return emit(cmd, ctx.outputFormat(), report, func() string {
				rows := make([][]string, 0, len(report.Characters))
				for _, c := range report.Characters {
					rows = append(rows, []string{
						c.Name,
						strconv.Itoa(c.SceneCount),
						itoaOrDash(c.FirstScene),
					})
				}
				out := renderTable([]string{"Character", "Scenes", "First scene"}, rows, []columnAlignment{alignLeft, alignRight, alignRight})
				if len(report.Duplicates) == 0 {
					return out
				}
				dupRows := make([][]string, 0, len(report.Duplicates))
				for _, d := range report.Duplicates {
					dupRows = append(dupRows, []string{d.A, d.B, string(d.Reason), fmt.Sprintf("%.2f", d.Similarity)})
				}
				return out + "\n\nPossible duplicates:\n" + renderTable([]string{"Name", "Name", "Reason", "Similarity"}, dupRows, []columnAlignment{alignLeft, alignLeft, alignLeft, alignRight})
			})
		},
	}
	cmd.Flags().StringVar(&runRef, "run", "", "Saved run id or prefix (defaults to the latest run)")
	return cmd
}

func newPropsCommand(ctx *commandContext) *cobra.Command {
	var runRef string
	cmd := &cobra.Command{
		Use:   "props [screenplay|-]",
		Short: "List props called out in each scene",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := ctx.loadResult(cmd, args, runRef, func(opts *pipeline.Options) error {
				opts.PropsEnabled = true
				return nil
			})
			if err != nil {
				return err
			}
			if result.Props == nil {
				return services.Wrap(services.ErrNotFound, "props", "load", "run was saved without props tagging", nil)
			}
			return emit(cmd, ctx.outputFormat(), result.Props, func() string {
				rows := make([][]string, 0, len(result.Props))
				for _, tagged := range result.Props {
					rows = append(rows, []string{strconv.Itoa(tagged.SceneNumber), tagged.Heading, joinOrDash(tagged.Props)})
				}
				return renderTable([]string{"#", "Heading", "Props"}, rows, []columnAlignment{alignRight})
			})
		},
	}
	cmd.Flags().StringVar(&runRef, "run", "", "Saved run id or prefix (defaults to the latest run)")
	return cmd
}

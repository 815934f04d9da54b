package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"reelplan/internal/export"
	"reelplan/internal/logging"
	"reelplan/internal/store"
)

type runSummary struct {
	RunID       string   `json:"run_id" yaml:"run_id"`
	Source      string   `json:"source" yaml:"source"`
	Scenes      int      `json:"scenes" yaml:"scenes"`
	Days        int      `json:"days" yaml:"days"`
	Characters  int      `json:"characters" yaml:"characters"`
	SilentAdded int      `json:"silent_added" yaml:"silent_added"`
	Saved       bool     `json:"saved" yaml:"saved"`
	Files       []string `json:"files" yaml:"files"`
}

func newRunCommand(ctx *commandContext) *cobra.Command {
	var outDir string
	var exportFormat string
	var noSave bool
	var noExport bool

	cmd := &cobra.Command{
		Use:   "run <screenplay|->",
		Short: "Break down a screenplay, export the artifacts, and save the run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			format, err := export.ParseFormat(exportFormat)
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			result, err := ctx.runPipeline(cmd, args[0], nil)
			if err != nil {
				return err
			}
			summary := runSummary{
				RunID:       result.RunID,
				Source:      result.Source,
				Scenes:      len(result.Scenes),
				Days:        result.DayCount(),
				Characters:  len(result.Cast.Characters),
				SilentAdded: result.SilentAdded,
				Files:       []string{},
			}

			runCtx := ctx.commandCtx(cmd)
			if !noExport {
				dir := strings.TrimSpace(outDir)
				if dir == "" {
					dir = cfg.Paths.OutputDir
				} else if dir, err = expandArgPath(dir); err != nil {
					return err
				}
				files, err := export.NewWriter(dir, format).Write(runCtx, result.Bundle())
				if err != nil {
					return err
				}
				summary.Files = files
				logger.Info("artifacts exported", logging.String("dir", dir), logging.Int("files", len(files)))
			}
			if !noSave {
				err := ctx.withStore(func(s *store.Store) error {
					return s.Save(runCtx, result.StoreRun())
				})
				if err != nil {
					return err
				}
				summary.Saved = true
			}

			return emit(cmd, ctx.outputFormat(), summary, func() string {
				return renderRunSummary(summary, shouldColorize(cmd.OutOrStdout()))
			})
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory (defaults to paths.output_dir)")
	cmd.Flags().StringVar(&exportFormat, "export-format", "json", "Artifact file format: json or yaml")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "Do not record the run in the local store")
	cmd.Flags().BoolVar(&noExport, "no-export", false, "Do not write artifact files")
	return cmd
}

func renderRunSummary(s runSummary, colorize bool) string {
	var b strings.Builder
	b.WriteString(renderSectionHeader("Run "+s.RunID, colorize))
	b.WriteString("\n")
	rows := [][]string{
		{"Source", s.Source},
		{"Scenes", strconv.Itoa(s.Scenes)},
		{"Shooting days", strconv.Itoa(s.Days)},
		{"Characters", strconv.Itoa(s.Characters)},
		{"Silent added", strconv.Itoa(s.SilentAdded)},
		{"Saved", yesNo(s.Saved)},
	}
	for _, file := range s.Files {
		rows = append(rows, []string{"Wrote", file})
	}
	b.WriteString(renderTable([]string{"Field", "Value"}, rows, nil))
	return b.String()
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}

func itoaOrDash(value int) string {
	if value <= 0 {
		return "-"
	}
	return fmt.Sprintf("%d", value)
}

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"reelplan/internal/preflight"
	"reelplan/internal/services"
)

const (
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
)

func newDoctorCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check directories, the run store, and LLM connectivity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			results := preflight.RunAll(ctx.commandCtx(cmd), cfg)
			err = emit(cmd, ctx.outputFormat(), results, func() string {
				return renderPreflight(results, shouldColorize(cmd.OutOrStdout()))
			})
			if err != nil {
				return err
			}
			if preflight.Failed(results) {
				return services.Wrap(services.ErrConfiguration, "doctor", "", "one or more checks failed", nil)
			}
			return nil
		},
	}
}

func renderPreflight(results []preflight.Result, colorize bool) string {
	lines := make([]string, 0, len(results)+1)
	lines = append(lines, renderSectionHeader("Preflight", colorize))
	for _, r := range results {
		status, color := "OK", ansiGreen
		if !r.Passed {
			status, color = "FAIL", ansiRed
		}
		line := fmt.Sprintf("  %-20s [%s] %s", r.Name+":", status, r.Detail)
		if colorize {
			line = color + line + ansiReset
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

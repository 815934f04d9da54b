package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"reelplan/internal/search"
	"reelplan/internal/services"
	"reelplan/internal/services/llm"
)

func newAskCommand(ctx *commandContext) *cobra.Command {
	var runRef string
	var scriptPath string
	var topK int
	var noLLM bool

	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Answer a question about a screenplay's scenes and schedule",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			question := strings.TrimSpace(strings.Join(args, " "))
			if question == "" {
				return services.Wrap(services.ErrValidation, "ask", "args", "question is empty", nil)
			}

			var scriptArgs []string
			if strings.TrimSpace(scriptPath) != "" {
				scriptArgs = []string{scriptPath}
			}
			result, err := ctx.loadResult(cmd, scriptArgs, runRef, nil)
			if err != nil {
				return err
			}

			k := cfg.Search.TopK
			if topK > 0 {
				k = topK
			}
			var answerer search.Answerer
			llmCfg := cfg.LLMConfig()
			if !noLLM && llmCfg.Enabled() {
				answerer = llm.NewClient(llmCfg)
			}
			engine := search.NewEngine(
				search.NewIndex(result.Scenes, result.Schedule),
				answerer,
				search.WithTopK(k),
				search.WithLogger(logger),
			)
			resp, err := engine.Ask(ctx.commandCtx(cmd), question)
			if err != nil {
				return err
			}
			return emit(cmd, ctx.outputFormat(), resp, func() string {
				return renderAnswer(resp)
			})
		},
	}

	cmd.Flags().StringVar(&runRef, "run", "", "Saved run id or prefix (defaults to the latest run)")
	cmd.Flags().StringVarP(&scriptPath, "script", "s", "", "Answer from this screenplay instead of a saved run")
	cmd.Flags().IntVarP(&topK, "top-k", "k", 0, "Number of scenes and schedule lines to retrieve (defaults to search.top_k)")
	cmd.Flags().BoolVar(&noLLM, "no-llm", false, "Only show the retrieved lines, even when an API key is configured")
	return cmd
}

func renderAnswer(resp search.Response) string {
	var b strings.Builder
	b.WriteString(resp.Answer)
	if len(resp.Scenes) > 0 {
		refs := make([]string, 0, len(resp.Scenes))
		for _, n := range resp.Scenes {
			refs = append(refs, fmt.Sprintf("%d", n))
		}
		b.WriteString("\n\nScenes: ")
		b.WriteString(strings.Join(refs, ", "))
	}
	if resp.Generated && len(resp.Hits) > 0 {
		b.WriteString("\n\nSources:\n")
		for _, hit := range resp.Hits {
			fmt.Fprintf(&b, "  [%.2f] %s\n", hit.Score, hit.Text)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"reelplan/internal/callsheet"
	"reelplan/internal/cast"
	"reelplan/internal/config"
	"reelplan/internal/export"
	"reelplan/internal/fileutil"
	"reelplan/internal/logging"
	"reelplan/internal/props"
	"reelplan/internal/schedule"
	"reelplan/internal/screenplay"
	"reelplan/internal/services"
	"reelplan/internal/store"
)

// Stage names as they appear in logs.
const (
	StageParse     = "parse"
	StageProps     = "props"
	StageSchedule  = "schedule"
	StageCallSheet = "callsheet"
	StageCast      = "cast"
)

// Options configures a Pipeline.
type Options struct {
	ExtraBlacklist []string
	Schedule       schedule.Options
	PropsEnabled   bool
	PropsLexicon   []string
}

// DefaultOptions returns the default allocator settings with props tagging on.
func DefaultOptions() Options {
	return Options{
		Schedule:     schedule.DefaultOptions(),
		PropsEnabled: true,
	}
}

// OptionsFromConfig derives pipeline options from cfg.
func OptionsFromConfig(cfg *config.Config) (Options, error) {
	sched, err := cfg.ScheduleOptions()
	if err != nil {
		return Options{}, services.Wrap(services.ErrConfiguration, "pipeline", "schedule options", "", err)
	}
	return Options{
		ExtraBlacklist: cfg.Parser.ExtraBlacklist,
		Schedule:       sched,
		PropsEnabled:   cfg.Props.Enabled,
		PropsLexicon:   cfg.Props.Lexicon,
	}, nil
}

// Result holds every artifact of one run.
type Result struct {
	RunID        string
	Source       string
	SourceSHA256 string
	Scenes       []screenplay.Scene
	Stats        screenplay.LineStats
	SilentAdded  int
	Schedule     []schedule.Entry
	CallSheets   []callsheet.Sheet
	// Props is nil when tagging is disabled.
	Props   []props.SceneProps
	Cast    cast.Report
	Elapsed time.Duration
}

// DayCount returns the number of shooting days in the schedule.
func (r *Result) DayCount() int {
	return schedule.DayCount(r.Schedule)
}

// Bundle returns the artifacts in export form.
func (r *Result) Bundle() export.Bundle {
	return export.Bundle{
		Scenes:     r.Scenes,
		Schedule:   r.Schedule,
		CallSheets: r.CallSheets,
		Props:      r.Props,
	}
}

// StoreRun returns the result as a run record keyed by its run id.
func (r *Result) StoreRun() *store.Run {
	return &store.Run{
		ID:           r.RunID,
		Source:       r.Source,
		SourceSHA256: r.SourceSHA256,
		SceneCount:   len(r.Scenes),
		DayCount:     r.DayCount(),
		SilentAdded:  r.SilentAdded,
		Artifacts: store.Artifacts{
			Scenes:     r.Scenes,
			Schedule:   r.Schedule,
			CallSheets: r.CallSheets,
			Props:      r.Props,
			Stats:      r.Stats,
		},
	}
}

// Pipeline runs the breakdown stages.
type Pipeline struct {
	opts   Options
	parser *screenplay.Parser
	tagger *props.Tagger
	logger *slog.Logger
}

// New returns a pipeline. A nil logger discards output.
func New(opts Options, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = logging.NewNop()
	}
	p := &Pipeline{
		opts:   opts,
		parser: screenplay.NewParser(opts.ExtraBlacklist...),
		logger: logging.NewComponentLogger(logger, "pipeline"),
	}
	if opts.PropsEnabled {
		p.tagger = props.NewTagger(opts.PropsLexicon...)
	}
	return p
}

type step struct {
	name string
	run  func(*Result)
}

// Run processes text read from source. Only cancellation between stages can
// fail it; malformed or empty text yields an empty breakdown.
func (p *Pipeline) Run(ctx context.Context, source string, text []byte) (*Result, error) {
	started := time.Now()
	result := &Result{
		RunID:        uuid.NewString(),
		Source:       source,
		SourceSHA256: fileutil.SHA256Hex(text),
	}
	ctx = services.WithRunID(ctx, result.RunID)
	runLogger := logging.WithContext(ctx, p.logger)
	runLogger.Info("run started",
		logging.String("source", source),
		logging.Int("bytes", len(text)),
	)

	steps := []step{
		{StageParse, func(r *Result) { p.parse(r, string(text)) }},
		{StageProps, p.tagProps},
		{StageSchedule, p.allocate},
		{StageCallSheet, p.callSheets},
		{StageCast, p.castReport},
	}
	for _, s := range steps {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%s: %w", s.name, err)
		}
		stageCtx := services.WithStage(ctx, s.name)
		stageLogger := logging.WithContext(stageCtx, p.logger)
		stageLogger.Debug("stage started")
		stageStart := time.Now()
		s.run(result)
		stageLogger.Debug("stage completed", logging.Duration("duration", time.Since(stageStart)))
	}

	result.Elapsed = time.Since(started)
	runLogger.Info("run completed",
		logging.Int(logging.FieldSceneCount, len(result.Scenes)),
		logging.Int(logging.FieldDayCount, result.DayCount()),
		logging.Int("silent_added", result.SilentAdded),
		logging.Int("characters", len(result.Cast.Characters)),
		logging.Duration("duration", result.Elapsed),
	)
	if n := len(result.Cast.Duplicates); n > 0 {
		runLogger.Warn("possible duplicate character names", logging.Int("pairs", n))
	}
	return result, nil
}

func (p *Pipeline) parse(result *Result, raw string) {
	parsed := p.parser.Parse(raw)
	result.Scenes = parsed.Scenes
	result.Stats = parsed.Stats
	result.SilentAdded = parsed.Silent
}

func (p *Pipeline) tagProps(result *Result) {
	if p.tagger != nil {
		result.Props = p.tagger.TagScenes(result.Scenes)
	}
	screenplay.DiscardActions(result.Scenes)
}

func (p *Pipeline) allocate(result *Result) {
	result.Schedule = schedule.Build(result.Scenes, p.opts.Schedule)
}

func (p *Pipeline) callSheets(result *Result) {
	result.CallSheets = callsheet.Generate(result.Schedule)
}

func (p *Pipeline) castReport(result *Result) {
	result.Cast = cast.Build(result.Scenes)
}

// ResultFromRun rebuilds a Result from a saved run. The cast report is
// derived again from the stored scenes.
func ResultFromRun(run *store.Run) *Result {
	return &Result{
		RunID:        run.ID,
		Source:       run.Source,
		SourceSHA256: run.SourceSHA256,
		Scenes:       run.Artifacts.Scenes,
		Stats:        run.Artifacts.Stats,
		SilentAdded:  run.SilentAdded,
		Schedule:     run.Artifacts.Schedule,
		CallSheets:   run.Artifacts.CallSheets,
		Props:        run.Artifacts.Props,
		Cast:         cast.Build(run.Artifacts.Scenes),
	}
}

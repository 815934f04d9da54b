package main

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/cobra"

	"reelplan/internal/config"
	"reelplan/internal/fileutil"
	"reelplan/internal/pipeline"
	"reelplan/internal/services"
	"reelplan/internal/store"
)

// runPipeline reads a screenplay from path ("-" for stdin) and runs the
// breakdown. tweak, when set, may adjust the options derived from config.
func (c *commandContext) runPipeline(cmd *cobra.Command, path string, tweak func(*pipeline.Options) error) (*pipeline.Result, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}
	opts, err := pipeline.OptionsFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	if tweak != nil {
		if err := tweak(&opts); err != nil {
			return nil, err
		}
	}

	path = strings.TrimSpace(path)
	if path == "" {
		return nil, services.Wrap(services.ErrValidation, "input", "read", "a screenplay path or - is required", nil)
	}
	if path != fileutil.StdinPath {
		expanded, err := expandArgPath(path)
		if err != nil {
			return nil, err
		}
		path = expanded
	}
	text, err := fileutil.ReadSource(path, cmd.InOrStdin())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, services.Wrap(services.ErrNotFound, "input", "read", path, err)
		}
		return nil, fmt.Errorf("read screenplay: %w", err)
	}

	return pipeline.New(opts, logger).Run(c.commandCtx(cmd), path, text)
}

// loadResult runs the pipeline on args[0] when given, otherwise loads the
// saved run selected by runRef (an id prefix, or empty for the latest).
func (c *commandContext) loadResult(cmd *cobra.Command, args []string, runRef string, tweak func(*pipeline.Options) error) (*pipeline.Result, error) {
	if len(args) > 0 {
		if strings.TrimSpace(runRef) != "" {
			return nil, services.Wrap(services.ErrValidation, "input", "select", "pass either a screenplay or --run, not both", nil)
		}
		return c.runPipeline(cmd, args[0], tweak)
	}
	if scheduleFlagsChanged(cmd) {
		return nil, services.Wrap(services.ErrValidation, "input", "select", "schedule overrides need a screenplay argument", nil)
	}
	var result *pipeline.Result
	err := c.withStore(func(s *store.Store) error {
		run, err := c.loadRun(cmd, s, runRef)
		if err != nil {
			return err
		}
		result = pipeline.ResultFromRun(run)
		return nil
	})
	return result, err
}

func (c *commandContext) loadRun(cmd *cobra.Command, s *store.Store, ref string) (*store.Run, error) {
	ctx := c.commandCtx(cmd)
	id, err := s.Resolve(ctx, ref)
	if err != nil {
		return nil, err
	}
	run, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if run == nil {
		return nil, services.Wrap(services.ErrNotFound, "store", "get", id, nil)
	}
	return run, nil
}

func scheduleFlagsChanged(cmd *cobra.Command) bool {
	for _, name := range []string{"lunch-policy", "max-hours"} {
		if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
			return true
		}
	}
	return false
}

func expandArgPath(path string) (string, error) {
	expanded, err := config.ExpandPath(path)
	if err != nil {
		return "", fmt.Errorf("resolve path %q: %w", path, err)
	}
	return expanded, nil
}

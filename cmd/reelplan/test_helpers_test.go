package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"reelplan/internal/testsupport"
)

type cliTestEnv struct {
	baseDir    string
	configPath string
	outputDir  string
	dataDir    string
	scriptPath string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	t.Setenv("REELPLAN_LLM_API_KEY", "")
	t.Setenv("OPENROUTER_API_KEY", "")
	t.Chdir(base)

	env := &cliTestEnv{
		baseDir:    base,
		configPath: filepath.Join(base, "reelplan.toml"),
		outputDir:  filepath.Join(base, "output"),
		dataDir:    filepath.Join(base, "data"),
		scriptPath: filepath.Join(base, "script.txt"),
	}
	content := fmt.Sprintf(
		"[paths]\noutput_dir = %q\ndata_dir = %q\nlog_dir = \"\"\n\n[logging]\nlevel = \"error\"\n",
		env.outputDir,
		env.dataDir,
	)
	testsupport.WriteFile(t, env.configPath, content)
	testsupport.WriteFile(t, env.scriptPath, testsupport.SampleScript)
	return env
}

func runCLI(t *testing.T, env *cliTestEnv, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--config", env.configPath}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

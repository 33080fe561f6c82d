package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ayanbhoumick/Plagiarism/internal/testsupport"
)

const (
	essayAlice = "Photosynthesis converts light energy into chemical energy inside the chloroplasts of plant cells. " +
		"The light dependent reactions split water molecules and release oxygen as a byproduct. " +
		"Glucose produced during the Calvin cycle fuels growth and cellular respiration."
	essayBob = "Photosynthesis converts light energy into chemical energy inside the chloroplasts of plant cells. " +
		"Plants need sunlight, water and carbon dioxide to survive in most environments. " +
		"Glucose produced during the Calvin cycle fuels growth and cellular respiration."
	essayCarol = "Roman engineers built roads with layered gravel foundations and drainage ditches. " +
		"Legions marched quickly across provinces because milestones marked every mile travelled."
)

type cliTestEnv struct {
	baseDir    string
	configPath string
	reportDir  string
	subsDir    string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	cfg := testsupport.NewConfig(t)
	base := testsupport.BaseDir(cfg)
	t.Setenv("HOME", filepath.Join(base, "home"))
	t.Setenv("NO_COLOR", "1")

	configPath := filepath.Join(base, "plagr.toml")
	content := fmt.Sprintf("[paths]\nlog_dir = \"\"\nreport_dir = %q\n\n[logging]\nlevel = \"error\"\n", cfg.Paths.ReportDir)
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	subs := filepath.Join(base, "submissions")
	testsupport.WriteText(t, subs, "alice.txt", essayAlice)
	testsupport.WriteText(t, subs, "bob.md", essayBob)
	testsupport.WriteText(t, subs, "carol.txt", essayCarol)

	return &cliTestEnv{
		baseDir:    base,
		configPath: configPath,
		reportDir:  cfg.Paths.ReportDir,
		subsDir:    subs,
	}
}

func (e *cliTestEnv) path(name string) string {
	return filepath.Join(e.subsDir, name)
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cplcheck/internal/testsupport"
)

const (
	validFixture   = "testdata/valid.xml"
	invalidFixture = "testdata/missing_track.xml"
)

type cliTestEnv struct {
	baseDir    string
	configPath string
	historyDir string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	for _, key := range []string{"CPLCHECK_LOG_LEVEL", "CPLCHECK_LOG_FORMAT", "CPLCHECK_LOG_FILE", "CPLCHECK_STRICT_SEQUENCE_KINDS", "CPLCHECK_HISTORY_DIR"} {
		t.Setenv(key, "")
	}

	env := &cliTestEnv{
		baseDir:    base,
		configPath: filepath.Join(base, "cplcheck.toml"),
		historyDir: filepath.Join(base, "history"),
	}
	writeTestConfig(t, env.configPath, env.historyDir, true)
	return env
}

func writeTestConfig(t *testing.T, path, historyDir string, historyEnabled bool) {
	t.Helper()
	content := fmt.Sprintf(
		"[logging]\nlevel = \"error\"\n\n[history]\nenabled = %t\ndir = %q\n",
		historyEnabled,
		historyDir,
	)
	testsupport.WriteFile(t, path, content)
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

// writeVariant copies the valid fixture into dir with the replacements applied.
func writeVariant(t *testing.T, dir, name string, pairs ...string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	testsupport.WriteVariant(t, validFixture, path, pairs...)
	return path
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

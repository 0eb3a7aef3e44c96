// Package testutil provides helper functions for testing.
package testutil

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// TempDir creates a temporary directory and registers a cleanup function.
// The directory is automatically deleted when the test completes.
func TempDir(t *testing.T) string {
	t.Helper()

	dir, err := os.MkdirTemp("", "warpflow-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}

	t.Cleanup(func() {
		if err := os.RemoveAll(dir); err != nil {
			t.Errorf("failed to cleanup temp dir %s: %v", dir, err)
		}
	})

	return dir
}

// WriteWorkflow writes content to a temporary file and returns the path.
// The file is automatically deleted when the test completes.
func WriteWorkflow(t *testing.T, content string) string {
	t.Helper()

	return WriteFile(t, TempDir(t), "workflow.yaml", content)
}

// WriteFile writes content to rel under dir, creating parent directories,
// and returns the full path.
func WriteFile(t *testing.T, dir, rel, content string) string {
	t.Helper()

	path := filepath.Join(dir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}

	return path
}

// MinimalWorkflow returns a YAML document with only the required fields.
func MinimalWorkflow(name, command string) string {
	return "name: " + quote(name) + "\ncommand: " + quote(command) + "\n"
}

func quote(s string) string {
	out := []byte{'"'}
	for i := 0; i < len(s); i++ {
		if s[i] == '"' || s[i] == '\\' {
			out = append(out, '\\')
		}
		out = append(out, s[i])
	}
	return string(append(out, '"'))
}

// RequireGit skips the test when the git binary is not available.
func RequireGit(t *testing.T) {
	t.Helper()

	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
}

// Git runs git with args in dir and fails the test on error. Commits use a
// fixed test identity.
func Git(t *testing.T, dir string, args ...string) string {
	t.Helper()

	full := append([]string{"-c", "user.name=Test User", "-c", "user.email=test@example.com"}, args...)
	cmd := exec.CommandContext(context.Background(), "git", full...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("git %v: %v\n%s", args, err, out)
	}
	return string(out)
}

// InitRemote creates a repository containing files (relative path to
// content) in a single commit on branch main, and returns its path.
func InitRemote(t *testing.T, files map[string]string) string {
	t.Helper()
	RequireGit(t)

	dir := TempDir(t)
	Git(t, dir, "init", "--quiet")
	Git(t, dir, "symbolic-ref", "HEAD", "refs/heads/main")
	for rel, content := range files {
		WriteFile(t, dir, rel, content)
	}
	Git(t, dir, "add", "--all")
	Git(t, dir, "commit", "--quiet", "--allow-empty", "-m", "initial")

	return dir
}

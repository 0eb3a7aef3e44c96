package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chazuruo/warpflow/internal/app"
)

func sampleStatus() *app.StatusOutput {
	return &app.StatusOutput{
		Local: app.SourceStatus{Path: "/home/u/workflows", Workflows: 3},
		Upstream: app.UpstreamStatus{
			SourceStatus: app.SourceStatus{Path: "/home/u/upstream", Workflows: 120},
			URL:          "https://example.com/workflows.git",
			Branch:       "main",
		},
	}
}

func TestPrintStatusPlain_NotCloned(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printStatusPlain(&buf, sampleStatus()))

	out := buf.String()
	assert.Contains(t, out, "Config: (defaults)")
	assert.Contains(t, out, "  Path: /home/u/workflows\n  Workflows: 3\n")
	assert.Contains(t, out, "  URL: https://example.com/workflows.git\n")
	assert.Contains(t, out, "  Workflows: 120\n")
	assert.Contains(t, out, "  Clone: missing\n")
}

func TestPrintStatusPlain_Cloned(t *testing.T) {
	status := sampleStatus()
	status.ConfigPath = "/home/u/.config/warpflow/config.toml"
	status.Upstream.Cloned = true
	status.Upstream.Head = "0123456789abcdef0123"
	status.Upstream.Modified = []string{"git/undo.yaml"}

	var buf bytes.Buffer
	require.NoError(t, printStatusPlain(&buf, status))

	out := buf.String()
	assert.Contains(t, out, "Config: /home/u/.config/warpflow/config.toml")
	assert.Contains(t, out, "  Head: 0123456789ab\n")
	assert.Contains(t, out, "  Clone: 1 modified file(s)\n    git/undo.yaml\n")
	assert.NotContains(t, out, "Remote:")

	status.Upstream.Remote = "https://example.com/fork.git"
	status.Upstream.RemoteMismatch = true
	buf.Reset()
	require.NoError(t, printStatusPlain(&buf, status))
	assert.Contains(t, buf.String(), "  Remote: https://example.com/fork.git (differs from configured URL; remove /home/u/upstream to re-clone)\n")

	status.Upstream.Modified = nil
	buf.Reset()
	require.NoError(t, printStatusPlain(&buf, status))
	assert.Contains(t, buf.String(), "  Clone: clean\n")
}

func TestPrintStatusJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printStatusJSON(&buf, sampleStatus()))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	upstream := decoded["upstream"].(map[string]any)
	assert.Equal(t, "https://example.com/workflows.git", upstream["url"])
	assert.Equal(t, float64(120), upstream["workflows"])
	assert.Equal(t, false, upstream["cloned"])
	assert.NotContains(t, decoded, "config_path")
}

package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunVersion(t *testing.T) {
	info := VersionInfo{Version: "1.2.3", Commit: "abc123", Date: "2026-01-01", Go: "go1.24.5"}

	var buf bytes.Buffer
	require.NoError(t, runVersion(&buf, &VersionOptions{Short: true}, info))
	assert.Equal(t, "1.2.3\n", buf.String())

	buf.Reset()
	require.NoError(t, runVersion(&buf, &VersionOptions{}, info))
	assert.Equal(t, "warpflow version 1.2.3\ncommit: abc123\nbuilt at: 2026-01-01\ngo version: go1.24.5\n", buf.String())

	buf.Reset()
	require.NoError(t, runVersion(&buf, &VersionOptions{JSON: true}, info))
	var decoded VersionInfo
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, info, decoded)
}

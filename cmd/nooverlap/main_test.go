package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nooverlap/config"
	"github.com/katalvlaran/nooverlap/server"
)

// execute runs the root command with args and stdin, returning stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	err := cmd.Execute()

	return out.String(), err
}

func TestSolve_FlatFlag(t *testing.T) {
	out, err := execute(t, "", "solve", "--flat", "0,2,1,1,3,10,2,4,1")
	require.NoError(t, err)

	var resp server.SelectResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, []int{0, 255, 0}, resp.Mask)
	assert.Equal(t, uint64(10), resp.TotalWeight)
}

func TestSolve_Stdin(t *testing.T) {
	out, err := execute(t, `{"intervals":[{"lower":0,"upper":2,"weight":1},{"lower":2,"upper":4,"weight":1}]}`, "solve")
	require.NoError(t, err)
	assert.JSONEq(t, `{"mask":[255,255],"selected":[0,1],"total_weight":2}`, out)
}

func TestSolve_FileWithConfig(t *testing.T) {
	dir := t.TempDir()
	req := filepath.Join(dir, "req.json")
	require.NoError(t, os.WriteFile(req, []byte(`{"flat":[0,1,1,1,2,1,2,3,1]}`), 0o644))
	cfgPath := filepath.Join(dir, "cfg.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("engine:\n  max_intervals: 2\n"), 0o644))

	_, err := execute(t, "", "--config", cfgPath, "solve", req)
	assert.ErrorIs(t, err, server.ErrTooManyIntervals)

	out, err := execute(t, "", "solve", req)
	require.NoError(t, err)
	assert.Contains(t, out, `"total_weight": 3`)
}

func TestSolve_Errors(t *testing.T) {
	_, err := execute(t, "", "solve", "--flat", "0,1")
	assert.Error(t, err)

	_, err = execute(t, "not json", "solve")
	assert.ErrorContains(t, err, "decode request")

	_, err = execute(t, "", "solve", "--flat", "0,1,1", "file.json")
	assert.ErrorContains(t, err, "mutually exclusive")

	_, err = execute(t, "{}", "--log-level", "loud", "solve")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

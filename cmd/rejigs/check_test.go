package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/praetorian-inc/rejigs/pkg/scanner"
	"github.com/praetorian-inc/rejigs/pkg/types"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCheck_AllValid(t *testing.T) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	resetCheckFlags()

	err := runCheck(cmd, []string{"builtin.zip_us", "12345", "90210-1234"})
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, `valid   "12345"`)
	assert.Contains(t, output, `valid   "90210-1234"`)
	assert.Contains(t, output, "builtin.zip_us: 2 valid, 0 invalid, 0 errors")
}

func TestRunCheck_Rejected(t *testing.T) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	resetCheckFlags()
	checkMessage = "not a ZIP code"

	err := runCheck(cmd, []string{"builtin.zip_us", "12345", "1234"})
	assert.EqualError(t, err, "1 of 2 inputs rejected by builtin.zip_us")

	output := buf.String()
	assert.Contains(t, output, `invalid "1234" not a ZIP code`)
	assert.Contains(t, output, "1 valid, 1 invalid, 0 errors")
}

func TestRunCheck_JSON(t *testing.T) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	resetCheckFlags()
	checkFormat = "json"

	err := runCheck(cmd, []string{"builtin.ipv4", "10.0.0.1", "256.1.1.1"})
	require.Error(t, err)

	var result scanner.BatchCheckResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	require.Len(t, result.Results, 2)
	assert.Equal(t, types.StatusValid, result.Results[0].Status)
	assert.Equal(t, types.StatusInvalid, result.Results[1].Status)
	assert.Equal(t, "input '256.1.1.1' does not match the required pattern", result.Results[1].Message)
}

func TestRunCheck_UnknownPattern(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	resetCheckFlags()

	err := runCheck(cmd, []string{"builtin.nope", "x"})
	assert.ErrorIs(t, err, scanner.ErrUnknownDefinition)
}

func TestColorEnabled(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	assert.True(t, colorEnabled("always"))
	assert.False(t, colorEnabled("never"))
	assert.False(t, colorEnabled("auto"), "NO_COLOR disables auto color")
}

func TestCheckCommand_RequiresInput(t *testing.T) {
	assert.Error(t, checkCmd.Args(checkCmd, []string{"builtin.zip_us"}))
	assert.NoError(t, checkCmd.Args(checkCmd, []string{"builtin.zip_us", "12345"}))
}

// ===== HELPERS =====

func resetCheckFlags() {
	checkPatternsPath = ""
	checkMessage = ""
	checkFormat = "human"
	checkColor = "never"
}

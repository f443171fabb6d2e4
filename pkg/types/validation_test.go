package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckStatus_String(t *testing.T) {
	assert.Equal(t, "valid", string(StatusValid))
	assert.Equal(t, "invalid", string(StatusInvalid))
	assert.Equal(t, "error", string(StatusError))
}

func TestCheckResult_New(t *testing.T) {
	result := NewCheckResult("builtin.zip", "12345", StatusValid, "")

	assert.Equal(t, "builtin.zip", result.DefinitionID)
	assert.Equal(t, "12345", result.Input)
	assert.True(t, result.Valid())
	assert.Empty(t, result.Message)
	assert.False(t, result.CheckedAt.IsZero())

	rejected := NewCheckResult("builtin.zip", "1", StatusInvalid, "input '1' does not match the required pattern")
	assert.False(t, rejected.Valid())
}

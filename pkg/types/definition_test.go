package types

import (
	"encoding/json"
	"testing"

	"github.com/praetorian-inc/rejigs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefinition(t *testing.T) {
	expr := rejigs.Create().AtStart().AnyDigit().Exactly(5).AtEnd().IgnoreCase()
	d := NewDefinition("builtin.zip", "ZIP Code", expr)

	assert.Equal(t, "builtin.zip", d.ID)
	assert.Equal(t, "ZIP Code", d.Name)
	assert.Equal(t, `^\d{5}$`, d.Pattern)
	assert.Equal(t, rejigs.OptIgnoreCase, d.Options)
	assert.Equal(t, expr, d.Expression)
	assert.Len(t, d.StructuralID, 40)
	assert.Equal(t, d.ComputeStructuralID(), d.StructuralID)
}

func TestDefinition_ComputeStructuralID(t *testing.T) {
	d := Definition{ID: "a", Pattern: `AKIA[0-9A-Z]{16}`}
	id := d.ComputeStructuralID()

	// Should be SHA-1 hex (40 chars)
	assert.Len(t, id, 40)

	// Same pattern should produce same ID
	d2 := Definition{ID: "different.id", Name: "Different Name", Pattern: `AKIA[0-9A-Z]{16}`}
	assert.Equal(t, id, d2.ComputeStructuralID())

	// Different pattern should produce different ID
	d3 := Definition{ID: "a", Pattern: `AKIA[0-9A-Z]{17}`}
	assert.NotEqual(t, id, d3.ComputeStructuralID())
}

func TestDefinition_ComputeStructuralID_NamedGroups(t *testing.T) {
	plain := Definition{Pattern: `(\d+)-(\w+)`}
	tests := []struct {
		name    string
		pattern string
	}{
		{"Angle", `(?<num>\d+)-(?<word>\w+)`},
		{"Python", `(?P<num>\d+)-(?P<word>\w+)`},
		{"Quote", `(?'num'\d+)-(?'word'\w+)`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			named := Definition{Pattern: tt.pattern}
			assert.Equal(t, plain.ComputeStructuralID(), named.ComputeStructuralID())
		})
	}

	normalized, err := namedGroup.Native().Replace(`(?<=a)(?<!b)(\d+)>`, "(", -1, -1)
	require.NoError(t, err)
	assert.Equal(t, `(?<=a)(?<!b)(\d+)>`, normalized, "lookbehinds are not named groups")

	nonCapturing := Definition{Pattern: `(?:\d+)-(\w+)`}
	assert.NotEqual(t, plain.ComputeStructuralID(), nonCapturing.ComputeStructuralID())
}

func TestDefinition_Compile(t *testing.T) {
	d := NewDefinition("t", "T", rejigs.Create().AtStart().Text("abc").AtEnd().IgnoreCase())

	re, err := d.Compile(rejigs.DefaultConfig())
	require.NoError(t, err)

	ok, err := re.MatchString("ABC")
	require.NoError(t, err)
	assert.True(t, ok, "definition options apply")

	bad := &Definition{ID: "bad", Pattern: "(abc"}
	_, err = bad.Compile(rejigs.DefaultConfig())
	var syntaxErr *rejigs.SyntaxError
	assert.ErrorAs(t, err, &syntaxErr)
}

func TestDefinition_JSON(t *testing.T) {
	d := NewDefinition("builtin.hex", "Hex", rejigs.Create().AnyInRange('a', 'f').IgnoreCase().Compiled())
	d.Keywords = []string{"#"}

	data, err := json.Marshal(d)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "builtin.hex", raw["id"])
	assert.Equal(t, "[a-f]", raw["pattern"])
	assert.Equal(t, "IgnoreCase|Compiled", raw["options"])
	assert.NotContains(t, raw, "Expression")
	assert.NotContains(t, raw, "examples", "empty slices are omitted")

	var back Definition
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, d.Options, back.Options)
	assert.Equal(t, d.StructuralID, back.StructuralID)
}

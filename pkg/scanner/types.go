package scanner

import "github.com/praetorian-inc/rejigs/pkg/types"

// CheckItem is one input to validate in a batch
type CheckItem struct {
	ID      string `json:"pattern"`           // definition ID, e.g. "builtin.email"
	Input   string `json:"input"`             // the value to validate
	Message string `json:"message,omitempty"` // optional rejection message
}

// BatchCheckResult represents batch check results
type BatchCheckResult struct {
	Results []*types.CheckResult `json:"results"`
	Valid   int                  `json:"valid"`
	Invalid int                  `json:"invalid"`
	Errors  int                  `json:"errors"`
}

// IdentifyMatch names a definition that accepted the input
type IdentifyMatch struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// IdentifyResult lists the definitions that accept an input
type IdentifyResult struct {
	Input   string          `json:"input"`
	Matches []IdentifyMatch `json:"matches"`
}

// DebugLogger provides platform-specific logging
type DebugLogger interface {
	Log(format string, args ...interface{})
}

// NoopLogger is a no-op logger
type NoopLogger struct{}

func (NoopLogger) Log(format string, args ...interface{}) {}

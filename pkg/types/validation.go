package types

import "time"

// CheckStatus represents the outcome of checking an input against a definition.
type CheckStatus string

const (
	StatusValid   CheckStatus = "valid"
	StatusInvalid CheckStatus = "invalid"
	StatusError   CheckStatus = "error" // pattern failed to match, e.g. timeout
)

// CheckResult represents the outcome of checking one input.
type CheckResult struct {
	DefinitionID string      `json:"definition_id"`
	Input        string      `json:"input"`
	Status       CheckStatus `json:"status"`
	Message      string      `json:"message,omitempty"`
	CheckedAt    time.Time   `json:"checked_at"`
}

// NewCheckResult creates a result with current timestamp.
func NewCheckResult(id, input string, status CheckStatus, message string) *CheckResult {
	return &CheckResult{
		DefinitionID: id,
		Input:        input,
		Status:       status,
		Message:      message,
		CheckedAt:    time.Now(),
	}
}

// Valid reports whether the input was accepted.
func (r *CheckResult) Valid() bool {
	return r.Status == StatusValid
}

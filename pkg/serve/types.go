package serve

import (
	"encoding/json"

	"github.com/praetorian-inc/rejigs/pkg/scanner"
	"github.com/praetorian-inc/rejigs/pkg/types"
)

// Request types
const (
	TypeCheck      = "check"
	TypeCheckBatch = "check_batch"
	TypeIdentify   = "identify"
	TypeList       = "list"
	TypeClose      = "close"
	TypeReady      = "ready"
	TypeDecode     = "decode" // error responses for undecodable input
)

// Request represents an incoming NDJSON request
type Request struct {
	Type    string          `json:"type"` // "check" | "check_batch" | "identify" | "list" | "close"
	Payload json.RawMessage `json:"payload"`
}

// CheckPayload is the payload for "check" requests
type CheckPayload struct {
	Pattern string `json:"pattern"` // definition ID
	Input   string `json:"input"`
	Message string `json:"message,omitempty"`
}

// CheckBatchPayload is the payload for "check_batch" requests
type CheckBatchPayload struct {
	Items []scanner.CheckItem `json:"items"`
}

// IdentifyPayload is the payload for "identify" requests
type IdentifyPayload struct {
	Input string `json:"input"`
}

// ListData is the data field for "list" responses
type ListData struct {
	Definitions []*types.Definition `json:"definitions"`
}

// Response represents an outgoing NDJSON response
type Response struct {
	Success bool            `json:"success"`
	Type    string          `json:"type"` // request type, or "ready" | "decode"
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// ReadyData is the data field for "ready" responses
type ReadyData struct {
	Version string `json:"version"`
}

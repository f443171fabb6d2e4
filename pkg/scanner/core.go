// Package scanner checks inputs against a fixed set of pattern definitions.
package scanner

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/praetorian-inc/rejigs"
	"github.com/praetorian-inc/rejigs/pkg/catalog"
	"github.com/praetorian-inc/rejigs/pkg/prefilter"
	"github.com/praetorian-inc/rejigs/pkg/types"
)

// ErrUnknownDefinition is returned when a definition ID is not loaded.
var ErrUnknownDefinition = errors.New("unknown definition")

var (
	// cachedBuiltin holds builtin definitions loaded once per process
	cachedBuiltin    []*types.Definition
	cachedBuiltinErr error
	cacheOnce        sync.Once
)

// loadBuiltinCached loads builtin definitions once and caches them
func loadBuiltinCached() ([]*types.Definition, error) {
	cacheOnce.Do(func() {
		cachedBuiltin, cachedBuiltinErr = catalog.NewLoader().LoadBuiltin()
	})
	return cachedBuiltin, cachedBuiltinErr
}

// GetBuiltinDefinitions returns the built-in definitions (cached)
func GetBuiltinDefinitions() ([]*types.Definition, error) {
	return loadBuiltinCached()
}

type coreConfig struct {
	logger       DebugLogger
	matchTimeout time.Duration
}

// Option configures a Core.
type Option func(*coreConfig)

// WithLogger sets the debug logger. The default discards everything.
func WithLogger(l DebugLogger) Option {
	return func(c *coreConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMatchTimeout bounds each match call.
// Default: rejigs.DefaultMatchTimeout
func WithMatchTimeout(d time.Duration) Option {
	return func(c *coreConfig) {
		c.matchTimeout = d
	}
}

type entry struct {
	def *types.Definition
	re  *rejigs.Regexp
}

// Core holds compiled definitions for checking and identification.
// A Core is read-only after NewCore and safe for concurrent use.
type Core struct {
	defs      []*types.Definition
	byID      map[string]*entry
	prefilter *prefilter.Prefilter
	logger    DebugLogger
}

// NewCore compiles every definition up front.
// Returns error on a duplicate ID or a pattern that fails to compile.
func NewCore(defs []*types.Definition, opts ...Option) (*Core, error) {
	cfg := coreConfig{
		logger:       NoopLogger{},
		matchTimeout: rejigs.DefaultMatchTimeout,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	logger := cfg.logger

	logger.Log("NewCore compiling %d definitions...", len(defs))

	c := &Core{
		defs:   defs,
		byID:   make(map[string]*entry, len(defs)),
		logger: logger,
	}
	for _, d := range defs {
		if _, dup := c.byID[d.ID]; dup {
			return nil, fmt.Errorf("duplicate definition id: %s", d.ID)
		}
		re, err := d.Compile(rejigs.Config{MatchTimeout: cfg.matchTimeout})
		if err != nil {
			logger.Log("compile %s failed: %v", d.ID, err)
			return nil, fmt.Errorf("definition %s: %w", d.ID, err)
		}
		c.byID[d.ID] = &entry{def: d, re: re}
	}

	c.prefilter = prefilter.New(defs)
	logger.Log("Prefilter built with %d keywords", len(c.prefilter.Keywords()))

	logger.Log("NewCore complete")
	return c, nil
}

// NewBuiltinCore creates a Core over the built-in definitions.
func NewBuiltinCore(opts ...Option) (*Core, error) {
	defs, err := loadBuiltinCached()
	if err != nil {
		return nil, err
	}
	return NewCore(defs, opts...)
}

// Check validates input against definition id. A non-empty message
// replaces the default rejection message.
//
// Rejected input is reported in the result, not as an error; the error is
// non-nil only for an unknown id.
func (c *Core) Check(id, input, message string) (*types.CheckResult, error) {
	e, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDefinition, id)
	}
	return c.check(e, input, message), nil
}

func (c *Core) check(e *entry, input, message string) *types.CheckResult {
	err := e.re.Validate(input, message)

	var vErr *rejigs.ValidationError
	switch {
	case err == nil:
		return types.NewCheckResult(e.def.ID, input, types.StatusValid, "")
	case errors.As(err, &vErr):
		return types.NewCheckResult(e.def.ID, input, types.StatusInvalid, vErr.Message)
	default:
		c.logger.Log("check %s failed: %v", e.def.ID, err)
		return types.NewCheckResult(e.def.ID, input, types.StatusError, err.Error())
	}
}

// CheckBatch checks every item. An unknown id yields a StatusError result
// for that item.
func (c *Core) CheckBatch(items []CheckItem) *BatchCheckResult {
	out := &BatchCheckResult{Results: make([]*types.CheckResult, 0, len(items))}

	for _, item := range items {
		var r *types.CheckResult
		if e, ok := c.byID[item.ID]; ok {
			r = c.check(e, item.Input, item.Message)
		} else {
			r = types.NewCheckResult(item.ID, item.Input, types.StatusError,
				fmt.Sprintf("%v: %s", ErrUnknownDefinition, item.ID))
		}

		switch r.Status {
		case types.StatusValid:
			out.Valid++
		case types.StatusInvalid:
			out.Invalid++
		default:
			out.Errors++
		}
		out.Results = append(out.Results, r)
	}

	return out
}

// Identify returns every definition that accepts input, in definition order.
func (c *Core) Identify(input string) *IdentifyResult {
	out := &IdentifyResult{Input: input, Matches: make([]IdentifyMatch, 0)}
	if input == "" {
		return out
	}

	candidates := c.prefilter.Filter(input)
	c.logger.Log("identify: %d of %d definitions pass the prefilter", len(candidates), len(c.defs))

	for _, d := range candidates {
		ok, err := c.byID[d.ID].re.MatchString(input)
		if err != nil {
			c.logger.Log("identify %s failed: %v", d.ID, err)
			continue
		}
		if ok {
			out.Matches = append(out.Matches, IdentifyMatch{ID: d.ID, Name: d.Name})
		}
	}
	return out
}

// Definitions returns the loaded definitions in load order.
func (c *Core) Definitions() []*types.Definition {
	return append([]*types.Definition(nil), c.defs...)
}

// Definition returns the definition with the given id.
func (c *Core) Definition(id string) (*types.Definition, bool) {
	e, ok := c.byID[id]
	if !ok {
		return nil, false
	}
	return e.def, true
}

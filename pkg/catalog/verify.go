package catalog

import (
	"errors"
	"fmt"

	"github.com/praetorian-inc/rejigs"
	"github.com/praetorian-inc/rejigs/pkg/types"
)

// VerifyDefinition checks definition consistency and required fields, then
// runs its examples: every example must validate and every negative example
// must be rejected.
// Returns error if the definition is invalid.
func VerifyDefinition(d *types.Definition) error {
	if d == nil {
		return fmt.Errorf("definition is nil")
	}

	// Check required fields
	if d.ID == "" {
		return fmt.Errorf("definition ID is required")
	}
	if d.Name == "" {
		return fmt.Errorf("definition %s: name is required", d.ID)
	}
	if d.Pattern == "" {
		return fmt.Errorf("definition %s: pattern is required", d.ID)
	}

	// Validate StructuralID matches computed value
	expectedID := d.ComputeStructuralID()
	if d.StructuralID != "" && d.StructuralID != expectedID {
		return fmt.Errorf("definition %s has inconsistent StructuralID: got %s, expected %s",
			d.ID, d.StructuralID, expectedID)
	}

	re, err := d.Compile(rejigs.DefaultConfig())
	if err != nil {
		return fmt.Errorf("definition %s: %w", d.ID, err)
	}

	var errs []error
	for _, ex := range d.Examples {
		if err := re.Validate(ex); err != nil {
			errs = append(errs, fmt.Errorf("example %q rejected: %w", ex, err))
		}
	}
	for _, neg := range d.NegativeExamples {
		ok, err := re.MatchString(neg)
		if err != nil {
			errs = append(errs, fmt.Errorf("negative example %q: %w", neg, err))
			continue
		}
		if ok {
			errs = append(errs, fmt.Errorf("negative example %q accepted", neg))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("definition %s: %w", d.ID, errors.Join(errs...))
	}

	return nil
}

// Package catalog loads pattern definitions from YAML catalog files.
//
// A catalog lists patterns either as a raw regex (`pattern:`) or as a list
// of builder steps (`steps:`), plus named step lists (`fragments:`) that
// patterns splice in with a `use` step.
package catalog

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/praetorian-inc/rejigs"
	"github.com/praetorian-inc/rejigs/pkg/patterns"
	"github.com/praetorian-inc/rejigs/pkg/types"
	"gopkg.in/yaml.v3"
)

// Loader handles loading definitions from YAML catalog files.
type Loader struct {
	fs fs.FS // filesystem walked by LoadFS
}

// NewLoader creates a loader over the embedded built-in catalog.
func NewLoader() *Loader {
	return &Loader{
		fs: builtinCatalogFS,
	}
}

// NewLoaderWithFS creates a loader with a custom filesystem.
func NewLoaderWithFS(fsys fs.FS) *Loader {
	return &Loader{
		fs: fsys,
	}
}

// Load loads every pattern from YAML bytes.
// Returns error if YAML is invalid, no patterns are present or any pattern
// fails to build.
func (l *Loader) Load(data []byte) ([]*types.Definition, error) {
	var file yamlCatalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if len(file.Patterns) == 0 {
		return nil, fmt.Errorf("no patterns found in YAML")
	}

	b, err := newBuilder(file.Fragments)
	if err != nil {
		return nil, err
	}

	defs := make([]*types.Definition, 0, len(file.Patterns))
	seen := make(map[string]bool, len(file.Patterns))
	for i, yp := range file.Patterns {
		if yp.ID == "" {
			return nil, fmt.Errorf("pattern %d: id is required", i+1)
		}
		if seen[yp.ID] {
			return nil, fmt.Errorf("duplicate pattern id: %s", yp.ID)
		}
		seen[yp.ID] = true

		d, err := b.definition(yp)
		if err != nil {
			return nil, fmt.Errorf("pattern %s: %w", yp.ID, err)
		}
		defs = append(defs, d)
	}

	return defs, nil
}

// LoadFile loads definitions from a YAML file path.
func (l *Loader) LoadFile(path string) ([]*types.Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	defs, err := l.Load(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return defs, nil
}

// LoadFS loads every *.yml and *.yaml file in the loader's filesystem.
// Fragments are scoped to the file that declares them; pattern IDs must be
// unique across files.
func (l *Loader) LoadFS() ([]*types.Definition, error) {
	var defs []*types.Definition

	err := fs.WalkDir(l.fs, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if ext := filepath.Ext(path); ext != ".yml" && ext != ".yaml" {
			return nil
		}

		data, err := fs.ReadFile(l.fs, path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		fileDefs, err := l.Load(data)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		defs, err = Merge(defs, fileDefs)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return defs, nil
}

// LoadBuiltin returns the patterns of package patterns followed by the
// embedded built-in catalog.
func (l *Loader) LoadBuiltin() ([]*types.Definition, error) {
	embedded, err := NewLoaderWithFS(builtinCatalogFS).LoadFS()
	if err != nil {
		return nil, fmt.Errorf("built-in catalog: %w", err)
	}
	return Merge(patterns.Builtin(), embedded)
}

// Merge appends extra to base, failing on a duplicate ID.
func Merge(base, extra []*types.Definition) ([]*types.Definition, error) {
	seen := make(map[string]bool, len(base)+len(extra))
	for _, d := range base {
		seen[d.ID] = true
	}

	merged := append(make([]*types.Definition, 0, len(base)+len(extra)), base...)
	for _, d := range extra {
		if seen[d.ID] {
			return nil, fmt.Errorf("duplicate pattern id: %s", d.ID)
		}
		seen[d.ID] = true
		merged = append(merged, d)
	}
	return merged, nil
}

// definition converts a yamlPattern to a types.Definition and computes its
// StructuralID.
func (b *builder) definition(yp yamlPattern) (*types.Definition, error) {
	var e rejigs.Expression
	switch {
	case yp.Pattern != "" && yp.Steps != nil:
		return nil, fmt.Errorf("pattern and steps are mutually exclusive")
	case yp.Pattern != "":
		e = rejigs.Create().Raw(yp.Pattern)
	case len(yp.Steps) > 0:
		var err error
		e, err = b.build(yp.Steps, "steps")
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("one of pattern or steps is required")
	}

	if yp.IgnoreCase {
		e = e.IgnoreCase()
	}
	if yp.Multiline {
		e = e.Multiline()
	}
	if yp.Singleline {
		e = e.Singleline()
	}
	if yp.Compiled {
		e = e.Compiled()
	}

	d := types.NewDefinition(yp.ID, yp.Name, e)
	d.Description = yp.Description
	d.Keywords = yp.Keywords
	d.Categories = yp.Categories
	d.Examples = yp.Examples
	d.NegativeExamples = yp.NegativeExamples
	return d, nil
}

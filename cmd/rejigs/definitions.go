package main

import (
	"fmt"
	"os"

	"github.com/praetorian-inc/rejigs/pkg/catalog"
	"github.com/praetorian-inc/rejigs/pkg/scanner"
	"github.com/praetorian-inc/rejigs/pkg/types"
	"github.com/spf13/cobra"
)

// loadDefinitions returns the built-in definitions followed by those of the
// catalog at path, which may be a YAML file or a directory of them.
func loadDefinitions(path string) ([]*types.Definition, error) {
	defs, err := catalog.NewLoader().LoadBuiltin()
	if err != nil {
		return nil, fmt.Errorf("loading builtin patterns: %w", err)
	}
	if path == "" {
		return defs, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("loading patterns from %s: %w", path, err)
	}

	var extra []*types.Definition
	if info.IsDir() {
		extra, err = catalog.NewLoaderWithFS(os.DirFS(path)).LoadFS()
	} else {
		extra, err = catalog.NewLoader().LoadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("loading patterns from %s: %w", path, err)
	}

	return catalog.Merge(defs, extra)
}

// newCore loads definitions from path and compiles them into a Core.
func newCore(cmd *cobra.Command, path string) (*scanner.Core, error) {
	defs, err := loadDefinitions(path)
	if err != nil {
		return nil, err
	}
	return scanner.NewCore(defs, scanner.WithLogger(newLogger(cmd)))
}

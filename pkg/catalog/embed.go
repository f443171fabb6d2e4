package catalog

import "embed"

// builtinCatalogFS embeds the built-in catalog directory.
//
//go:embed builtin/*.yml
var builtinCatalogFS embed.FS

package catalog

import (
	_ "embed"
	"fmt"
)

//go:embed builtin/midnight.yaml
var builtinCatalog []byte

// Builtin returns the unlock catalog bundled with darklock.
func Builtin() (*Catalog, error) {
	cat, err := parseCatalog(builtinCatalog)
	if err != nil {
		return nil, fmt.Errorf("parse builtin catalog: %w", err)
	}
	cat.Source = "builtin"
	return cat, nil
}

package catalog

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads a catalog from a YAML file on disk.
func Load(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("catalog path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	cat, err := parseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	cat.Source = path
	return cat, nil
}

func parseCatalog(data []byte) (*Catalog, error) {
	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, err
	}

	cat.Name = strings.TrimSpace(cat.Name)
	cat.Description = strings.TrimSpace(cat.Description)
	for i := range cat.Steps {
		normalizeStep(&cat.Steps[i])
	}

	if err := validate(&cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

func normalizeStep(step *Step) {
	step.ID = strings.TrimSpace(step.ID)
	step.Title = strings.TrimSpace(step.Title)
	step.Description = strings.TrimSpace(step.Description)
	step.Highlight = strings.TrimSpace(step.Highlight)
}

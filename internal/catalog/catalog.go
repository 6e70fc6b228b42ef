// Package catalog loads resource catalogs for matching. Catalogs are JSON
// or YAML files maintained by hand, so entries are validated on load and
// problems are reported with their position in the file.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/teachsmart/profile-engine/internal/types"
)

// Catalog is the on-disk shape of a resource catalog file.
type Catalog struct {
	Resources []types.Resource `json:"resources" yaml:"resources"`
}

var validate = validator.New()

// Load reads and validates a catalog file. The format is chosen by
// extension: .json, .yaml or .yml.
func Load(path string) ([]types.Resource, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Message: fmt.Sprintf("failed to read catalog %s", path), Cause: err}
	}

	var cat Catalog
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(content, &cat); err != nil {
			return nil, &LoadError{Message: "failed to parse catalog JSON", Cause: err}
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &cat); err != nil {
			return nil, &LoadError{Message: "failed to parse catalog YAML", Cause: err}
		}
	default:
		return nil, &LoadError{Message: fmt.Sprintf("unsupported catalog format %q (want .json, .yaml or .yml)", filepath.Ext(path))}
	}

	if err := validateResources(cat.Resources); err != nil {
		return nil, err
	}
	return cat.Resources, nil
}

func validateResources(resources []types.Resource) error {
	for i, r := range resources {
		if err := validate.Struct(r); err != nil {
			return &LoadError{Message: fmt.Sprintf("invalid resource at index %d", i), Cause: err}
		}
	}
	return nil
}

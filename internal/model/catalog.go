package model

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// catalogOverrideFile :
// On-disk shape of an optional resource catalog override. Only the
// resources present in the file are modified; everything else keeps
// its compiled-in default.
type catalogOverrideFile struct {
	Resources map[string]struct {
		BasePrice            *float64 `yaml:"base_price"`
		Volume               *float64 `yaml:"volume"`
		ExtractionDifficulty *float64 `yaml:"extraction_difficulty"`
	} `yaml:"resources"`
}

var resourceNames = map[string]Resource{
	"Stone":     Stone,
	"Iron":      Iron,
	"Helium":    Helium,
	"Ozone":     Ozone,
	"Fuel":      Fuel,
	"HullPlate": HullPlate,
}

// LoadCatalogOverride :
// Reads a YAML file describing per-resource overrides of the compiled-
// in catalog and applies them in place. The file is optional: a missing
// path is not an error, it simply leaves the defaults untouched.
//
// The `path` is the filesystem location of the override file; an empty
// path is a no-op.
func LoadCatalogOverride(path string) error {
	if path == "" {
		return nil
	}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("could not read resource catalog override %q: %w", path, err)
	}

	var file catalogOverrideFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("could not parse resource catalog override %q: %w", path, err)
	}

	for name, override := range file.Resources {
		r, ok := resourceNames[name]
		if !ok {
			return fmt.Errorf("unknown resource %q in catalog override", name)
		}

		attrs := catalog[r]
		if override.BasePrice != nil {
			attrs.basePrice = *override.BasePrice
		}
		if override.Volume != nil {
			attrs.volume = *override.Volume
		}
		if override.ExtractionDifficulty != nil {
			attrs.extractionDifficulty = *override.ExtractionDifficulty
		}
		catalog[r] = attrs
	}

	return nil
}

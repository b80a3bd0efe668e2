package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	sim "github.com/loadsim/loadsim/sim"
)

// CatalogConfig is the YAML shape of a request-type catalog file.
type CatalogConfig struct {
	Types              []CatalogEntry `yaml:"request_types"`
	ServiceDurationMin int64          `yaml:"service_duration_min"`
	ServiceDurationMax int64          `yaml:"service_duration_max"`
}

// CatalogEntry is one request type in the catalog file.
type CatalogEntry struct {
	Name   string  `yaml:"name"`
	CPU    float64 `yaml:"cpu"`
	Memory float64 `yaml:"memory"`
}

// RequestTypes converts the parsed catalog entries to the engine's type.
func (c *CatalogConfig) RequestTypes() []sim.RequestType {
	types := make([]sim.RequestType, len(c.Types))
	for i, e := range c.Types {
		types[i] = sim.RequestType{Name: e.Name, CPU: e.CPU, Memory: e.Memory}
	}
	return types
}

// LoadCatalog reads and parses a YAML request-type catalog file. Semantic
// validation (demand ranges, duration bounds) happens in sim.Config.Validate.
func LoadCatalog(path string) (*CatalogConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}

	var cfg CatalogConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing catalog file %s: %w", path, err)
	}

	if len(cfg.Types) == 0 {
		return nil, fmt.Errorf("catalog file %s contains no request_types", path)
	}
	return &cfg, nil
}

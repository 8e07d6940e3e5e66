package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Define struct for YAML
type DetectorConfig struct {
	Detectors []Detector `yaml:"detectors"`
}

type Detector struct {
	ID     string  `yaml:"id"`
	MassKt float64 `yaml:"mass_kt"` // water mass in kilotons
}

// GetDetectorMass looks up a detector preset's water mass in the yaml
// config at path.
func GetDetectorMass(path, id string) (float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading detector config: %w", err)
	}

	var cfg DetectorConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return 0, fmt.Errorf("parsing detector config: %w", err)
	}

	for _, d := range cfg.Detectors {
		if d.ID == id {
			return d.MassKt, nil
		}
	}
	return 0, fmt.Errorf("no detector %q in %s", id, path)
}

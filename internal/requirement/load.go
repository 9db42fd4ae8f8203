package requirement

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a requirements file and returns the normalized record.
// JSON and YAML are both accepted; the format is picked by extension, with
// JSON as the default. A malformed or unreadable file is a fatal input
// shape error — normalization only starts once decoding succeeded.
func LoadFile(path string) (Requirement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Requirement{}, fmt.Errorf("reading requirements file: %w", err)
	}

	raw := map[string]any{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return Requirement{}, fmt.Errorf("parsing requirements YAML %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &raw); err != nil {
			return Requirement{}, fmt.Errorf("parsing requirements JSON %s: %w", path, err)
		}
	}

	return Normalize(raw), nil
}

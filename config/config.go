// Package config loads optional ingest option overrides from a YAML
// file. Grounded on the pack's yaml.v3 usage (no teacher dependency;
// deepteams-webp carries no config file format of its own).
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/msagent-tools/acsingest/acserror"
)

// IngestOptions mirrors the coordinator's ingest options, loaded
// from an optional YAML file and merged over CLI flags.
type IngestOptions struct {
	CharacterName         string  `yaml:"characterName"`
	FallbackFrameDuration float64 `yaml:"fallbackFrameDuration"`
	OutputDirectory       string  `yaml:"outputDirectory"`
	OutputPrefix          string  `yaml:"outputPrefix"`
}

// Load reads and parses an ingest.yaml-style file. A missing
// FallbackFrameDuration (zero) is left for the caller to default.
func Load(path string) (*IngestOptions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, acserror.Wrap(acserror.IoFailed, err, "config: read "+path)
	}
	var opts IngestOptions
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return nil, acserror.Wrap(acserror.DecodeFailed, err, "config: parse "+path)
	}
	return &opts, nil
}

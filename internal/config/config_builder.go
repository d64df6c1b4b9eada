package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder collects configuration fragments from flags, environment
// and an optional JSON file. Sources added first take precedence; defaults
// fill whatever remains unset.
type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 3),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("assembling configuration: %w", b.err)
	}

	merged := new(StructuredConfig)
	for _, source := range b.configs {
		if err := mergo.Merge(merged, source); err != nil {
			return nil, fmt.Errorf("merging configuration sources: %w", err)
		}
	}

	merged.applyDefaults()

	return merged, merged.validate()
}

func (b *configBuilder) withEnv() *configBuilder {
	fromEnv := &StructuredConfig{}
	if err := parseEnv(fromEnv); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, fromEnv)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	b.configs = append(b.configs, ParseFlags())
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	path := b.jsonPath()
	if path == "" {
		return b
	}

	fromFile, err := parseJSON(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, fromFile)
	return b
}

// jsonPath returns the config file path named by the first earlier source
// that set one.
func (b *configBuilder) jsonPath() string {
	for _, source := range b.configs {
		if source.JSONFilePath != "" {
			return source.JSONFilePath
		}
	}

	return ""
}

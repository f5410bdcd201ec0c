package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder collects config layers in precedence order: a field set by
// an earlier layer is never overwritten by a later one.
type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{configs: make([]*StructuredConfig, 0, 3)}
}

func (b *configBuilder) add(layer *StructuredConfig, err error) *configBuilder {
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, layer)
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	return b.add(parseEnv[StructuredConfig]())
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	return b.add(ParseFlags(args))
}

// withJSON adds the file named by the first layer that set a config path.
func (b *configBuilder) withJSON() *configBuilder {
	path := b.jsonPath()
	if path == "" {
		return b
	}
	return b.add(parseJSON(path))
}

func (b *configBuilder) jsonPath() string {
	for _, layer := range b.configs {
		if layer.JSONFilePath != "" {
			return layer.JSONFilePath
		}
	}
	return ""
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("read config sources: %w", b.err)
	}

	merged := new(StructuredConfig)
	for _, layer := range b.configs {
		if err := mergo.Merge(merged, layer); err != nil {
			return nil, fmt.Errorf("merge config layer: %w", err)
		}
	}
	return merged, merged.validate()
}

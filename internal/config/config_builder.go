package config

import (
	"errors"
	"fmt"
	"io/fs"

	"dario.cat/mergo"
	"github.com/joho/godotenv"
)

const defaultDotEnvPath = ".env"

type configBuilder struct {
	configs []*StructuredConfig
	// overrides run after the merge, in order
	overrides  []func(*StructuredConfig)
	dotEnvPath string
	err        error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs:    make([]*StructuredConfig, 0, 4),
		dotEnvPath: defaultDotEnvPath,
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}
	for _, override := range b.overrides {
		override(config)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// withDotEnv loads variables from the .env file into the process
// environment. Variables that are already set are left untouched and a
// missing file is not an error.
func (b *configBuilder) withDotEnv() *configBuilder {
	if b.dotEnvPath == "" {
		return b
	}

	if err := godotenv.Load(b.dotEnvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		b.err = errors.Join(b.err, fmt.Errorf("error loading %s: %w", b.dotEnvPath, err))
	}

	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flags, err := ParseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	isJSONSpecified := false

	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			isJSONSpecified = true
			jsonPath = cfg.JSONFilePath
		}
	}

	if isJSONSpecified {
		jsonCfg, override, err := parseJSON(jsonPath)
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		b.configs = append(b.configs, jsonCfg)
		b.overrides = append(b.overrides, override)
	}

	return b
}

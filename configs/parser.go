package configs

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Parse the emitter configuration file.
// Relative package and account paths are resolved against the directory of
// the configuration file.
func ParseEmitterConfig(filePath string) (*EmitterConfig, error) {
	configFileBytes, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	config, err := parseEmitterYaml(configFileBytes)
	if err != nil {
		return nil, err
	}

	base := filepath.Dir(filePath)
	for i := range config.Packages {
		config.Packages[i] = resolve(base, config.Packages[i])
	}
	for i := range config.Accounts {
		config.Accounts[i] = resolve(base, config.Accounts[i])
	}
	if config.Compiler.Stdlib != "" {
		config.Compiler.Stdlib = resolve(base, config.Compiler.Stdlib)
	}

	return config, nil
}

// Parse the emitter configuration in YAML and apply the defaults.
func parseEmitterYaml(fileContents []byte) (*EmitterConfig, error) {
	var config EmitterConfig

	err := yaml.Unmarshal(fileContents, &config)
	if err != nil {
		return nil, err
	}

	config.applyDefaults()

	return &config, nil
}

func resolve(base, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}
